// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucimber/spdxup/internal/config"
	"github.com/stretchr/testify/require"
)

func testConfig(extensions ...string) *config.Config {
	cfg := &config.Config{
		Extensions:      extensions,
		Recursive:       true,
		FallbackLicense: "MIT",
		FallbackOwner:   "Acme Co",
		CurrentYear:     2025,
	}
	cfg.Normalize()
	return cfg
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFixer_Fix(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testConfig("py", "java", "svg")

	legacy := writeFile(t, tmpDir, "script.py",
		"# Copyright 2019 Example Corp\n# Licensed under the GPL v3\nprint(\"hi\")\n")
	stale := writeFile(t, tmpDir, "Main.java",
		"/*\n * SPDX-FileCopyrightText: 2021 Acme Corp\n * SPDX-License-Identifier: MIT\n */\nclass Main {}\n")
	bare := writeFile(t, tmpDir, "icon.svg",
		"<svg/>\n")
	current := writeFile(t, tmpDir, "fresh.py",
		"#\n# SPDX-FileCopyrightText: 2020-2025 Acme Co\n# SPDX-License-Identifier: MIT\n#\n\nprint(\"hi\")\n")
	// Wrong extension, must not be touched.
	other := writeFile(t, tmpDir, "notes.txt", "no header here\n")

	fixer := NewFixer(cfg)
	report, err := fixer.Fix(tmpDir)
	require.NoError(t, err)

	require.Equal(t, 4, report.Total)
	require.Equal(t, 3, report.Changed())
	require.Equal(t, 1, report.Outcomes[OutcomeConverted])
	require.Equal(t, 1, report.Outcomes[OutcomeRefreshed])
	require.Equal(t, 1, report.Outcomes[OutcomeInserted])
	require.Equal(t, 1, report.Outcomes[OutcomeUnchanged])
	require.Equal(t, 2, report.Dialects[DialectHash])
	require.Equal(t, 1, report.Dialects[DialectBrace])
	require.Equal(t, 1, report.Dialects[DialectAngle])

	got, err := os.ReadFile(legacy)
	require.NoError(t, err)
	require.Equal(t,
		"#\n# SPDX-FileCopyrightText: 2019-2025 Example Corp\n# SPDX-License-Identifier: GPL-3.0-only\n#\nprint(\"hi\")\n",
		string(got))

	got, err = os.ReadFile(stale)
	require.NoError(t, err)
	require.Equal(t,
		"/*\n * SPDX-FileCopyrightText: 2021-2025 Acme Corp\n * SPDX-License-Identifier: MIT\n */\nclass Main {}\n",
		string(got))

	got, err = os.ReadFile(bare)
	require.NoError(t, err)
	require.Equal(t,
		"<!--\n  SPDX-FileCopyrightText: 2025 Acme Co\n  SPDX-License-Identifier: MIT\n-->\n\n<svg/>\n",
		string(got))

	got, err = os.ReadFile(current)
	require.NoError(t, err)
	require.Equal(t,
		"#\n# SPDX-FileCopyrightText: 2020-2025 Acme Co\n# SPDX-License-Identifier: MIT\n#\n\nprint(\"hi\")\n",
		string(got))

	got, err = os.ReadFile(other)
	require.NoError(t, err)
	require.Equal(t, "no header here\n", string(got))
}

func TestFixer_FixIsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testConfig("py")
	path := writeFile(t, tmpDir, "script.py", "print(\"hi\")\n")

	fixer := NewFixer(cfg)
	_, err := fixer.Fix(tmpDir)
	require.NoError(t, err)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	report, err := fixer.Fix(tmpDir)
	require.NoError(t, err)
	require.Zero(t, report.Changed())
	require.Equal(t, 1, report.Outcomes[OutcomeUnchanged])

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestFixer_NonRecursive(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testConfig("py")
	cfg.Recursive = false

	top := writeFile(t, tmpDir, "top.py", "print(1)\n")
	nested := writeFile(t, tmpDir, "sub/nested.py", "print(2)\n")

	fixer := NewFixer(cfg)
	report, err := fixer.Fix(tmpDir)
	require.NoError(t, err)
	require.Equal(t, 1, report.Total)

	got, err := os.ReadFile(top)
	require.NoError(t, err)
	require.Contains(t, string(got), "SPDX-FileCopyrightText")

	got, err = os.ReadFile(nested)
	require.NoError(t, err)
	require.Equal(t, "print(2)\n", string(got))
}

func TestFixer_IgnorePatterns(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testConfig("py")
	cfg.Ignore = []string{"vendor/**"}

	vendored := writeFile(t, tmpDir, "vendor/dep/mod.py", "print(3)\n")
	own := writeFile(t, tmpDir, "app.py", "print(4)\n")

	fixer := NewFixer(cfg)
	report, err := fixer.Fix(tmpDir)
	require.NoError(t, err)
	require.Equal(t, 1, report.Total)

	got, err := os.ReadFile(vendored)
	require.NoError(t, err)
	require.Equal(t, "print(3)\n", string(got))

	got, err = os.ReadFile(own)
	require.NoError(t, err)
	require.Contains(t, string(got), "SPDX-License-Identifier: MIT")
}

func TestFixer_SkipsGeneratedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testConfig("py")
	cfg.Detection.SkipGenerated = true
	cfg.Detection.GeneratedPatterns = []string{"Code generated"}

	gen := writeFile(t, tmpDir, "gen.py", "# Code generated by protoc. DO NOT EDIT.\npass\n")

	fixer := NewFixer(cfg)
	report, err := fixer.Fix(tmpDir)
	require.NoError(t, err)
	require.Equal(t, 1, report.Skipped)
	require.Zero(t, report.Changed())

	got, err := os.ReadFile(gen)
	require.NoError(t, err)
	require.Equal(t, "# Code generated by protoc. DO NOT EDIT.\npass\n", string(got))
}
