// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lucimber/spdxup/internal/config"
	"github.com/schollz/progressbar/v3"
)

// Checker previews header changes without touching any file.
type Checker struct {
	config   *config.Config
	registry *Registry
	resolver *Resolver
}

func NewChecker(cfg *config.Config) *Checker {
	registry, resolver := buildCore(cfg)
	return &Checker{config: cfg, registry: registry, resolver: resolver}
}

// Check resolves every matching file under path and reports what would
// change. Files are never written; changed files get a status line and a
// truncated unified diff on stdout.
func (c *Checker) Check(path string) (*Report, error) {
	files, err := collectFiles(path, c.config)
	if err != nil {
		return nil, err
	}
	slog.Debug("collected files", "path", path, "count", len(files))

	report := NewReport(true)
	if len(files) == 0 {
		return report, nil
	}

	bar := progressbar.Default(int64(len(files)), "Checking files")
	for _, file := range files {
		if err := c.checkFile(file, report); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		_ = bar.Add(1)
	}
	return report, nil
}

func (c *Checker) checkFile(file string, report *Report) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	dialect := c.registry.DialectFor(file)
	if c.config.IsGenerated(string(content)) {
		slog.Debug("skipping generated file", "file", file)
		report.AddSkipped(dialect)
		return nil
	}

	updated, outcome := c.resolver.Resolve(string(content), dialect)
	slog.Debug("resolved file", "file", file, "dialect", dialect, "outcome", outcome)
	report.Add(dialect, outcome)

	if outcome != OutcomeUnchanged {
		fmt.Printf("[DRY-RUN] %s\n", file)
		fmt.Println(unifiedDiff(string(content), updated, previewDiffLines))
	}
	return nil
}

// buildCore wires the registry and resolver from one run's config.
func buildCore(cfg *config.Config) (*Registry, *Resolver) {
	registry := NewRegistry(cfg.Detection.LegacySlack)
	resolver := NewResolver(registry, cfg.FallbackLicense, cfg.FallbackOwner, cfg.CurrentYear)
	resolver.KeepShebang(cfg.Placement.Shebang)
	resolver.KeepXMLDeclaration(cfg.Placement.XMLDeclaration)
	return registry, resolver
}
