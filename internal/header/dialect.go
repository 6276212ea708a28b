// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
)

// Dialect identifies the comment syntax family used to recognize and
// render SPDX headers in a file.
type Dialect int

const (
	DialectBrace Dialect = iota // /* ... */
	DialectHash                 // # ...
	DialectAngle                // <!-- ... -->
)

func (d Dialect) String() string {
	switch d {
	case DialectHash:
		return "hash"
	case DialectAngle:
		return "angle"
	default:
		return "brace"
	}
}

// DefaultLegacySlack is the number of characters tolerated between a
// comment opener and the copyright text when matching legacy headers.
const DefaultLegacySlack = 5

type style struct {
	canonical *regexp.Regexp
	legacy    *regexp.Regexp
	render    *template.Template
}

// extensionDialects maps known file extensions to their comment dialect.
// Extensions not listed here fall back to DialectBrace.
var extensionDialects = map[string]Dialect{
	".java":       DialectBrace,
	".kt":         DialectBrace,
	".kts":        DialectBrace,
	".js":         DialectBrace,
	".ts":         DialectBrace,
	".c":          DialectBrace,
	".cpp":        DialectBrace,
	".h":          DialectBrace,
	".hpp":        DialectBrace,
	".css":        DialectBrace,
	".py":         DialectHash,
	".sh":         DialectHash,
	".yaml":       DialectHash,
	".yml":        DialectHash,
	".toml":       DialectHash,
	".conf":       DialectHash,
	".properties": DialectHash,
	".xml":        DialectAngle,
	".html":       DialectAngle,
	".xhtml":      DialectAngle,
	".svg":        DialectAngle,
}

// Registry holds the compiled matchers and render templates for each
// dialect. Matchers depend on the configured legacy slack, so a registry
// is built once per run.
type Registry struct {
	styles map[Dialect]*style
}

// NewRegistry compiles the per-dialect matchers. legacySlack bounds how
// many characters may sit between the comment opener and the copyright
// text in a legacy header; values below zero select the default.
func NewRegistry(legacySlack int) *Registry {
	if legacySlack < 0 {
		legacySlack = DefaultLegacySlack
	}
	return &Registry{
		styles: map[Dialect]*style{
			DialectBrace: {
				canonical: regexp.MustCompile(`/\*\n \* SPDX-FileCopyrightText: (?P<years>\d{4}(?:-\d{4})?) (?P<owner>.+)\n \* SPDX-License-Identifier: (?P<license>.+)\n \*/`),
				legacy:    legacyPattern(`/\*`, legacySlack),
				render:    headerTemplate("brace", "/*\n * SPDX-FileCopyrightText: {{.Years}} {{.Owner}}\n * SPDX-License-Identifier: {{.License}}\n */"),
			},
			DialectHash: {
				canonical: regexp.MustCompile(`#\n# SPDX-FileCopyrightText: (?P<years>\d{4}(?:-\d{4})?) (?P<owner>.+)\n# SPDX-License-Identifier: (?P<license>.+)\n#`),
				legacy:    legacyPattern(`#`, legacySlack),
				render:    headerTemplate("hash", "#\n# SPDX-FileCopyrightText: {{.Years}} {{.Owner}}\n# SPDX-License-Identifier: {{.License}}\n#"),
			},
			DialectAngle: {
				canonical: regexp.MustCompile(`<!--\n  SPDX-FileCopyrightText: (?P<years>\d{4}(?:-\d{4})?) (?P<owner>.+)\n  SPDX-License-Identifier: (?P<license>.+)\n-->`),
				legacy:    legacyPattern(`<!--`, legacySlack),
				render:    headerTemplate("angle", "<!--\n  SPDX-FileCopyrightText: {{.Years}} {{.Owner}}\n  SPDX-License-Identifier: {{.License}}\n-->"),
			},
		},
	}
}

// legacyPattern builds the tolerant matcher for pre-SPDX headers. The
// owner and license groups exclude periods and newlines, so a partially
// matching header fails outright instead of capturing garbage.
func legacyPattern(opener string, slack int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`(?i)%s[\s\S]{0,%d}?(?:Copyright|\(c\))\s+(?P<years>\d{4}(?:-\d{4})?)\s+(?P<owner>[^.\n]+)[.\n].*?Licensed under (?:the )?(?P<license>[^.\n]+)`,
		opener, slack))
}

func headerTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// DialectFor selects the dialect for a file based on its extension,
// case-insensitively. Unknown extensions fall back to the brace dialect.
func (r *Registry) DialectFor(path string) Dialect {
	ext := strings.ToLower(filepath.Ext(path))
	if d, ok := extensionDialects[ext]; ok {
		return d
	}
	return DialectBrace
}

func (r *Registry) style(d Dialect) *style {
	return r.styles[d]
}

type headerFields struct {
	Years   string
	Owner   string
	License string
}

func (s *style) renderHeader(years, owner, license string) string {
	var b strings.Builder
	// The templates are static and the fields are plain strings, so
	// execution cannot fail.
	_ = s.render.Execute(&b, headerFields{Years: years, Owner: owner, License: license})
	return b.String()
}
