// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	DefaultFallbackLicense = "Apache-2.0"
	DefaultFallbackOwner   = "Lucimber UG"
)

type Config struct {
	Extensions      []string  `yaml:"extensions" mapstructure:"extensions"`
	Recursive       bool      `yaml:"recursive" mapstructure:"recursive"`
	FallbackLicense string    `yaml:"fallback_license" mapstructure:"fallback_license"`
	FallbackOwner   string    `yaml:"fallback_owner" mapstructure:"fallback_owner"`
	CurrentYear     int       `yaml:"current_year" mapstructure:"current_year"`
	Ignore          []string  `yaml:"ignore" mapstructure:"ignore"`
	GitTracked      bool      `yaml:"git_tracked" mapstructure:"git_tracked"`
	Detection       Detection `yaml:"detection" mapstructure:"detection"`
	Placement       Placement `yaml:"placement" mapstructure:"placement"`
	Summary         bool      `yaml:"summary" mapstructure:"summary"`
	SummaryFile     string    `yaml:"summary_file" mapstructure:"summary_file"`
}

type Detection struct {
	LegacySlack       int      `yaml:"legacy_slack" mapstructure:"legacy_slack"`
	SkipGenerated     bool     `yaml:"skip_generated" mapstructure:"skip_generated"`
	GeneratedPatterns []string `yaml:"generated_patterns" mapstructure:"generated_patterns"`
}

// Placement controls which leading lines stay on top of a file when a
// header is inserted. Both exceptions are off by default, so a new
// header always lands at the very top.
type Placement struct {
	Shebang        bool `yaml:"shebang" mapstructure:"shebang"`
	XMLDeclaration bool `yaml:"xml_declaration" mapstructure:"xml_declaration"`
}

// Normalize applies defaults and canonicalizes the extension list: each
// entry is lowercased and given a leading dot.
func (c *Config) Normalize() {
	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, strings.ToLower(ext))
	}
	c.Extensions = exts

	if c.FallbackLicense == "" {
		c.FallbackLicense = DefaultFallbackLicense
	}
	if c.FallbackOwner == "" {
		c.FallbackOwner = DefaultFallbackOwner
	}
	if c.CurrentYear == 0 {
		c.CurrentYear = time.Now().Year()
	}
	if c.Detection.LegacySlack == 0 {
		c.Detection.LegacySlack = 5
	}
}

// ShouldProcess reports whether a file name ends with one of the
// configured extensions. Suffix matching keeps compound extensions like
// .html.markdown working.
func (c *Config) ShouldProcess(file string) bool {
	name := strings.ToLower(filepath.Base(file))
	for _, ext := range c.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// IsGenerated reports whether the file content marks a generated file.
// Only the first two lines are considered.
func (c *Config) IsGenerated(content string) bool {
	if !c.Detection.SkipGenerated || len(c.Detection.GeneratedPatterns) == 0 {
		return false
	}
	lines := strings.SplitN(content, "\n", 3)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	for _, pattern := range c.Detection.GeneratedPatterns {
		re := regexp.MustCompile(pattern)
		for _, line := range lines {
			if re.MatchString(line) {
				return true
			}
		}
	}
	return false
}
