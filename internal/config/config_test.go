// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cfg := &Config{Extensions: []string{"java", ".py", " YML ", ""}}
	cfg.Normalize()

	assert.Equal(t, []string{".java", ".py", ".yml"}, cfg.Extensions)
	assert.Equal(t, DefaultFallbackLicense, cfg.FallbackLicense)
	assert.Equal(t, DefaultFallbackOwner, cfg.FallbackOwner)
	assert.Equal(t, time.Now().Year(), cfg.CurrentYear)
	assert.Equal(t, 5, cfg.Detection.LegacySlack)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Extensions:      []string{"sh"},
		FallbackLicense: "MIT",
		FallbackOwner:   "Acme Co",
		CurrentYear:     2024,
		Detection:       Detection{LegacySlack: 3},
	}
	cfg.Normalize()

	assert.Equal(t, "MIT", cfg.FallbackLicense)
	assert.Equal(t, "Acme Co", cfg.FallbackOwner)
	assert.Equal(t, 2024, cfg.CurrentYear)
	assert.Equal(t, 3, cfg.Detection.LegacySlack)
}

func TestShouldProcess(t *testing.T) {
	cfg := &Config{Extensions: []string{"java", "html.markdown"}}
	cfg.Normalize()

	assert.True(t, cfg.ShouldProcess("Main.java"))
	assert.True(t, cfg.ShouldProcess("src/Main.JAVA"))
	assert.True(t, cfg.ShouldProcess("docs/page.html.markdown"))
	assert.False(t, cfg.ShouldProcess("main.go"))
	assert.False(t, cfg.ShouldProcess("java"))
}

func TestIsGenerated(t *testing.T) {
	cfg := &Config{
		Detection: Detection{
			SkipGenerated:     true,
			GeneratedPatterns: []string{"Code generated", "DO NOT EDIT"},
		},
	}

	assert.True(t, cfg.IsGenerated("# Code generated by protoc. DO NOT EDIT.\npass\n"))
	assert.True(t, cfg.IsGenerated("#!/bin/sh\n# DO NOT EDIT\necho hi\n"))
	// Markers past the second line are not considered.
	assert.False(t, cfg.IsGenerated("a\nb\n# Code generated\n"))
	assert.False(t, cfg.IsGenerated("print(1)\n"))

	cfg.Detection.SkipGenerated = false
	assert.False(t, cfg.IsGenerated("# Code generated by protoc. DO NOT EDIT.\n"))
}
