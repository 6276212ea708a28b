// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// previewDiffLines caps how much of each file's diff the preview prints.
const previewDiffLines = 12

// unifiedDiff renders a unified diff between the original and updated
// text, truncated to maxLines lines.
func unifiedDiff(original, updated string, maxLines int) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(updated),
		FromFile: "original",
		ToFile:   "updated",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
