// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"fmt"
	"sort"
	"strings"
)

// Report tallies per-file outcomes for one run. Counters are bumped only
// after a file's outcome is finalized.
type Report struct {
	Preview  bool
	Total    int
	Skipped  int
	Outcomes map[Outcome]int
	Dialects map[Dialect]int
}

func NewReport(preview bool) *Report {
	return &Report{
		Preview:  preview,
		Outcomes: make(map[Outcome]int),
		Dialects: make(map[Dialect]int),
	}
}

// Add records the finalized outcome of one file.
func (r *Report) Add(d Dialect, o Outcome) {
	r.Total++
	r.Outcomes[o]++
	r.Dialects[d]++
}

// AddSkipped records a file that was matched but deliberately not
// processed, e.g. a generated file.
func (r *Report) AddSkipped(d Dialect) {
	r.Total++
	r.Skipped++
	r.Dialects[d]++
}

// Changed returns how many files were (or, in preview, would be)
// modified.
func (r *Report) Changed() int {
	return r.Outcomes[OutcomeRefreshed] + r.Outcomes[OutcomeConverted] + r.Outcomes[OutcomeInserted]
}

// Format renders the human-readable summary block.
func (r *Report) Format() string {
	preview := "No"
	if r.Preview {
		preview = "Yes"
	}
	lines := []string{
		"----------------------------------------",
		"SPDX Header Update Summary",
		"----------------------------------------",
		fmt.Sprintf("Total files scanned:     %d", r.Total),
		fmt.Sprintf("Dry-run mode:            %s", preview),
		fmt.Sprintf("Files with changes:      %d", r.Changed()),
		fmt.Sprintf(" - SPDX header updated:   %d", r.Outcomes[OutcomeRefreshed]),
		fmt.Sprintf(" - Non-SPDX converted:    %d", r.Outcomes[OutcomeConverted]),
		fmt.Sprintf(" - Header inserted:       %d", r.Outcomes[OutcomeInserted]),
		fmt.Sprintf("Files unchanged:         %d", r.Outcomes[OutcomeUnchanged]),
	}
	if r.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Files skipped:           %d", r.Skipped))
	}
	lines = append(lines, "", "File types processed:")

	names := make([]string, 0, len(r.Dialects))
	counts := make(map[string]int, len(r.Dialects))
	for d, n := range r.Dialects {
		names = append(names, d.String())
		counts[d.String()] = n
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf(" - %s files:       %d", name, counts[name]))
	}

	lines = append(lines, "----------------------------------------")
	return strings.Join(lines, "\n")
}
