// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

// Outcome classifies what happened to a single file.
type Outcome string

const (
	// OutcomeRefreshed means an existing canonical header had its year
	// range brought up to the current year.
	OutcomeRefreshed Outcome = "canonical-refreshed"
	// OutcomeConverted means a legacy copyright notice was rewritten
	// into the canonical form.
	OutcomeConverted Outcome = "legacy-converted"
	// OutcomeInserted means no header was found and a canonical one was
	// prepended.
	OutcomeInserted Outcome = "header-inserted"
	// OutcomeUnchanged means the file already carried a current
	// canonical header.
	OutcomeUnchanged Outcome = "unchanged"
)

func (o Outcome) String() string { return string(o) }
