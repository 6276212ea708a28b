// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"regexp"
	"strconv"
	"strings"
)

// Resolver turns raw file text into text carrying a canonical SPDX
// header. It is pure: the same inputs always produce the same output,
// and it never touches the filesystem.
type Resolver struct {
	registry        *Registry
	fallbackLicense string
	fallbackOwner   string
	year            int
	keepShebang     bool
	keepXMLDecl     bool
}

// NewResolver builds a resolver for one run. year is the current
// processing year, shared by every file in the run.
func NewResolver(reg *Registry, fallbackLicense, fallbackOwner string, year int) *Resolver {
	return &Resolver{
		registry:        reg,
		fallbackLicense: fallbackLicense,
		fallbackOwner:   fallbackOwner,
		year:            year,
	}
}

// KeepShebang makes the insertion path leave a leading "#!" line on top.
func (r *Resolver) KeepShebang(keep bool) { r.keepShebang = keep }

// KeepXMLDeclaration makes the insertion path leave a leading "<?xml"
// line on top.
func (r *Resolver) KeepXMLDeclaration(keep bool) { r.keepXMLDecl = keep }

// Resolve produces the new file text and an outcome for one file.
//
// Resolution tries, in order: refresh an existing canonical header,
// convert a legacy header, insert a new header. Only the first matching
// header block is considered; everything outside the matched span is
// preserved byte for byte. A refresh that changes nothing reports
// OutcomeUnchanged.
func (r *Resolver) Resolve(text string, d Dialect) (string, Outcome) {
	st := r.registry.style(d)

	if loc := st.canonical.FindStringSubmatchIndex(text); loc != nil {
		years := capture(st.canonical, text, loc, "years")
		owner := capture(st.canonical, text, loc, "owner")
		license := capture(st.canonical, text, loc, "license")
		head := st.renderHeader(updateYears(years, r.year), owner, license)
		updated := text[:loc[0]] + head + text[loc[1]:]
		if updated == text {
			return text, OutcomeUnchanged
		}
		return updated, OutcomeRefreshed
	}

	if loc := st.legacy.FindStringSubmatchIndex(text); loc != nil {
		years := capture(st.legacy, text, loc, "years")
		owner := strings.TrimSpace(capture(st.legacy, text, loc, "owner"))
		license := normalizeLicense(capture(st.legacy, text, loc, "license"), r.fallbackLicense)
		head := st.renderHeader(updateYears(years, r.year), owner, license)
		return text[:loc[0]] + head + text[loc[1]:], OutcomeConverted
	}

	head := st.renderHeader(strconv.Itoa(r.year), r.fallbackOwner, r.fallbackLicense)
	prefix, rest := r.splitPreservedPrefix(text)
	if prefix != "" {
		return prefix + head + "\n\n" + rest, OutcomeInserted
	}
	return head + "\n\n" + text, OutcomeInserted
}

// splitPreservedPrefix splits off the leading line (including its
// newline) that must stay on top of the file when inserting. The prefix
// is empty when the header goes first.
func (r *Resolver) splitPreservedPrefix(text string) (prefix, rest string) {
	keep := (r.keepShebang && strings.HasPrefix(text, "#!")) ||
		(r.keepXMLDecl && strings.HasPrefix(text, "<?xml"))
	if !keep {
		return "", text
	}
	i := strings.IndexByte(text, '\n')
	if i < 0 {
		return text + "\n", ""
	}
	return text[:i+1], text[i+1:]
}

// updateYears applies the year-range rule: the start year of an existing
// range is preserved and the end year becomes current; a single year
// grows into a range only when current differs from it.
func updateYears(existing string, current int) string {
	cur := strconv.Itoa(current)
	if start, _, ok := strings.Cut(existing, "-"); ok {
		return start + "-" + cur
	}
	if existing == cur {
		return existing
	}
	return existing + "-" + cur
}

func capture(re *regexp.Regexp, text string, loc []int, group string) string {
	i := re.SubexpIndex(group)
	if i < 0 || loc[2*i] < 0 {
		return ""
	}
	return text[loc[2*i]:loc[2*i+1]]
}
