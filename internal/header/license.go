// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

import "strings"

// licenseNames maps free-text license names found in legacy headers to
// SPDX identifiers.
var licenseNames = map[string]string{
	"Apache License, Version 2.0": "Apache-2.0",
	"Apache 2.0":                  "Apache-2.0",
	"MIT":                         "MIT",
	"GPL v3":                      "GPL-3.0-only",
	"GPLv3":                       "GPL-3.0-only",
}

// normalizeLicense resolves a legacy license name to an SPDX identifier.
// Unknown names resolve to fallback; free text never survives into a
// rendered header.
func normalizeLicense(name, fallback string) string {
	if id, ok := licenseNames[strings.TrimSpace(name)]; ok {
		return id
	}
	return fallback
}
