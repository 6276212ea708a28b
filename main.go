// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/lucimber/spdxup/cmd"

func main() {
	cmd.Execute()
}
