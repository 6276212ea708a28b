// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/lucimber/spdxup/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of spdxup",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("v%s\n", version.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
