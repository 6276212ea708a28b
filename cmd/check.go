package cmd

import (
	"fmt"
	"os"

	"github.com/lucimber/spdxup/internal/header"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check [extensions...]",
	Short: "Preview SPDX header changes without modifying files",
	Long: `Scan files and report which ones would get a new or updated SPDX header.
Nothing is written; changed files are shown with a truncated unified diff.
Exits with status 1 when any file would change, making it suitable for CI
and pre-commit hooks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyExtensionArgs(args); err != nil {
			return err
		}
		path := viper.GetString("path")

		checker := header.NewChecker(cfg)
		report, err := checker.Check(path)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		if err := emitSummary(report); err != nil {
			return err
		}

		if report.Changed() > 0 {
			fmt.Printf("\n%d files need header updates\n", report.Changed())
			os.Exit(1)
		}

		fmt.Println("✓ All files have up-to-date SPDX headers")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
