package cmd

import (
	"fmt"

	"github.com/lucimber/spdxup/internal/header"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fixCmd = &cobra.Command{
	Use:   "fix [extensions...]",
	Short: "Update, convert, or insert SPDX headers in place",
	Long:  `Rewrite source files so each carries a canonical SPDX header.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyExtensionArgs(args); err != nil {
			return err
		}
		path := viper.GetString("path")

		fixer := header.NewFixer(cfg)
		report, err := fixer.Fix(path)
		if err != nil {
			return fmt.Errorf("fix failed: %w", err)
		}

		if err := emitSummary(report); err != nil {
			return err
		}

		if report.Changed() == 0 {
			fmt.Println("✓ No files needed fixing")
		} else {
			fmt.Printf("✓ Updated headers in %d files\n", report.Changed())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
