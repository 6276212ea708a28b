// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/lucimber/spdxup/internal/config"
	"github.com/lucimber/spdxup/internal/header"
	"github.com/lucimber/spdxup/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "spdxup",
	Short:   "Normalize SPDX copyright headers across a source tree",
	Version: version.Version(),
	Long: `spdxup scans a directory tree and ensures each source file carries a
machine-readable SPDX copyright header. Existing SPDX headers get their year
range bumped, legacy copyright notices are converted to the canonical form,
and files without any header get one inserted.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .spdxup.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("path", "p", ".", "path to start processing")
	rootCmd.PersistentFlags().BoolP("recursive", "r", false, "recursively process subdirectories")
	rootCmd.PersistentFlags().StringP("fallback-license", "l", config.DefaultFallbackLicense, "fallback license identifier")
	rootCmd.PersistentFlags().StringP("fallback-owner", "o", config.DefaultFallbackOwner, "fallback copyright holder")
	rootCmd.PersistentFlags().BoolP("summary", "s", false, "show summary after execution")
	rootCmd.PersistentFlags().StringP("summary-file", "f", "", "write summary output to specified file")

	// Customize version template to show "v0.1.0" instead of "version 0.1.0"
	rootCmd.SetVersionTemplate("v{{.Version}}\n")

	// Bind flags to viper
	_ = viper.BindPFlag("path", rootCmd.PersistentFlags().Lookup("path"))
	_ = viper.BindPFlag("recursive", rootCmd.PersistentFlags().Lookup("recursive"))
	_ = viper.BindPFlag("fallback_license", rootCmd.PersistentFlags().Lookup("fallback-license"))
	_ = viper.BindPFlag("fallback_owner", rootCmd.PersistentFlags().Lookup("fallback-owner"))
	_ = viper.BindPFlag("summary", rootCmd.PersistentFlags().Lookup("summary"))
	_ = viper.BindPFlag("summary_file", rootCmd.PersistentFlags().Lookup("summary-file"))
}

func initConfig() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".spdxup")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("SPDXUP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}

	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Printf("Error parsing config: %v\n", err)
		os.Exit(1)
	}
	cfg.Normalize()
}

// applyExtensionArgs lets positional args override the configured
// extension list, matching the original script's invocation shape.
func applyExtensionArgs(args []string) error {
	if len(args) > 0 {
		cfg.Extensions = args
		cfg.Normalize()
	}
	if len(cfg.Extensions) == 0 {
		return errors.New("no file extensions given (pass them as arguments, e.g. \"spdxup check java py\")")
	}
	return nil
}

func emitSummary(report *header.Report) error {
	if cfg.Summary {
		fmt.Println()
		fmt.Println(report.Format())
	}
	if cfg.SummaryFile != "" {
		if err := os.WriteFile(cfg.SummaryFile, []byte(report.Format()+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing summary file: %w", err)
		}
		fmt.Printf("Summary written to: %s\n", cfg.SummaryFile)
	}
	return nil
}
