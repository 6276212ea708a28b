package header

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lucimber/spdxup/internal/config"
	"github.com/schollz/progressbar/v3"
)

// Fixer rewrites files in place with normalized headers.
type Fixer struct {
	config   *config.Config
	registry *Registry
	resolver *Resolver
}

func NewFixer(cfg *config.Config) *Fixer {
	registry, resolver := buildCore(cfg)
	return &Fixer{config: cfg, registry: registry, resolver: resolver}
}

// Fix resolves every matching file under path and writes the changed
// ones back. Each file is read fully, transformed in memory, and only
// then written.
func (f *Fixer) Fix(path string) (*Report, error) {
	files, err := collectFiles(path, f.config)
	if err != nil {
		return nil, err
	}
	slog.Debug("collected files", "path", path, "count", len(files))

	report := NewReport(false)
	if len(files) == 0 {
		return report, nil
	}

	bar := progressbar.Default(int64(len(files)), "Fixing files")
	for _, file := range files {
		if err := f.fixFile(file, report); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		_ = bar.Add(1)
	}
	return report, nil
}

func (f *Fixer) fixFile(file string, report *Report) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	dialect := f.registry.DialectFor(file)
	if f.config.IsGenerated(string(content)) {
		slog.Debug("skipping generated file", "file", file)
		report.AddSkipped(dialect)
		return nil
	}

	updated, outcome := f.resolver.Resolve(string(content), dialect)
	slog.Debug("resolved file", "file", file, "dialect", dialect, "outcome", outcome)

	if outcome != OutcomeUnchanged {
		if err := os.WriteFile(file, []byte(updated), 0o644); err != nil {
			return err
		}
		fmt.Printf("[UPDATED] %s\n", file)
	}
	report.Add(dialect, outcome)
	return nil
}
