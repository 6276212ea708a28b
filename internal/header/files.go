// SPDX-FileCopyrightText: 2026 Lucimber UG
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lucimber/spdxup/internal/config"
)

// collectFiles enumerates the files to process under root: names must
// end with one of the configured extensions, ignore globs are matched
// against the slash-separated path relative to root, and non-recursive
// mode stops at root's immediate entries.
func collectFiles(root string, cfg *config.Config) ([]string, error) {
	if cfg.GitTracked {
		return gitFiles(root, cfg)
	}
	if !cfg.Recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(root, entry.Name())
			if cfg.ShouldProcess(entry.Name()) && !ignored(root, path, cfg) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if cfg.ShouldProcess(d.Name()) && !ignored(root, path, cfg) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// gitFiles lists candidate files via git ls-files, for repositories
// where untracked scratch files should never be touched.
func gitFiles(root string, cfg *config.Config) ([]string, error) {
	out, err := exec.Command("git", "ls-files", root).Output()
	if err != nil {
		return nil, err
	}
	var files []string
	for line := range strings.SplitSeq(string(out), "\n") {
		if line == "" {
			continue
		}
		if cfg.ShouldProcess(filepath.Base(line)) && !ignored(root, line, cfg) {
			files = append(files, line)
		}
	}
	return files, nil
}

func ignored(root, path string, cfg *config.Config) bool {
	if len(cfg.Ignore) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range cfg.Ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
