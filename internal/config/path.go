// Package config loads and validates financer settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/financer/internal/common"
)

// resolvePath expands a leading "~" to the home directory and then $VAR
// references. "~user" forms are left alone.
func resolvePath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return os.ExpandEnv(p)
}

func resolvePaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = resolvePath(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validatePatterns rejects malformed OFX globs before any file is touched.
func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("%w: data.ofx pattern %q: %w", common.ErrInvalidConfig, p, err)
		}
	}
	return nil
}
