// Package pathutil provides the path expansion helpers shared by the config
// loader and the sync engine: tilde expansion, environment references, and
// resolution against a base directory.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces a leading "~" with the user's home directory and expands
// $VAR and ${VAR} environment references. Unset variables expand to the
// empty string, matching shell behavior.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return os.ExpandEnv(path)
}

// Resolve expands path and, when it is still relative, resolves it against
// base. The result is cleaned.
func Resolve(base, path string) string {
	p := Expand(path)
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return filepath.Clean(p)
}

// Absolute expands path and makes it absolute relative to the current
// working directory.
func Absolute(path string) (string, error) {
	abs, err := filepath.Abs(Expand(path))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}
