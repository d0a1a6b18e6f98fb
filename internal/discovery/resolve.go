// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"log/slog"
	"os"
	"path/filepath"

	"vcsup/internal/issue"
)

// ResolveRoots turns the configured root paths into absolute directories.
// Relative entries resolve against the user's home directory. Entries that
// do not exist, or exist but are not directories, are dropped silently so a
// shared config can list roots that only exist on some machines.
func ResolveRoots(paths []string) ([]string, error) {
	var home string

	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)

		if !filepath.IsAbs(p) {
			if home == "" {
				h, err := os.UserHomeDir()
				if err != nil {
					return nil, issue.NewErrorContext().
						WithOperation("resolve root paths").
						WithSuggestion("Set the HOME environment variable, or use absolute paths in the config").
						Wrap(err).
						BuildError()
				}
				home = h
			}
			p = filepath.Join(home, p)
		}

		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			slog.Debug("skipping root path", "path", p, "error", err)
			continue
		}
		resolved = append(resolved, p)
	}

	return resolved, nil
}
