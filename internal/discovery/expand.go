// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"log/slog"
	"os"
	"path/filepath"

	"vcsup/internal/config"
)

// MatchTool reports which configured tool claims dir as a repository, by
// checking for each tool's marker directory in declaration order. The
// first match wins.
func MatchTool(dir string, tools []config.ToolSpec) (config.ToolSpec, bool) {
	for _, tool := range tools {
		info, err := os.Stat(filepath.Join(dir, tool.DirectoryMarker))
		if err == nil && info.IsDir() {
			return tool, true
		}
	}
	return config.ToolSpec{}, false
}

// Expand walks the resolved roots breadth-first and returns the path of
// every repository found, in visit order. A directory containing a marker
// is a repository and is not descended into, so nested repositories under
// a repository root are not reported. Directories that cannot be read are
// skipped. Duplicate repository paths, e.g. from overlapping roots, are
// reported once, keeping the first occurrence.
func Expand(roots []string, tools []config.ToolSpec) []string {
	worklist := make([]string, len(roots))
	copy(worklist, roots)

	seen := make(map[string]struct{})
	var repos []string

	for len(worklist) > 0 {
		dir := worklist[0]
		worklist = worklist[1:]

		if _, ok := MatchTool(dir, tools); ok {
			if _, dup := seen[dir]; dup {
				continue
			}
			seen[dir] = struct{}{}
			repos = append(repos, dir)
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			slog.Debug("skipping unreadable directory", "path", dir, "error", err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				worklist = append(worklist, filepath.Join(dir, entry.Name()))
			}
		}
	}

	return repos
}
