// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const sampleHeader = `# vcsup configuration file.
#
# paths lists the root directories scanned for repositories; relative
# entries resolve against your home directory. tools lists the tool ids,
# and each id <t> needs <t>-dir (marker directory), <t>-name (display
# name) and <t>-commands (commands run per repository, in order). Tool
# ids are case-insensitive: they are folded to lower case, like TOML keys.

`

// sampleSettings is the starter configuration written by --gen-conf.
func sampleSettings() Raw {
	return Raw{
		"paths":        []string{"src", "work/projects"},
		"tools":        []string{"git", "hg"},
		"git-dir":      ".git",
		"git-name":     "Git",
		"git-commands": []string{"git pull --rebase"},
		"hg-dir":       ".hg",
		"hg-name":      "Mercurial",
		"hg-commands":  []string{"hg pull", "hg update"},
	}
}

// WriteSample writes a commented sample config file to the per-user
// location and returns its path. An existing file is not overwritten
// unless force is set.
func WriteSample(force bool) (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := toml.Marshal(sampleSettings())
	if err != nil {
		return "", fmt.Errorf("failed to encode sample config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(sampleHeader), body...), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
