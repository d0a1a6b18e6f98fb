// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Raw is the loosely-typed configuration mapping consumed by the
	// normalizer. Values are strings or lists of strings ([]string or
	// []any, as produced by viper's TOML decoding).
	Raw = map[string]any

	// ToolSpec describes one configured update tool.
	ToolSpec struct {
		// ID is the unique short identifier used to key the other
		// per-tool configuration entries.
		ID string
		// DirectoryMarker is the name of the subdirectory whose presence
		// identifies a directory as a repository of this tool (".git",
		// ".hg", ...).
		DirectoryMarker string
		// DisplayName is the human-readable name used for reporting.
		DisplayName string
		// Commands is the ordered, non-empty command sequence executed
		// for every matching repository.
		Commands []string
	}

	// Config is the normalized, validated configuration.
	Config struct {
		// Tools, in configured order, de-duplicated by ID.
		Tools []ToolSpec
		// RootPaths are the candidate root directories, before path
		// resolution and tree expansion.
		RootPaths []string
	}
)
