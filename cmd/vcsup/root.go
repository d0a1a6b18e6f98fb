// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the vcsup CLI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// silent suppresses per-repository progress output
	silent bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// getPaths prints the resolved repository paths instead of updating
	getPaths bool
	// genConf writes a sample config file and exits
	genConf bool
	// force lets --gen-conf overwrite an existing config file
	force bool

	// rootCmd represents the base command; vcsup has no subcommands.
	rootCmd = &cobra.Command{
		Use:   "vcsup",
		Short: "Update all your version-controlled repositories in one go",
		Long: TitleStyle.Render("vcsup") + SubtitleStyle.Render(" - Update all your version-controlled repositories in one go") + `

vcsup scans your configured root directories for repositories, matching
each one against the marker directory of a configured tool (.git, .hg,
...), and runs that tool's update commands inside it.

Tools, their commands, and the root paths all come from a small TOML
config file.

` + SubtitleStyle.Render("Examples:") + `
  vcsup                     Update every repository found under the roots
  vcsup --get-paths         Print the repositories that would be updated
  vcsup --gen-conf          Write a starter config file
  vcsup --silent            Update without progress output`,
		Args: cobra.NoArgs,
		RunE: run,
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.Flags().BoolVarP(&silent, "silent", "s", false, "suppress progress output")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vcsup/config.toml)")
	rootCmd.Flags().BoolVar(&getPaths, "get-paths", false, "print the repositories that would be updated and exit")
	rootCmd.Flags().BoolVar(&genConf, "gen-conf", false, "write a sample config file and exit")
	rootCmd.Flags().BoolVar(&force, "force", false, "with --gen-conf, overwrite an existing config file")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
