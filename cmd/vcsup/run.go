// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"vcsup/internal/config"
	"vcsup/internal/discovery"
	"vcsup/internal/issue"
	"vcsup/internal/runner"
	"vcsup/internal/update"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// run is the single entry point of the CLI: generate a config, list the
// resolved repositories, or update them all.
func run(cmd *cobra.Command, _ []string) error {
	setupLogging()

	if genConf {
		return runGenConf(cmd.OutOrStdout())
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	roots, err := discovery.ResolveRoots(cfg.RootPaths)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1}
	}

	repos := discovery.Expand(roots, cfg.Tools)

	if getPaths {
		for _, repo := range repos {
			fmt.Fprintln(cmd.OutOrStdout(), repo)
		}
		return nil
	}

	if len(repos) == 0 {
		renderIssue(issue.NoReposFoundId)
		return nil
	}

	if _, err := runner.DefaultShell(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		renderIssue(issue.ShellNotFoundId)
		return &ExitError{Code: 1}
	}

	var (
		hooks          update.Hooks
		stdout, stderr io.Writer
	)
	if silent {
		hooks = update.SilentHooks{}
	} else {
		hooks = update.NewDefaultHooks(cmd.OutOrStdout())
		stdout, stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
	}

	driver := update.NewDriver(repos, cfg.Tools, hooks, runner.NewNativeRunner(stdout, stderr))
	if err := driver.RunAll(cmd.Context()); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1}
	}

	return nil
}

// runGenConf writes the sample config file and reports where it went.
func runGenConf(out io.Writer) error {
	path, err := config.WriteSample(force)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Use --force to overwrite an existing config file"))
		return &ExitError{Code: 1}
	}
	fmt.Fprintln(out, "Wrote sample config to "+CmdStyle.Render(path))
	return nil
}

// loadConfig reads and normalizes the config file, rendering the matching
// guidance card when that fails.
func loadConfig() (*config.Config, error) {
	var (
		raw config.Raw
		err error
	)
	if cfgFile != "" {
		raw, err = config.LoadFile(cfgFile)
	} else {
		raw, err = config.Load()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		if errors.Is(err, fs.ErrNotExist) {
			renderIssue(issue.ConfigNotFoundId)
		} else {
			renderIssue(issue.ConfigParseErrorId)
		}
		return nil, &ExitError{Code: 1}
	}

	cfg, err := config.FromRaw(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		renderIssue(issue.ConfigParseErrorId)
		return nil, &ExitError{Code: 1}
	}

	return cfg, nil
}

// setupLogging installs charmbracelet/log as the slog default handler so
// the internal packages' slog calls share the CLI's output format.
func setupLogging() {
	level := log.WarnLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case silent:
		level = log.ErrorLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "vcsup",
		Level:  level,
	})
	slog.SetDefault(slog.New(logger))
}

// formatErrorForDisplay renders ActionableErrors with their suggestions,
// falling back to the plain message for everything else.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}

// renderIssue prints the guidance card for id to stderr.
func renderIssue(id issue.Id) {
	card := issue.Get(id)
	if card == nil {
		return
	}
	rendered, err := card.Render("dark")
	if err != nil {
		slog.Warn("failed to render issue card", "id", id, "error", err)
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
