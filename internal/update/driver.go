// SPDX-License-Identifier: MPL-2.0

package update

import (
	"context"
	"log/slog"

	"vcsup/internal/config"
	"vcsup/internal/discovery"
	"vcsup/internal/runner"
)

// Driver iterates over discovered repositories and updates them one at a
// time. The cursor starts at the first repository; Step consumes one
// position per call and wraps back to the start once the whole list has
// been visited.
type Driver struct {
	repos    []string
	tools    []config.ToolSpec
	hooks    Hooks
	runner   runner.Runner
	position int
}

// NewDriver creates a driver over repos. The tool for each repository is
// re-checked at step time, so a repository whose marker vanished between
// discovery and update is skipped rather than misreported.
func NewDriver(repos []string, tools []config.ToolSpec, hooks Hooks, run runner.Runner) *Driver {
	return &Driver{
		repos:  repos,
		tools:  tools,
		hooks:  hooks,
		runner: run,
	}
}

// RepoCount returns the number of repositories under the driver.
func (d *Driver) RepoCount() int {
	return len(d.repos)
}

// UpdatedCount returns how many repositories the current pass has visited.
func (d *Driver) UpdatedCount() int {
	return d.position
}

// RemainingCount returns how many repositories the current pass has left.
func (d *Driver) RemainingCount() int {
	return len(d.repos) - d.position
}

// RewindOne moves the cursor back one repository, stopping at the start.
func (d *Driver) RewindOne() {
	if d.position > 0 {
		d.position--
	}
}

// RewindAll moves the cursor back to the first repository.
func (d *Driver) RewindAll() {
	d.position = 0
}

// CurrentPath returns the repository the next Step will update, accounting
// for the wrap back to the start after a completed pass. Empty when the
// driver holds no repositories.
func (d *Driver) CurrentPath() string {
	if len(d.repos) == 0 {
		return ""
	}
	if d.position == len(d.repos) {
		return d.repos[0]
	}
	return d.repos[d.position]
}

// AllPaths returns a copy of the repository list in update order.
func (d *Driver) AllPaths() []string {
	paths := make([]string, len(d.repos))
	copy(paths, d.repos)
	return paths
}

// Step updates the repository at the cursor and advances it. When the
// previous pass is complete the cursor wraps to the first repository
// before updating. The step is consumed even when the repository no longer
// matches any tool or can no longer be entered. A failed command aborts
// the remaining commands of this repository only.
func (d *Driver) Step(ctx context.Context) error {
	if len(d.repos) == 0 {
		return nil
	}

	if d.position == len(d.repos) {
		d.position = 0
	}
	path := d.repos[d.position]
	d.position++

	tool, ok := discovery.MatchTool(path, d.tools)
	if !ok {
		slog.Debug("repository no longer matches any tool", "path", path)
		return nil
	}

	d.hooks.PreUpdate(UpdateInfo{Path: path, ToolName: tool.DisplayName})

	restore, err := pushd(path)
	if err != nil {
		slog.Warn("skipping repository", "path", path, "error", err)
		d.hooks.PostUpdate()
		return nil
	}
	// LIFO: PostUpdate fires while still inside the repository, then the
	// working directory is restored.
	defer restore()
	defer d.hooks.PostUpdate()

	for _, command := range tool.Commands {
		d.hooks.PreCommand(command)
		res := d.runner.Run(ctx, command)
		if d.hooks.PostCommand(command, res.Output, res.Status) {
			break
		}
	}

	return nil
}

// RunAll steps through the repositories the current pass has left. On a
// completed pass it performs no steps; rewind first to start another full
// pass.
func (d *Driver) RunAll(ctx context.Context) error {
	remaining := d.RemainingCount()
	for i := 0; i < remaining; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}
