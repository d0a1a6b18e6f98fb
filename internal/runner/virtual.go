// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner executes commands with an in-process POSIX shell
// (mvdan.cc/sh). It needs no shell binary on the host, which makes it the
// runner of choice for tests and minimal environments. External commands
// referenced by the command line are still resolved from PATH.
type VirtualRunner struct {
	// Stdout and Stderr receive a live copy of the command's output in
	// addition to the capture buffer. Nil means capture-only.
	Stdout io.Writer
	Stderr io.Writer
}

// NewVirtualRunner creates a VirtualRunner that tees command output to the
// given writers while capturing it.
func NewVirtualRunner(stdout, stderr io.Writer) *VirtualRunner {
	return &VirtualRunner{Stdout: stdout, Stderr: stderr}
}

// Run parses and interprets command, blocking until it terminates. The
// interpreter starts in the process's current working directory, so the
// driver's scoped chdir applies to it the same way it applies to the
// native runner.
func (r *VirtualRunner) Run(ctx context.Context, command string) *Result {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "command")
	if err != nil {
		return &Result{
			Status: StatusLaunchFailure,
			Err:    fmt.Errorf("failed to parse command: %w", err),
		}
	}

	var capture bytes.Buffer
	sh, err := interp.New(
		interp.StdIO(nil, teeWriter(&capture, r.Stdout), teeWriter(&capture, r.Stderr)),
	)
	if err != nil {
		return &Result{
			Status: StatusLaunchFailure,
			Err:    fmt.Errorf("failed to create interpreter: %w", err),
		}
	}

	runErr := sh.Run(ctx, prog)
	res := &Result{Output: capture.String()}
	if runErr == nil {
		return res
	}

	var exitStatus interp.ExitStatus
	if errors.As(runErr, &exitStatus) {
		res.Status = ExitStatus(int(exitStatus))
		return res
	}

	res.Status = StatusLaunchFailure
	res.Err = runErr
	return res
}
