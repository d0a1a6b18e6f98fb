// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"io"
)

type (
	// Result contains the outcome of a single command execution.
	Result struct {
		// Output is the combined stdout and stderr captured while the
		// command ran.
		Output string
		// Status is the raw wait status of the command, or
		// StatusLaunchFailure if it never started.
		Status Status
		// Err carries the launch error when Status is StatusLaunchFailure.
		Err error
	}

	// Runner executes one command line and reports its captured output
	// and raw exit status. The call blocks until the command terminates
	// or ctx is canceled.
	Runner interface {
		Run(ctx context.Context, command string) *Result
	}
)

// teeWriter writes to the capture buffer and, when passthrough is non-nil,
// to the process's own stream as well.
func teeWriter(capture io.Writer, passthrough io.Writer) io.Writer {
	if passthrough == nil {
		return capture
	}
	return io.MultiWriter(capture, passthrough)
}
