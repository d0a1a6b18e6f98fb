// SPDX-License-Identifier: MPL-2.0

//go:build windows

package runner

import "os"

// statusFromProcessState synthesizes a wait status on Windows, where
// processes have no signal-termination encoding.
func statusFromProcessState(ps *os.ProcessState) Status {
	return ExitStatus(ps.ExitCode())
}
