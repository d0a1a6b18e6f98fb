// SPDX-License-Identifier: MPL-2.0

//go:build unix

package runner

import (
	"os"
	"syscall"
)

// statusFromProcessState recovers the wait status of a finished process.
// The core dump bit is masked off so Signal() stays within 0-127.
func statusFromProcessState(ps *os.ProcessState) Status {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		if ws.Signaled() {
			return SignalStatus(ws.Signal())
		}
		return ExitStatus(ws.ExitStatus())
	}
	return ExitStatus(ps.ExitCode())
}
