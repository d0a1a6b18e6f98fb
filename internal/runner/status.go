// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"fmt"
	"syscall"
)

// StatusLaunchFailure is the sentinel Status for a command that could not
// be started at all (shell missing, fork/exec failure, unparsable command).
const StatusLaunchFailure Status = -1

// Status is a raw process wait status in the traditional Unix encoding:
// the low 7 bits carry the terminating signal number and the next 8 bits
// carry the exit code. The zero value means success.
type Status int

// ExitStatus builds a Status for a process that exited with the given code.
func ExitStatus(code int) Status {
	return Status(code << 8)
}

// SignalStatus builds a Status for a process terminated by the given signal.
func SignalStatus(sig syscall.Signal) Status {
	return Status(int(sig) & 0x7f)
}

// Signal returns the terminating signal number, or 0 if the process exited
// normally.
func (s Status) Signal() int {
	if s == StatusLaunchFailure {
		return 0
	}
	return int(s) & 0x7f
}

// ExitCode returns the exit code for a normally exited process.
func (s Status) ExitCode() int {
	if s == StatusLaunchFailure {
		return -1
	}
	return int(s) >> 8
}

// Success reports whether the command ran and exited with code 0.
func (s Status) Success() bool {
	return s == 0
}

// Signaled reports whether the process was terminated by a signal.
func (s Status) Signaled() bool {
	return s != StatusLaunchFailure && s.Signal() != 0
}

// Interrupted reports whether the process was terminated by SIGINT,
// typically the operator pressing ^C while a command was running.
func (s Status) Interrupted() bool {
	return s.Signaled() && s.Signal() == int(syscall.SIGINT)
}

// String returns a short human-readable description of the status.
func (s Status) String() string {
	switch {
	case s == StatusLaunchFailure:
		return "launch failure"
	case s.Signaled():
		return fmt.Sprintf("signal %d", s.Signal())
	default:
		return fmt.Sprintf("exit %d", s.ExitCode())
	}
}
