// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"syscall"
	"testing"
)

func TestStatusEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     Status
		wantSignal int
		wantExit   int
	}{
		{name: "success", status: ExitStatus(0), wantSignal: 0, wantExit: 0},
		{name: "exit 1", status: ExitStatus(1), wantSignal: 0, wantExit: 1},
		{name: "exit 127", status: ExitStatus(127), wantSignal: 0, wantExit: 127},
		{name: "sigint", status: SignalStatus(syscall.SIGINT), wantSignal: 2, wantExit: 0},
		{name: "sigterm", status: SignalStatus(syscall.SIGTERM), wantSignal: 15, wantExit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.status.Signal(); got != tt.wantSignal {
				t.Errorf("Signal() = %d, want %d", got, tt.wantSignal)
			}
			if got := tt.status.ExitCode(); got != tt.wantExit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantExit)
			}
		})
	}
}

func TestStatusClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		status          Status
		wantSuccess     bool
		wantSignaled    bool
		wantInterrupted bool
	}{
		{name: "success", status: ExitStatus(0), wantSuccess: true},
		{name: "nonzero exit", status: ExitStatus(2)},
		{name: "launch failure", status: StatusLaunchFailure},
		{name: "interrupted", status: SignalStatus(syscall.SIGINT), wantSignaled: true, wantInterrupted: true},
		{name: "killed", status: SignalStatus(syscall.SIGKILL), wantSignaled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.status.Success(); got != tt.wantSuccess {
				t.Errorf("Success() = %v, want %v", got, tt.wantSuccess)
			}
			if got := tt.status.Signaled(); got != tt.wantSignaled {
				t.Errorf("Signaled() = %v, want %v", got, tt.wantSignaled)
			}
			if got := tt.status.Interrupted(); got != tt.wantInterrupted {
				t.Errorf("Interrupted() = %v, want %v", got, tt.wantInterrupted)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   string
	}{
		{ExitStatus(0), "exit 0"},
		{ExitStatus(3), "exit 3"},
		{SignalStatus(syscall.SIGINT), "signal 2"},
		{StatusLaunchFailure, "launch failure"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
