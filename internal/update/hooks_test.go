// SPDX-License-Identifier: MPL-2.0

package update

import (
	"strings"
	"syscall"
	"testing"

	"vcsup/internal/runner"
)

func TestDefaultHooksClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    runner.Status
		wantAbort bool
		wantText  string
	}{
		{
			name:      "success",
			status:    0,
			wantAbort: false,
		},
		{
			name:      "launch failure",
			status:    runner.StatusLaunchFailure,
			wantAbort: true,
			wantText:  "could not start",
		},
		{
			name:      "nonzero exit",
			status:    runner.ExitStatus(2),
			wantAbort: true,
			wantText:  "exited with code 2",
		},
		{
			name:      "terminating signal",
			status:    runner.SignalStatus(syscall.SIGTERM),
			wantAbort: true,
			wantText:  "terminated by signal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			h := NewDefaultHooks(&out)

			abort := h.PostCommand("git pull", "", tt.status)
			if abort != tt.wantAbort {
				t.Errorf("PostCommand() = %v, want %v", abort, tt.wantAbort)
			}
			if tt.wantText != "" && !strings.Contains(out.String(), tt.wantText) {
				t.Errorf("output %q does not mention %q", out.String(), tt.wantText)
			}
		})
	}
}

func TestDefaultHooksInterruptPauses(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	h := NewDefaultHooks(&out)

	if !h.PostCommand("git pull", "", runner.SignalStatus(syscall.SIGINT)) {
		t.Error("PostCommand() = false for an interrupt, want abort")
	}
	if !strings.Contains(out.String(), "interrupted") {
		t.Errorf("output %q does not mention the interrupt", out.String())
	}
}

func TestDefaultHooksHeader(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	h := NewDefaultHooks(&out)

	h.PreUpdate(UpdateInfo{Path: "/data/src/vcsup", ToolName: "Git"})
	if !strings.Contains(out.String(), "updating vcsup using Git") {
		t.Errorf("header = %q", out.String())
	}
}

func TestSilentHooksAbortPolicy(t *testing.T) {
	t.Parallel()

	h := SilentHooks{}
	if h.PostCommand("x", "", 0) {
		t.Error("SilentHooks aborted on success")
	}
	if !h.PostCommand("x", "", runner.ExitStatus(1)) {
		t.Error("SilentHooks did not abort on failure")
	}
}
