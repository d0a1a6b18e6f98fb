// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// NativeRunner executes commands through the system shell. Commands run in
// the process's current working directory, which the update driver scopes
// to the repository being updated.
type NativeRunner struct {
	// Stdout and Stderr receive a live copy of the command's output in
	// addition to the capture buffer. Nil means capture-only.
	Stdout io.Writer
	Stderr io.Writer
	// Shell overrides the default shell.
	Shell string
	// ShellArgs are arguments passed to the shell before the command.
	ShellArgs []string
}

// NewNativeRunner creates a NativeRunner that tees command output to the
// given writers while capturing it.
func NewNativeRunner(stdout, stderr io.Writer) *NativeRunner {
	return &NativeRunner{Stdout: stdout, Stderr: stderr}
}

// Run executes command via the shell and blocks until it terminates.
func (r *NativeRunner) Run(ctx context.Context, command string) *Result {
	shell, err := r.getShell()
	if err != nil {
		return &Result{Status: StatusLaunchFailure, Err: err}
	}

	args := append(r.getShellArgs(shell), command)
	cmd := exec.CommandContext(ctx, shell, args...)

	var capture bytes.Buffer
	cmd.Stdout = teeWriter(&capture, r.Stdout)
	cmd.Stderr = teeWriter(&capture, r.Stderr)
	cmd.Stdin = os.Stdin

	runErr := cmd.Run()
	res := &Result{Output: capture.String()}
	if runErr == nil {
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		res.Status = statusFromProcessState(exitErr.ProcessState)
		return res
	}

	res.Status = StatusLaunchFailure
	res.Err = runErr
	return res
}

// getShell determines which shell to use.
func (r *NativeRunner) getShell() (string, error) {
	if r.Shell != "" {
		return r.Shell, nil
	}
	return DefaultShell()
}

// DefaultShell returns the shell a NativeRunner uses when none is
// configured: $SHELL or sh on Unix-likes, pwsh/powershell/cmd on Windows.
// Callers can probe it up front to fail before any repository is touched.
func DefaultShell() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if pwsh, err := exec.LookPath("pwsh"); err == nil {
			return pwsh, nil
		}
		if ps, err := exec.LookPath("powershell"); err == nil {
			return ps, nil
		}
		return exec.LookPath("cmd")
	default:
		if shell := os.Getenv("SHELL"); shell != "" {
			return shell, nil
		}
		if sh, err := exec.LookPath("sh"); err == nil {
			return sh, nil
		}
		return "", fmt.Errorf("no shell found")
	}
}

// getShellArgs returns the arguments to pass to the shell before the command.
func (r *NativeRunner) getShellArgs(shell string) []string {
	if len(r.ShellArgs) > 0 {
		return r.ShellArgs
	}

	base := strings.TrimSuffix(filepath.Base(shell), ".exe")
	switch base {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		return []string{"-c"}
	}
}
