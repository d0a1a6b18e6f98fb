// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVirtualRunnerCapturesOutput(t *testing.T) {
	t.Parallel()

	r := NewVirtualRunner(nil, nil)
	res := r.Run(context.Background(), "echo hello")

	if !res.Status.Success() {
		t.Fatalf("Run() status = %v, want success", res.Status)
	}
	if got := strings.TrimSpace(res.Output); got != "hello" {
		t.Errorf("Run() output = %q, want %q", got, "hello")
	}
}

func TestVirtualRunnerTeesOutput(t *testing.T) {
	t.Parallel()

	var passthrough bytes.Buffer
	r := NewVirtualRunner(&passthrough, &passthrough)
	res := r.Run(context.Background(), "echo tee")

	if !res.Status.Success() {
		t.Fatalf("Run() status = %v, want success", res.Status)
	}
	if res.Output != passthrough.String() {
		t.Errorf("capture %q and passthrough %q differ", res.Output, passthrough.String())
	}
}

func TestVirtualRunnerNonZeroExit(t *testing.T) {
	t.Parallel()

	r := NewVirtualRunner(nil, nil)
	res := r.Run(context.Background(), "exit 3")

	if res.Status.Success() {
		t.Fatal("Run() reported success for a failing command")
	}
	if got := res.Status.ExitCode(); got != 3 {
		t.Errorf("ExitCode() = %d, want 3", got)
	}
	if res.Status.Signaled() {
		t.Error("Signaled() = true for a plain exit")
	}
}

func TestVirtualRunnerParseError(t *testing.T) {
	t.Parallel()

	r := NewVirtualRunner(nil, nil)
	res := r.Run(context.Background(), "if then fi (")

	if res.Status != StatusLaunchFailure {
		t.Errorf("Run() status = %v, want launch failure", res.Status)
	}
	if res.Err == nil {
		t.Error("Run() returned no error for an unparsable command")
	}
}

func TestVirtualRunnerUsesCurrentDirectory(t *testing.T) {
	// Changes the process working directory; cannot run in parallel.
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	}()

	r := NewVirtualRunner(nil, nil)
	if res := r.Run(context.Background(), "echo data > out.txt"); !res.Status.Success() {
		t.Fatalf("Run() status = %v, want success", res.Status)
	}

	if _, err := os.Stat(filepath.Join(dir, "out.txt")); err != nil {
		t.Errorf("command did not run in the current directory: %v", err)
	}
}
