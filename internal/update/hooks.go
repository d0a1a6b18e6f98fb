// SPDX-License-Identifier: MPL-2.0

package update

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"vcsup/internal/runner"

	"github.com/charmbracelet/lipgloss"
)

// InterruptPause is how long the default hooks wait after a command was
// interrupted, giving the operator a window to press ^C a second time and
// stop the whole run instead of just the current repository.
const InterruptPause = time.Second

type (
	// UpdateInfo identifies the repository a step is about to update.
	UpdateInfo struct {
		// Path is the absolute repository directory.
		Path string
		// ToolName is the display name of the tool claiming the repository.
		ToolName string
	}

	// Hooks observes the update cycle. PreUpdate and PostUpdate bracket one
	// repository; PreCommand and PostCommand bracket each command within
	// it. PostCommand returning true aborts the remaining commands for the
	// current repository only, the run then continues with the next one.
	Hooks interface {
		PreUpdate(info UpdateInfo)
		PreCommand(command string)
		PostCommand(command, output string, status runner.Status) bool
		PostUpdate()
	}

	// DefaultHooks reports progress to a writer with styled headers and
	// classifies failures by their raw wait status.
	DefaultHooks struct {
		out io.Writer
	}

	// SilentHooks suppresses all reporting. Commands still abort the
	// current repository on any failure.
	SilentHooks struct{}
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// NewDefaultHooks creates hooks reporting to out.
func NewDefaultHooks(out io.Writer) *DefaultHooks {
	return &DefaultHooks{out: out}
}

func (h *DefaultHooks) PreUpdate(info UpdateInfo) {
	header := fmt.Sprintf("updating %s using %s", filepath.Base(info.Path), info.ToolName)
	fmt.Fprintln(h.out, headerStyle.Render(header))
}

func (h *DefaultHooks) PreCommand(command string) {
	fmt.Fprintln(h.out, commandStyle.Render("$ "+command))
}

// PostCommand classifies a finished command. Any status other than a clean
// exit aborts the remaining commands for this repository. An interrupt
// additionally pauses briefly so a second ^C reaches the process signal
// handler and ends the whole run.
func (h *DefaultHooks) PostCommand(command, output string, status runner.Status) bool {
	switch {
	case status.Success():
		return false
	case status == runner.StatusLaunchFailure:
		fmt.Fprintln(h.out, failureStyle.Render("could not start: "+command))
	case status.Interrupted():
		fmt.Fprintln(h.out, noticeStyle.Render("interrupted, press ^C again to quit"))
		time.Sleep(InterruptPause)
	case status.Signaled():
		fmt.Fprintln(h.out, failureStyle.Render(fmt.Sprintf("terminated by signal %d: %s", status.Signal(), command)))
	default:
		fmt.Fprintln(h.out, failureStyle.Render(fmt.Sprintf("exited with code %d: %s", status.ExitCode(), command)))
	}
	return true
}

func (h *DefaultHooks) PostUpdate() {
	fmt.Fprintln(h.out)
}

func (SilentHooks) PreUpdate(UpdateInfo) {}

func (SilentHooks) PreCommand(string) {}

func (SilentHooks) PostCommand(_, _ string, status runner.Status) bool {
	return !status.Success()
}

func (SilentHooks) PostUpdate() {}
