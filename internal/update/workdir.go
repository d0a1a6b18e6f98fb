// SPDX-License-Identifier: MPL-2.0

package update

import (
	"fmt"
	"log/slog"
	"os"
)

// pushd changes the process working directory to dir and returns a restore
// function that changes back to the previous directory. The restore
// function is safe to call from a defer so the original directory comes
// back on every exit path, panics included.
func pushd(dir string) (func(), error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("failed to change into %s: %w", dir, err)
	}

	return func() {
		if err := os.Chdir(prev); err != nil {
			slog.Error("failed to restore working directory", "path", prev, "error", err)
		}
	}, nil
}
