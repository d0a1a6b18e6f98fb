// SPDX-License-Identifier: MPL-2.0

// Package runner executes update commands on behalf of the driver.
//
// Two implementations are provided: NativeRunner spawns the system shell
// and reports the raw process wait status, while VirtualRunner interprets
// the command with an in-process POSIX shell (mvdan.cc/sh) and needs no
// shell binary on the host. Both capture combined output and can tee it
// to the process's own streams.
package runner
