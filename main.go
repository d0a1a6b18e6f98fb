// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "vcsup/cmd/vcsup"
)

func main() {
	cmd.Execute()
}
