// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/bartekus/baseline/cmd/baseline/commands"
	"github.com/bartekus/baseline/internal/clierr"
)

func main() {
	root := commands.NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
