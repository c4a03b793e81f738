// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the baseline CLI's root Cobra command. It is a
// thin demo wrapper over pkg/baseline, not a report or audit tool: it
// prints the JSON shape ComputeBaseline/GetStatus already produce.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("BASELINE_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "baseline",
		Short:         "Baseline - compute Web Platform Baseline status from BCD",
		Long:          "baseline computes a tri-valued Baseline status (high/low/false) for a feature from raw browser-compatibility data.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose flag; no subcommand prints additional output for it")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of baseline",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "baseline version %s\n", version)
		},
	})

	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewComputeCmd())

	return cmd
}
