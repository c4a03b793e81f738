// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/baseline/internal/clierr"
	"github.com/bartekus/baseline/pkg/baseline"
)

// NewStatusCmd builds `baseline status <feature-id> <compat-key>
// --bcd <path>`: a single-key getStatus query, printed as JSON.
func NewStatusCmd() *cobra.Command {
	var bcdPath string
	var looseSupport bool

	cmd := &cobra.Command{
		Use:   "status <feature-id> <compat-key>",
		Short: "Compute the Baseline status for one feature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			featureID, compatKey := args[0], args[1]

			data, err := os.ReadFile(bcdPath)
			if err != nil {
				return clierr.Newf("reading BCD file %s: %w", bcdPath, err)
			}

			ctx, err := baseline.Load(data)
			if err != nil {
				return clierr.Wrap(err)
			}

			opts := baseline.Options{TreatMissingSupportAsUnknown: looseSupport}
			status, err := baseline.GetStatus(ctx, featureID, compatKey, opts)
			if err != nil {
				return clierr.Wrap(err)
			}

			out, err := json.Marshal(status)
			if err != nil {
				return clierr.Newf("marshaling status: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}

	cmd.Flags().StringVar(&bcdPath, "bcd", "", "path to a BCD JSON file")
	cmd.Flags().BoolVar(&looseSupport, "loose-support", false, "treat a missing browser support entry as unknown instead of erroring")
	_ = cmd.MarkFlagRequired("bcd")

	return cmd
}
