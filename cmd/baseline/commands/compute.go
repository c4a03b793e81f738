// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/baseline/internal/clierr"
	"github.com/bartekus/baseline/internal/config"
	"github.com/bartekus/baseline/internal/render"
	"github.com/bartekus/baseline/pkg/baseline"
)

// NewComputeCmd builds `baseline compute --bcd <path> --selectors
// <selectors.yaml>`: runs ComputeBaseline once per named selector,
// printing one JSON object per line, or a Markdown table with
// --format table.
func NewComputeCmd() *cobra.Command {
	var bcdPath string
	var selectorsPath string
	var looseSupport bool
	var format string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute Baseline status for every selector in a selector set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "table" {
				return clierr.Newf("unsupported --format %q (want json or table)", format)
			}

			data, err := os.ReadFile(bcdPath)
			if err != nil {
				return clierr.Newf("reading BCD file %s: %w", bcdPath, err)
			}

			set, err := config.LoadFeatureSelectorSet(selectorsPath)
			if err != nil {
				return clierr.Newf("loading selector set: %w", err)
			}
			if err := set.Validate(); err != nil {
				return clierr.Newf("invalid selector set: %w", err)
			}

			ctx, err := baseline.Load(data)
			if err != nil {
				return clierr.Wrap(err)
			}

			opts := baseline.Options{TreatMissingSupportAsUnknown: looseSupport}

			if format == "table" {
				return computeTable(cmd, ctx, set, opts)
			}
			return computeJSONLines(cmd, ctx, set, opts)
		},
	}

	cmd.Flags().StringVar(&bcdPath, "bcd", "", "path to a BCD JSON file")
	cmd.Flags().StringVar(&selectorsPath, "selectors", "", "path to a selector set YAML file")
	cmd.Flags().BoolVar(&looseSupport, "loose-support", false, "treat a missing browser support entry as unknown instead of erroring")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or table")
	_ = cmd.MarkFlagRequired("bcd")
	_ = cmd.MarkFlagRequired("selectors")

	return cmd
}

func computeJSONLines(cmd *cobra.Command, ctx *baseline.Compat, set *config.FeatureSelectorSet, opts baseline.Options) error {
	enc := json.NewEncoder(cmd.OutOrStdout())

	for _, sel := range set.Selectors {
		status, err := baseline.ComputeBaseline(ctx, sel.ToFeatureSelector(), opts)
		if err != nil {
			return clierr.Wrap(err)
		}

		statusJSON, err := json.Marshal(status)
		if err != nil {
			return clierr.Newf("marshaling status for %s: %w", sel.ID, err)
		}

		line := struct {
			ID     string          `json:"id"`
			Status json.RawMessage `json:"status"`
		}{ID: sel.ID, Status: statusJSON}

		if err := enc.Encode(line); err != nil {
			return clierr.Newf("encoding status for %s: %w", sel.ID, err)
		}
	}

	return nil
}

func computeTable(cmd *cobra.Command, ctx *baseline.Compat, set *config.FeatureSelectorSet, opts baseline.Options) error {
	headers := []string{"id", "baseline", "low date", "high date"}
	var rows [][]string

	for _, sel := range set.Selectors {
		status, err := baseline.ComputeBaseline(ctx, sel.ToFeatureSelector(), opts)
		if err != nil {
			return clierr.Wrap(err)
		}

		low, high := "-", "-"
		if status.BaselineLowDate != nil {
			low = status.BaselineLowDate.String()
		}
		if status.BaselineHighDate != nil {
			high = status.BaselineHighDate.String()
		}
		rows = append(rows, []string{sel.ID, string(status.Baseline), low, high})
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), render.Header(2, "Baseline status")+render.Table(headers, rows))
	return err
}
