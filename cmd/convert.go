package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/velomapa/gpxscale/core"
	"github.com/velomapa/gpxscale/internal/contract"
)

// convertCmd rewrites routes in another format without scaling anything.
var convertCmd = &cobra.Command{
	Use:   "convert [folder]",
	Short: "Convert GPX routes to another format without scaling.",
	Long: `Rewrite every GPX route in a folder as GPX, TCX, or FIT.

Nothing is scaled or relocated; only the serialization changes. Timing
synthesis still applies when requested, which is useful for trainers that
refuse untimed files.

Examples:
  # Produce FIT versions of every route
  gpxscale convert --format fit

  # Produce timed TCX files for a 250 W rider
  gpxscale convert --format tcx --add-timing`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		outcomes, err := core.ExecuteConvert(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot convert routes", err)
		}
		if err := writer.WriteOutcomes(outcomes, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write convert results", err)
		}
	},
}
