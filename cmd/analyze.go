package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/velomapa/gpxscale/core"
	"github.com/velomapa/gpxscale/internal/contract"
)

// analyzeCmd reports distance and elevation stats for every route in a folder.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [folder]",
	Short: "Analyze the GPX routes in a folder.",
	Long: `Read every GPX file in a folder and report per-route statistics.

For each route it computes:
- Total distance in km
- Total ascent and descent in meters
- A terrain profile label (Flat, Rolling, Hilly, Mountainous)

Files named stage-N come first in stage order; everything else follows
alphabetically, so multi-day tours read in riding order.

Examples:
  # Analyze the current folder
  gpxscale analyze

  # Analyze a tour folder with two decimals
  gpxscale analyze ~/routes/alps-2025 --precision 2

  # Export the analysis to CSV
  gpxscale analyze --output csv --output-file routes.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		reports, err := core.ExecuteAnalyze(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot analyze routes", err)
		}
		if err := writer.WriteReports(reports, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write analysis results", err)
		}
	},
}
