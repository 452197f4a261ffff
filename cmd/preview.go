package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/velomapa/gpxscale/core"
	"github.com/velomapa/gpxscale/internal/contract"
)

// previewCmd projects the scaling outcome without writing any file.
var previewCmd = &cobra.Command{
	Use:   "preview [folder]",
	Short: "Preview the effective scales without writing files.",
	Long: `Show what scaling would do to each route, without writing anything.

The requested scale is not always the effective one:
- A minimum distance raises the scale for routes that would end up too short
- A maximum ascent caps the elevation scale independently

Preview shows the effective distance and elevation scale per route next to
the projected distance and ascent, so surprises happen here instead of on
the trainer.

Examples:
  # Preview halving every route
  gpxscale preview ~/routes/alps-2025

  # Keep every route at 20 km or more
  gpxscale preview --scale 0.3 --min-distance 20

  # Cap the climbing at 500 m per route
  gpxscale preview --scale 0.5 --max-ascent 500`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		previews, err := core.ExecutePreview(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot preview scaling", err)
		}
		if err := writer.WritePreviews(previews, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write preview results", err)
		}
	},
}
