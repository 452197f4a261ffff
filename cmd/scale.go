package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/velomapa/gpxscale/core"
	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/internal/elevation"
	"github.com/velomapa/gpxscale/internal/iocache"
)

// buildElevationStack wires the IP geolocator and the cached elevation
// provider used to resolve the new start point. The provider is nil when the
// elevation lookup is disabled, which downstream code treats as "keep the
// route's own base elevation".
func buildElevationStack() (contract.Locator, contract.ElevationProvider, error) {
	locator := elevation.NewIPLocator()
	if cfg.SkipElevation {
		return locator, nil, nil
	}

	provider, err := elevation.NewCachedProvider(elevation.NewDefaultChain(), iocache.Manager.GetElevationStore())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize elevation provider: %w", err)
	}
	return locator, provider, nil
}

// scaleCmd runs the full rescaling pipeline and writes output files.
var scaleCmd = &cobra.Command{
	Use:   "scale [folder]",
	Short: "Scale GPX routes and write the output files.",
	Long: `Rescale every GPX route in a folder and write the results.

For each route this:
- Scales the distance by the effective scale factor
- Scales each climb and descent, preserving the route's shape
- Relocates the start to the configured coordinate (or a flat-terrain preset)
- Optionally synthesizes timestamps from a rider power/weight model

One route failing never aborts the batch; the failure shows up in the
results table instead.

Examples:
  # Halve every route and start off the Dutch coast
  gpxscale scale ~/routes/alps-2025

  # Use a flat terrain preset and write TCX for the trainer
  gpxscale scale --terrain 1 --format tcx

  # Scale to one third, keep at least 15 km, cap climbing at 400 m
  gpxscale scale --scale 0.33 --min-distance 15 --max-ascent 400

  # Add timestamps for a 220 W rider weighing 70 kg
  gpxscale scale --add-timing --power 220 --weight 70

  # Start from wherever you are right now
  gpxscale scale --here`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		locator, provider, err := buildElevationStack()
		if err != nil {
			contract.LogFatal("Cannot set up elevation lookups", err)
		}

		start := time.Now()
		outcomes, err := core.ExecuteScale(rootCtx, cfg, locator, provider)
		if err != nil {
			contract.LogFatal("Cannot scale routes", err)
		}
		if err := writer.WriteOutcomes(outcomes, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write scale results", err)
		}
	},
}
