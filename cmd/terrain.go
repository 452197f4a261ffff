package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/velomapa/gpxscale/internal/elevation"
	"github.com/velomapa/gpxscale/schema"
)

// terrainCmd lists the flat terrain presets selectable via --terrain.
var terrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "List the flat terrain presets for route starts.",
	Long: `List the flat (offshore) coordinates selectable via --terrain.

Starting a rescaled route over water keeps route planners from overriding
the synthesized elevation profile with real-world terrain data. Pick a
preset by number:

  gpxscale scale --terrain 1`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		for i, preset := range schema.FlatTerrainPresets {
			fmt.Printf("%d. %s (%.1f, %.1f)\n   %s\n", i+1, preset.Name, preset.Lat, preset.Lon, preset.Description)
		}

		lat := viper.GetFloat64("start-lat")
		lon := viper.GetFloat64("start-lon")
		nearest := elevation.NearestPreset(lat, lon)
		fmt.Printf("\nNearest preset to the configured start (%.1f, %.1f): %s\n", lat, lon, nearest.Name)
	},
}
