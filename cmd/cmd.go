// Package cmd defines the command-line interface for gpxscale.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(terrainCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64P("scale", "s", contract.DefaultScale, "Distance scale factor (0.5 halves each route)")
	rootCmd.PersistentFlags().Float64("min-distance", 0, "Minimum output distance in km (raises the scale when violated)")
	rootCmd.PersistentFlags().Float64("max-ascent", 0, "Maximum output ascent in meters (caps the elevation scale)")
	rootCmd.PersistentFlags().Float64("start-lat", contract.DefaultStartLat, "Latitude of the new start point")
	rootCmd.PersistentFlags().Float64("start-lon", contract.DefaultStartLon, "Longitude of the new start point")
	rootCmd.PersistentFlags().IntP("terrain", "t", 0, "Flat terrain preset for the new start (1-6, see 'gpxscale terrain')")
	rootCmd.PersistentFlags().Bool("here", false, "Resolve the new start from IP geolocation instead of coordinates")
	rootCmd.PersistentFlags().String("format", string(schema.GPXFormat), "Route output format: gpx or tcx or fit")
	rootCmd.PersistentFlags().String("output-folder", "", "Folder for generated route files (defaults to the input folder)")
	rootCmd.PersistentFlags().String("base-name", "", "Prefix for generated route file names")
	rootCmd.PersistentFlags().Bool("add-timing", false, "Synthesize timestamps from a rider power/weight model")
	rootCmd.PersistentFlags().Float64("power", contract.DefaultPowerW, "Rider power in watts for the timing model")
	rootCmd.PersistentFlags().Float64("weight", contract.DefaultWeightKg, "Rider weight in kg for the timing model")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Result output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write results to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("skip-elevation", false, "Skip the new-start elevation lookup entirely")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Elevation cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
