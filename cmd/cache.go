package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/internal/iocache"
	"github.com/velomapa/gpxscale/schema"
)

// cacheSetup loads the minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.CacheBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config
	if err := iocache.InitCaching(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by route commands. This avoids folder validation
// and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the elevation lookup cache (saves API calls)",
	Long: `Manage the durable cache of elevation lookups.

Gpxscale caches the elevation of each start coordinate so repeated runs
never hit the elevation APIs for coordinates it has already resolved.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached elevations
  migrate - Run cache schema migrations

Examples:
  # Check cache status
  gpxscale cache status

  # Clear the cache
  gpxscale cache clear`,
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the elevation cache.

Displays:
- Backend type
- Total number of cached elevation samples

Examples:
  # Check cache status
  gpxscale cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetElevationStore().Status()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached elevation data",
	Long: `Delete all cached elevation data from the configured backend.

Use this when:
- Cached elevations may be stale or corrupted
- Testing lookups without the cache
- Reclaiming disk space

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  gpxscale cache clear

  # Clear MySQL cache (set connection string via env variable)
  GPXSCALE_CACHE_BACKEND=mysql GPXSCALE_CACHE_DB_CONNECT="..." gpxscale cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, iocache.GetDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheMigrateCmd runs cache schema migrations.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run elevation cache schema migrations",
	Long: `Apply schema migrations to the elevation cache database.

By default this migrates to the latest version. Use --target-version to
migrate to a specific version, or 0 to roll everything back.

Examples:
  # Migrate to the latest version
  gpxscale cache migrate

  # Roll back to the initial state
  gpxscale cache migrate --target-version 0`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate cache", err)
		}
	},
}
