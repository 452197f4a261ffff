// Package contract provides interfaces and shared utilities for the gpxscale
// CLI's internal architecture.
package contract

import "context"

// ElevationProvider resolves the real-world elevation at a coordinate.
// A nil result with a nil error means the provider has no data for the
// coordinate; callers fall back to the route's own base elevation.
type ElevationProvider interface {
	Elevation(ctx context.Context, lat, lon float64) (*float64, error)
}

// Locator resolves the device's current coordinate.
type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetElevationStore() CacheStore
}

// CacheEntry is one cached elevation sample.
type CacheEntry struct {
	Lat       float64
	Lon       float64
	Elevation float64
	CreatedAt int64
}

// CacheStatus summarizes the state of a cache store.
type CacheStatus struct {
	Backend string
	Entries int64
}

// CacheStore defines the interface for durable elevation storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(lat, lon float64) (*float64, error)
	Set(lat, lon, elevation float64, timestamp int64) error
	Entries() ([]CacheEntry, error)
	Clear() error
	Status() (CacheStatus, error)
	Close() error
}
