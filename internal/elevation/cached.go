package elevation

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/dhconnelly/rtreego"

	"github.com/velomapa/gpxscale/internal/contract"
)

// R-tree tuning for the proximity index.
const (
	indexDims        = 2
	indexMinChildren = 4
	indexMaxChildren = 16
	indexTolerance   = 0.0001
)

// proximityRadiusM is how close a cached sample must be, in meters, to stand
// in for a fresh lookup. Elevation varies slowly at this scale.
const proximityRadiusM = 100.0

// sample is one cached elevation reading in the proximity index.
type sample struct {
	lat, lon  float64
	elevation float64
	rect      *rtreego.Rect
}

func (s *sample) Bounds() *rtreego.Rect {
	return s.rect
}

func newSample(lat, lon, elevation float64) *sample {
	p := rtreego.Point{lat, lon}
	return &sample{lat: lat, lon: lon, elevation: elevation, rect: p.ToRect(indexTolerance)}
}

// CachedProvider wraps an ElevationProvider with a durable cache store and an
// in-memory R-tree proximity index. A nearby cached sample short-circuits
// both the store and the remote lookup.
type CachedProvider struct {
	inner contract.ElevationProvider
	store contract.CacheStore

	mu   sync.RWMutex
	tree *rtreego.Rtree
}

var _ contract.ElevationProvider = &CachedProvider{} // Compile-time check

// NewCachedProvider builds a cached provider, warming the proximity index
// from the store's existing entries.
func NewCachedProvider(inner contract.ElevationProvider, store contract.CacheStore) (*CachedProvider, error) {
	cp := &CachedProvider{
		inner: inner,
		store: store,
		tree:  rtreego.NewTree(indexDims, indexMinChildren, indexMaxChildren),
	}
	if store != nil {
		entries, err := store.Entries()
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			cp.tree.Insert(newSample(e.Lat, e.Lon, e.Elevation))
		}
	}
	return cp, nil
}

// Elevation implements the ElevationProvider interface.
func (cp *CachedProvider) Elevation(ctx context.Context, lat, lon float64) (*float64, error) {
	// 1. Nearby in-memory sample
	if elevation := cp.nearby(lat, lon); elevation != nil {
		return elevation, nil
	}

	// 2. Exact durable cache hit
	if cp.store != nil {
		elevation, err := cp.store.Get(lat, lon)
		if err == nil && elevation != nil {
			cp.remember(lat, lon, *elevation)
			return elevation, nil
		}
	}

	// 3. Remote lookup
	elevation, err := cp.inner.Elevation(ctx, lat, lon)
	if err != nil || elevation == nil {
		return elevation, err
	}
	if cp.store != nil {
		if err := cp.store.Set(lat, lon, *elevation, time.Now().Unix()); err != nil {
			return elevation, err
		}
	}
	cp.remember(lat, lon, *elevation)
	return elevation, nil
}

// nearby returns the elevation of the closest indexed sample within the
// proximity radius, or nil when none qualifies.
func (cp *CachedProvider) nearby(lat, lon float64) *float64 {
	cp.mu.RLock()
	defer cp.mu.RUnlock()

	if cp.tree.Size() == 0 {
		return nil
	}
	results := cp.tree.NearestNeighbors(1, rtreego.Point{lat, lon})
	if len(results) == 0 || results[0] == nil {
		return nil
	}
	s := results[0].(*sample)
	if approxDistanceM(lat, lon, s.lat, s.lon) > proximityRadiusM {
		return nil
	}
	elevation := s.elevation
	return &elevation
}

// remember inserts a sample into the proximity index.
func (cp *CachedProvider) remember(lat, lon, elevation float64) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.tree.Insert(newSample(lat, lon, elevation))
}

// approxDistanceM is an equirectangular distance approximation, good enough
// at proximity-radius scale and cheap enough for hot-path checks.
func approxDistanceM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusM = 6371000.0
	latRad := (lat1 + lat2) / 2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180 * math.Cos(latRad)
	return earthRadiusM * math.Hypot(dLat, dLon)
}
