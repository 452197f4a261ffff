package core

import (
	"errors"
	"fmt"

	"github.com/velomapa/gpxscale/schema"
)

// ErrDegenerateRoute is returned when a constraint needs a division by a
// zero-length route metric. Zero-length routes must be skipped upstream.
var ErrDegenerateRoute = errors.New("degenerate route")

// ResolveDistanceScale returns the effective distance scale for a route.
// Without a minimum-distance constraint the desired scale passes through.
// When the naive result would fall below the floor, the scale is raised to
// hit the floor exactly.
func ResolveDistanceScale(originalKm, desiredScale float64, minKm *float64) (float64, error) {
	if minKm == nil {
		return desiredScale, nil
	}
	if originalKm == 0 {
		return 0, fmt.Errorf("%w: zero distance with minimum-distance constraint", ErrDegenerateRoute)
	}
	if originalKm*desiredScale < *minKm {
		return *minKm / originalKm, nil
	}
	return desiredScale, nil
}

// ResolveElevationScale returns the effective elevation scale for a route.
// Elevation tracks the distance scale by default, so unscaled-elevation routes
// still look proportionate. A maximum-ascent constraint caps it independently
// of how the distance scale was resolved; on flat routes the cap is trivially
// satisfied and the distance scale is kept.
func ResolveElevationScale(originalAscentM, distanceScale float64, maxAscentM *float64) float64 {
	if maxAscentM == nil || originalAscentM == 0 {
		return distanceScale
	}
	if originalAscentM*distanceScale > *maxAscentM {
		return *maxAscentM / originalAscentM
	}
	return distanceScale
}

// ResolveDirective computes the full scale directive for one route from its
// stats and the batch parameters. The two resolutions are sequential, not a
// joint optimization: a route whose distance scale was raised to meet the
// minimum may still have its elevation scale lowered to meet the cap.
func ResolveDirective(stats schema.RouteStats, desiredScale float64, minKm, maxAscentM *float64,
	startLat, startLon float64, startElev *float64) (schema.ScaleDirective, error) {
	distScale, err := ResolveDistanceScale(stats.DistanceKm, desiredScale, minKm)
	if err != nil {
		return schema.ScaleDirective{}, err
	}
	return schema.ScaleDirective{
		DistanceScale:  distScale,
		ElevationScale: ResolveElevationScale(stats.AscentM, distScale, maxAscentM),
		StartLat:       startLat,
		StartLon:       startLon,
		StartElevation: startElev,
	}, nil
}
