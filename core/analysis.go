package core

import (
	"github.com/velomapa/gpxscale/core/geo"
	"github.com/velomapa/gpxscale/schema"
)

// AnalyzeRoute computes the derived stats for a route: accumulated haversine
// distance plus positive and negative elevation deltas, across tracks and
// paths. Stats are recomputed on demand, never stored on the route.
func AnalyzeRoute(route *schema.Route) schema.RouteStats {
	var distanceM, ascentM, descentM float64

	for _, seq := range route.Sequences() {
		if len(seq) < 2 {
			continue
		}
		for i := 1; i < len(seq); i++ {
			distanceM += geo.Distance(seq[i-1], seq[i])
			if seq[i-1].Elevation != nil && seq[i].Elevation != nil {
				delta := *seq[i].Elevation - *seq[i-1].Elevation
				if delta > 0 {
					ascentM += delta
				} else {
					descentM -= delta
				}
			}
		}
	}

	return schema.RouteStats{
		DistanceKm: distanceM / 1000,
		AscentM:    ascentM,
		DescentM:   descentM,
	}
}

// PreviewScaling resolves the effective scales for each analyzed route and
// projects the resulting stats, without touching any file.
func PreviewScaling(reports []schema.RouteReport, desiredScale float64, minKm, maxAscentM *float64) ([]schema.ScalePreview, error) {
	previews := make([]schema.ScalePreview, 0, len(reports))
	for _, rep := range reports {
		distScale, err := ResolveDistanceScale(rep.Stats.DistanceKm, desiredScale, minKm)
		if err != nil {
			return nil, err
		}
		elevScale := ResolveElevationScale(rep.Stats.AscentM, distScale, maxAscentM)
		previews = append(previews, schema.ScalePreview{
			File:            rep.File,
			OriginalKm:      rep.Stats.DistanceKm,
			ScaledKm:        rep.Stats.DistanceKm * distScale,
			DistanceScale:   distScale,
			ElevationScale:  elevScale,
			OriginalAscentM: rep.Stats.AscentM,
			ScaledAscentM:   rep.Stats.AscentM * elevScale,
			ScaledDescentM:  rep.Stats.DescentM * elevScale,
		})
	}
	return previews, nil
}
