package core

import (
	"github.com/velomapa/gpxscale/core/geo"
	"github.com/velomapa/gpxscale/schema"
)

// Rescale produces a new route from the input route and a resolved directive.
// The input is never mutated: every step vector is computed between original
// points, and each output point is projected from the previous output point.
// That keeps the bearing sequence (the route shape) identical to the source
// while scaling step distances and elevation deltas.
//
// Tracks and waypoint-style paths are rescaled identically. Sequences with
// fewer than two points pass through unchanged.
func Rescale(route *schema.Route, d schema.ScaleDirective) *schema.Route {
	out := &schema.Route{Name: route.Name}

	for _, t := range route.Tracks {
		nt := schema.Track{Name: t.Name}
		for _, s := range t.Segments {
			nt.Segments = append(nt.Segments, schema.Segment{
				Points: rescalePoints(s.Points, d),
			})
		}
		out.Tracks = append(out.Tracks, nt)
	}
	for _, p := range route.Paths {
		out.Paths = append(out.Paths, schema.RoutePath{
			Name:   p.Name,
			Points: rescalePoints(p.Points, d),
		})
	}
	return out
}

// rescalePoints rebuilds one point sequence. orig is read-only; the output is
// freshly allocated and shares no storage with it.
func rescalePoints(orig []schema.Point, d schema.ScaleDirective) []schema.Point {
	if len(orig) < 2 {
		// No scaling is defined for a single point or an empty sequence.
		out := make([]schema.Point, len(orig))
		copy(out, orig)
		return out
	}

	out := make([]schema.Point, len(orig))

	startElev := d.StartElevation
	if startElev == nil && orig[0].Elevation != nil {
		startElev = schema.Elev(*orig[0].Elevation)
	}
	out[0] = schema.Point{
		Latitude:  d.StartLat,
		Longitude: d.StartLon,
		Elevation: startElev,
	}

	for i := 1; i < len(orig); i++ {
		dOrig := geo.Distance(orig[i-1], orig[i])
		prev := out[i-1]

		var lat, lon float64
		if dOrig == 0 {
			// Bearing is undefined for a zero-length step; stay in place.
			lat, lon = prev.Latitude, prev.Longitude
		} else {
			bearing := geo.Bearing(orig[i-1], orig[i])
			lat, lon = geo.Destination(prev.Latitude, prev.Longitude, bearing, dOrig*d.DistanceScale)
		}

		var elev *float64
		if orig[i-1].Elevation != nil && orig[i].Elevation != nil && prev.Elevation != nil {
			delta := (*orig[i].Elevation - *orig[i-1].Elevation) * d.ElevationScale
			elev = schema.Elev(*prev.Elevation + delta)
		} else if prev.Elevation != nil {
			// Sparse source elevation degrades to a flat carry-forward.
			elev = schema.Elev(*prev.Elevation)
		}

		out[i] = schema.Point{Latitude: lat, Longitude: lon, Elevation: elev}
	}

	return out
}
