package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velomapa/gpxscale/core/geo"
	"github.com/velomapa/gpxscale/schema"
)

// testRoute builds a single-segment track route from points.
func testRoute(points ...schema.Point) *schema.Route {
	return &schema.Route{
		Name: "test",
		Tracks: []schema.Track{{
			Name:     "test",
			Segments: []schema.Segment{{Points: points}},
		}},
	}
}

func TestRescale_RelocatesStart(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(500)},
		schema.Point{Latitude: 46.01, Longitude: 8.0, Elevation: schema.Elev(600)},
	)
	d := schema.ScaleDirective{
		DistanceScale:  0.5,
		ElevationScale: 0.5,
		StartLat:       52.5,
		StartLon:       4.0,
	}

	out := Rescale(route, d)
	pts := out.Tracks[0].Segments[0].Points

	assert.Equal(t, 52.5, pts[0].Latitude)
	assert.Equal(t, 4.0, pts[0].Longitude)
	// No start elevation in the directive keeps the route's own base.
	require.NotNil(t, pts[0].Elevation)
	assert.Equal(t, 500.0, *pts[0].Elevation)
}

func TestRescale_StartElevationOverride(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(500)},
		schema.Point{Latitude: 46.01, Longitude: 8.0, Elevation: schema.Elev(600)},
	)
	d := schema.ScaleDirective{
		DistanceScale:  1,
		ElevationScale: 1,
		StartLat:       52.5,
		StartLon:       4.0,
		StartElevation: schema.Elev(3),
	}

	out := Rescale(route, d)
	pts := out.Tracks[0].Segments[0].Points

	require.NotNil(t, pts[0].Elevation)
	assert.Equal(t, 3.0, *pts[0].Elevation)
	// The 100 m climb is preserved on top of the new base.
	require.NotNil(t, pts[1].Elevation)
	assert.InDelta(t, 103.0, *pts[1].Elevation, 1e-9)
}

func TestRescale_HalvesStepDistances(t *testing.T) {
	orig := []schema.Point{
		{Latitude: 46.0, Longitude: 8.0},
		{Latitude: 46.01, Longitude: 8.0},
		{Latitude: 46.01, Longitude: 8.02},
	}
	route := testRoute(orig...)
	d := schema.ScaleDirective{
		DistanceScale:  0.5,
		ElevationScale: 0.5,
		StartLat:       52.5,
		StartLon:       4.0,
	}

	out := Rescale(route, d)
	pts := out.Tracks[0].Segments[0].Points
	require.Len(t, pts, 3)

	for i := 1; i < len(orig); i++ {
		origStep := geo.Distance(orig[i-1], orig[i])
		newStep := geo.Distance(pts[i-1], pts[i])
		assert.InDelta(t, origStep*0.5, newStep, 0.5, "step %d", i)
	}
}

func TestRescale_PreservesBearings(t *testing.T) {
	orig := []schema.Point{
		{Latitude: 46.0, Longitude: 8.0},
		{Latitude: 46.01, Longitude: 8.0},
		{Latitude: 46.01, Longitude: 8.02},
	}
	route := testRoute(orig...)
	d := schema.ScaleDirective{
		DistanceScale:  0.5,
		ElevationScale: 0.5,
		StartLat:       46.0,
		StartLon:       8.0,
	}

	out := Rescale(route, d)
	pts := out.Tracks[0].Segments[0].Points

	for i := 1; i < len(orig); i++ {
		origBearing := geo.Bearing(orig[i-1], orig[i])
		newBearing := geo.Bearing(pts[i-1], pts[i])
		assert.InDelta(t, origBearing, newBearing, 0.01, "step %d", i)
	}
}

func TestRescale_ScalesElevationDeltas(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(100)},
		schema.Point{Latitude: 46.01, Longitude: 8.0, Elevation: schema.Elev(300)},
		schema.Point{Latitude: 46.02, Longitude: 8.0, Elevation: schema.Elev(200)},
	)
	d := schema.ScaleDirective{
		DistanceScale:  1,
		ElevationScale: 0.5,
		StartLat:       46.0,
		StartLon:       8.0,
	}

	out := Rescale(route, d)
	pts := out.Tracks[0].Segments[0].Points

	// +200 m becomes +100 m, -100 m becomes -50 m.
	assert.InDelta(t, 100.0, *pts[0].Elevation, 1e-9)
	assert.InDelta(t, 200.0, *pts[1].Elevation, 1e-9)
	assert.InDelta(t, 150.0, *pts[2].Elevation, 1e-9)
}

func TestRescale_SparseElevationCarriesForward(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(100)},
		schema.Point{Latitude: 46.01, Longitude: 8.0}, // no elevation
		schema.Point{Latitude: 46.02, Longitude: 8.0, Elevation: schema.Elev(300)},
	)
	d := schema.ScaleDirective{
		DistanceScale:  1,
		ElevationScale: 0.5,
		StartLat:       46.0,
		StartLon:       8.0,
	}

	out := Rescale(route, d)
	pts := out.Tracks[0].Segments[0].Points

	// A missing endpoint turns the step flat; the next step is flat too
	// because its delta cannot be computed either.
	require.NotNil(t, pts[1].Elevation)
	assert.InDelta(t, 100.0, *pts[1].Elevation, 1e-9)
	require.NotNil(t, pts[2].Elevation)
	assert.InDelta(t, 100.0, *pts[2].Elevation, 1e-9)
}

func TestRescale_DuplicatePointsStayInPlace(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0},
		schema.Point{Latitude: 46.0, Longitude: 8.0},
		schema.Point{Latitude: 46.01, Longitude: 8.0},
	)
	d := schema.ScaleDirective{
		DistanceScale:  0.5,
		ElevationScale: 0.5,
		StartLat:       52.5,
		StartLon:       4.0,
	}

	out := Rescale(route, d)
	pts := out.Tracks[0].Segments[0].Points

	assert.Equal(t, pts[0].Latitude, pts[1].Latitude)
	assert.Equal(t, pts[0].Longitude, pts[1].Longitude)
}

func TestRescale_DoesNotMutateInput(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(100)},
		schema.Point{Latitude: 46.01, Longitude: 8.0, Elevation: schema.Elev(200)},
	)
	d := schema.ScaleDirective{DistanceScale: 0.5, ElevationScale: 0.5, StartLat: 52.5, StartLon: 4.0}

	_ = Rescale(route, d)

	assert.Equal(t, 46.0, route.Tracks[0].Segments[0].Points[0].Latitude)
	assert.Equal(t, 100.0, *route.Tracks[0].Segments[0].Points[0].Elevation)
}

func TestRescale_SinglePointPassesThrough(t *testing.T) {
	route := testRoute(schema.Point{Latitude: 46.0, Longitude: 8.0})
	d := schema.ScaleDirective{DistanceScale: 0.5, ElevationScale: 0.5, StartLat: 52.5, StartLon: 4.0}

	out := Rescale(route, d)
	pts := out.Tracks[0].Segments[0].Points

	require.Len(t, pts, 1)
	assert.Equal(t, 46.0, pts[0].Latitude)
}

func TestRescale_PathsScaledLikeTracks(t *testing.T) {
	route := &schema.Route{
		Name: "test",
		Paths: []schema.RoutePath{{
			Name: "planned",
			Points: []schema.Point{
				{Latitude: 46.0, Longitude: 8.0},
				{Latitude: 46.01, Longitude: 8.0},
			},
		}},
	}
	d := schema.ScaleDirective{DistanceScale: 0.5, ElevationScale: 0.5, StartLat: 52.5, StartLon: 4.0}

	out := Rescale(route, d)
	require.Len(t, out.Paths, 1)
	pts := out.Paths[0].Points

	assert.Equal(t, 52.5, pts[0].Latitude)
	origStep := geo.Distance(route.Paths[0].Points[0], route.Paths[0].Points[1])
	newStep := geo.Distance(pts[0], pts[1])
	assert.InDelta(t, origStep*0.5, newStep, 0.5)
}

func TestRescale_EndToEndDistance(t *testing.T) {
	// A longer synthetic climb: total distance and ascent should scale by the
	// directive within tight tolerance.
	var points []schema.Point
	for i := 0; i <= 20; i++ {
		points = append(points, schema.Point{
			Latitude:  46.0 + float64(i)*0.005,
			Longitude: 8.0 + float64(i%3)*0.002,
			Elevation: schema.Elev(500 + float64(i)*25),
		})
	}
	route := testRoute(points...)

	d := schema.ScaleDirective{DistanceScale: 0.3, ElevationScale: 0.6, StartLat: 52.5, StartLon: 4.0}
	out := Rescale(route, d)

	origStats := AnalyzeRoute(route)
	newStats := AnalyzeRoute(out)

	assert.InDelta(t, origStats.DistanceKm*0.3, newStats.DistanceKm, origStats.DistanceKm*0.001)
	assert.InDelta(t, origStats.AscentM*0.6, newStats.AscentM, 0.1)
}
