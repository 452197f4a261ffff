package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velomapa/gpxscale/schema"
)

func TestAnalyzeRoute_DistanceAndElevation(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(500)},
		schema.Point{Latitude: 46.01, Longitude: 8.0, Elevation: schema.Elev(700)},
		schema.Point{Latitude: 46.02, Longitude: 8.0, Elevation: schema.Elev(650)},
	)

	stats := AnalyzeRoute(route)

	// Two steps of ~1.11 km each along a meridian.
	assert.InDelta(t, 2.22, stats.DistanceKm, 0.02)
	assert.InDelta(t, 200.0, stats.AscentM, 1e-9)
	assert.InDelta(t, 50.0, stats.DescentM, 1e-9)
}

func TestAnalyzeRoute_EmptyRoute(t *testing.T) {
	stats := AnalyzeRoute(&schema.Route{Name: "empty"})
	assert.Zero(t, stats.DistanceKm)
	assert.Zero(t, stats.AscentM)
	assert.Zero(t, stats.DescentM)
}

func TestAnalyzeRoute_MissingElevationSkipsDelta(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(500)},
		schema.Point{Latitude: 46.01, Longitude: 8.0},
		schema.Point{Latitude: 46.02, Longitude: 8.0, Elevation: schema.Elev(700)},
	)

	stats := AnalyzeRoute(route)

	// Distance still accumulates; elevation deltas need both endpoints.
	assert.Greater(t, stats.DistanceKm, 2.0)
	assert.Zero(t, stats.AscentM)
}

func TestAnalyzeRoute_CombinesTracksAndPaths(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0},
		schema.Point{Latitude: 46.01, Longitude: 8.0},
	)
	route.Paths = append(route.Paths, schema.RoutePath{
		Name: "extra",
		Points: []schema.Point{
			{Latitude: 47.0, Longitude: 8.0},
			{Latitude: 47.01, Longitude: 8.0},
		},
	})

	stats := AnalyzeRoute(route)
	assert.InDelta(t, 2.22, stats.DistanceKm, 0.02)
}

func TestPreviewScaling_ProjectsStats(t *testing.T) {
	reports := []schema.RouteReport{
		{File: "a.gpx", Stats: schema.RouteStats{DistanceKm: 100, AscentM: 2000, DescentM: 1800}},
		{File: "b.gpx", Stats: schema.RouteStats{DistanceKm: 40, AscentM: 200, DescentM: 200}},
	}

	previews, err := PreviewScaling(reports, 0.5, nil, floatPtr(500))
	require.NoError(t, err)
	require.Len(t, previews, 2)

	// First route hits the ascent cap: 2000 * 0.5 > 500 -> elevation scale 0.25.
	assert.Equal(t, 0.5, previews[0].DistanceScale)
	assert.InDelta(t, 0.25, previews[0].ElevationScale, 1e-9)
	assert.InDelta(t, 50.0, previews[0].ScaledKm, 1e-9)
	assert.InDelta(t, 500.0, previews[0].ScaledAscentM, 1e-9)
	assert.InDelta(t, 450.0, previews[0].ScaledDescentM, 1e-9)

	// Second route stays proportional.
	assert.Equal(t, 0.5, previews[1].ElevationScale)
	assert.InDelta(t, 100.0, previews[1].ScaledAscentM, 1e-9)
}

func TestPreviewScaling_DegenerateRoute(t *testing.T) {
	reports := []schema.RouteReport{
		{File: "a.gpx", Stats: schema.RouteStats{DistanceKm: 0}},
	}
	_, err := PreviewScaling(reports, 0.5, floatPtr(10), nil)
	assert.ErrorIs(t, err, ErrDegenerateRoute)
}
