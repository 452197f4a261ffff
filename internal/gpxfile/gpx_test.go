package gpxfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velomapa/gpxscale/schema"
)

func sampleRoute() *schema.Route {
	ts := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return &schema.Route{
		Name: "Morning Loop",
		Tracks: []schema.Track{{
			Name: "Morning Loop",
			Segments: []schema.Segment{{
				Points: []schema.Point{
					{Latitude: 52.5, Longitude: 4.0, Elevation: schema.Elev(3.2), Time: &ts},
					{Latitude: 52.51, Longitude: 4.01, Elevation: schema.Elev(5.8)},
					{Latitude: 52.52, Longitude: 4.02},
				},
			}},
		}},
	}
}

func TestWriteAndLoadGPX_RoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "loop.gpx")
	require.NoError(t, WriteGPX(sampleRoute(), file))

	route, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "Morning Loop", route.Name)
	require.Len(t, route.Tracks, 1)
	require.Len(t, route.Tracks[0].Segments, 1)
	pts := route.Tracks[0].Segments[0].Points
	require.Len(t, pts, 3)

	assert.InDelta(t, 52.5, pts[0].Latitude, 1e-9)
	assert.InDelta(t, 4.0, pts[0].Longitude, 1e-9)
	require.NotNil(t, pts[0].Elevation)
	assert.InDelta(t, 3.2, *pts[0].Elevation, 1e-9)
	require.NotNil(t, pts[0].Time)
	assert.True(t, pts[0].Time.Equal(time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)))

	// Absence survives the round trip too.
	assert.Nil(t, pts[2].Elevation)
	assert.Nil(t, pts[2].Time)
}

func TestWriteAndLoadGPX_RoutesStayRoutes(t *testing.T) {
	route := &schema.Route{
		Name: "Planned",
		Paths: []schema.RoutePath{{
			Name: "Planned",
			Points: []schema.Point{
				{Latitude: 52.5, Longitude: 4.0},
				{Latitude: 52.51, Longitude: 4.01},
			},
		}},
	}
	file := filepath.Join(t.TempDir(), "planned.gpx")
	require.NoError(t, WriteGPX(route, file))

	loaded, err := Load(file)
	require.NoError(t, err)
	assert.Empty(t, loaded.Tracks)
	require.Len(t, loaded.Paths, 1)
	assert.Len(t, loaded.Paths[0].Points, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.gpx"))
	assert.Error(t, err)
}

func TestLoad_EmptyRoute(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.gpx")
	content := `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
</gpx>`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	_, err := Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no GPS points")
}

func TestLoad_NameFallbackToFilename(t *testing.T) {
	file := filepath.Join(t.TempDir(), "unnamed.gpx")
	content := `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk><trkseg>
    <trkpt lat="52.5" lon="4.0"></trkpt>
    <trkpt lat="52.51" lon="4.01"></trkpt>
  </trkseg></trk>
</gpx>`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	route, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", route.Name)
}
