package gpxfile

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velomapa/gpxscale/schema"
)

func TestWriteTCX_UntimedRouteBecomesCourse(t *testing.T) {
	file := filepath.Join(t.TempDir(), "course.tcx")
	route := &schema.Route{
		Name: "Coastal",
		Tracks: []schema.Track{{
			Segments: []schema.Segment{{
				Points: []schema.Point{
					{Latitude: 52.5, Longitude: 4.0, Elevation: schema.Elev(3)},
					{Latitude: 52.51, Longitude: 4.01, Elevation: schema.Elev(5)},
				},
			}},
		}},
	}

	require.NoError(t, WriteTCX(route, file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var doc tcxDatabase
	require.NoError(t, xml.Unmarshal(data, &doc))

	assert.Nil(t, doc.Activities)
	require.NotNil(t, doc.Courses)
	assert.Equal(t, "Coastal", doc.Courses.Course.Name)
	assert.Greater(t, doc.Courses.Course.DistanceMeters, 1000.0)

	tps := doc.Courses.Course.Track.Trackpoints
	require.Len(t, tps, 2)
	assert.InDelta(t, 52.5, tps[0].Position.LatitudeDegrees, 1e-9)
	assert.Zero(t, tps[0].DistanceMeters)
	assert.Greater(t, tps[1].DistanceMeters, 0.0)
	require.NotNil(t, tps[1].AltitudeMeters)
	assert.Equal(t, 5.0, *tps[1].AltitudeMeters)
}

func TestWriteTCX_TimedRouteBecomesActivity(t *testing.T) {
	file := filepath.Join(t.TempDir(), "activity.tcx")
	t0 := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(5 * time.Minute)
	route := &schema.Route{
		Name: "Trainer Ride",
		Tracks: []schema.Track{{
			Segments: []schema.Segment{{
				Points: []schema.Point{
					{Latitude: 52.5, Longitude: 4.0, Time: &t0},
					{Latitude: 52.51, Longitude: 4.01, Time: &t1},
				},
			}},
		}},
	}

	require.NoError(t, WriteTCX(route, file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var doc tcxDatabase
	require.NoError(t, xml.Unmarshal(data, &doc))

	assert.Nil(t, doc.Courses)
	require.NotNil(t, doc.Activities)
	activity := doc.Activities.Activity
	assert.Equal(t, "Biking", activity.Sport)
	require.Len(t, activity.Laps, 1)
	assert.InDelta(t, 300.0, activity.Laps[0].TotalTimeSeconds, 1e-9)
	assert.Equal(t, "2026-08-01T09:00:00Z", activity.Laps[0].StartTime)
}

func TestWriteTCX_EmptyRoute(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.tcx")
	err := WriteTCX(&schema.Route{Name: "empty"}, file)
	assert.Error(t, err)
}
