package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velomapa/gpxscale/schema"
)

func TestStepSpeed_FlatMatchesBase(t *testing.T) {
	// Base speed for 250 W at 75 kg is cbrt(250 / 7.5).
	base := math.Cbrt(250.0 / 7.5)
	speed := StepSpeed(250, 75, 0, 1000)
	assert.InDelta(t, base, speed, 1e-9)
}

func TestStepSpeed_UphillSlower(t *testing.T) {
	flat := StepSpeed(250, 75, 0, 1000)
	uphill := StepSpeed(250, 75, 50, 1000) // 5% grade
	assert.Less(t, uphill, flat)
	// 5% grade reduces speed by 25%.
	assert.InDelta(t, flat*0.75, uphill, 1e-9)
}

func TestStepSpeed_DownhillFaster(t *testing.T) {
	flat := StepSpeed(250, 75, 0, 1000)
	downhill := StepSpeed(250, 75, -50, 1000)
	assert.Greater(t, downhill, flat)
}

func TestStepSpeed_GradeAdjustClamped(t *testing.T) {
	base := math.Cbrt(250.0 / 7.5)

	// A 40% wall clamps the adjustment at 0.2.
	steep := StepSpeed(250, 75, 400, 1000)
	assert.InDelta(t, base*0.2, steep, 1e-9)

	// A plunge clamps at 2.0.
	plunge := StepSpeed(250, 75, -400, 1000)
	assert.InDelta(t, base*2.0, plunge, 1e-9)
}

func TestStepSpeed_FloorAppliesForWeakRiders(t *testing.T) {
	// 10 W through a steep climb still moves at the 1 m/s floor.
	speed := StepSpeed(10, 100, 400, 1000)
	assert.Equal(t, 1.0, speed)
}

func TestRideDuration_FlatRoute(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(10)},
		schema.Point{Latitude: 46.01, Longitude: 8.0, Elevation: schema.Elev(10)},
	)

	d := RideDuration(route, 250, 75)

	// ~1112 m at cbrt(250/7.5) ~= 3.218 m/s is ~345 s.
	assert.InDelta(t, 345, d.Seconds(), 5)
}

func TestRideDuration_EmptyRouteIsZero(t *testing.T) {
	assert.Zero(t, RideDuration(&schema.Route{}, 250, 75))
}

func TestAnnotateTimestamps_ExplicitStart(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0, Elevation: schema.Elev(10)},
		schema.Point{Latitude: 46.01, Longitude: 8.0, Elevation: schema.Elev(10)},
		schema.Point{Latitude: 46.02, Longitude: 8.0, Elevation: schema.Elev(10)},
	)
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	AnnotateTimestamps(route, 250, 75, &start)

	pts := route.Tracks[0].Segments[0].Points
	require.NotNil(t, pts[0].Time)
	assert.Equal(t, start, *pts[0].Time)

	// Monotonically non-decreasing.
	for i := 1; i < len(pts); i++ {
		require.NotNil(t, pts[i].Time)
		assert.False(t, pts[i].Time.Before(*pts[i-1].Time))
	}

	// Total span matches the modeled ride duration.
	total := pts[len(pts)-1].Time.Sub(*pts[0].Time)
	assert.InDelta(t, RideDuration(route, 250, 75).Seconds(), total.Seconds(), 1)
}

func TestAnnotateTimestamps_BackdatedEnd(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0},
		schema.Point{Latitude: 46.01, Longitude: 8.0},
	)

	AnnotateTimestamps(route, 250, 75, nil)

	pts := route.Tracks[0].Segments[0].Points
	require.NotNil(t, pts[1].Time)

	// The ride ends roughly ten minutes before now.
	end := *pts[1].Time
	assert.WithinDuration(t, time.Now().Add(-10*time.Minute), end, time.Minute)
}

func TestAnnotateTimestamps_DuplicatePointsShareTime(t *testing.T) {
	route := testRoute(
		schema.Point{Latitude: 46.0, Longitude: 8.0},
		schema.Point{Latitude: 46.0, Longitude: 8.0},
	)
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	AnnotateTimestamps(route, 250, 75, &start)

	pts := route.Tracks[0].Segments[0].Points
	assert.Equal(t, *pts[0].Time, *pts[1].Time)
}
