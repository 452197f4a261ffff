package core

import (
	"math"
	"time"

	"github.com/velomapa/gpxscale/core/geo"
	"github.com/velomapa/gpxscale/schema"
)

// Speed model constants. These are empirical tuning values, not physics;
// treat them as configuration, not law.
const (
	speedWeightFactor = 0.1  // divisor weight factor in the base-speed cube root
	gradeSpeedFactor  = 0.05 // speed reduction per percent of grade
	minGradeAdjust    = 0.2
	maxGradeAdjust    = 2.0
	minSpeedMS        = 1.0 // floor keeps steep synthetic climbs from stalling
)

// startBuffer is added before "now" when no explicit start time is given, so
// a synthesized ride appears to have just finished.
const startBuffer = 10 * time.Minute

// StepSpeed returns the synthetic traversal speed in m/s for one step, from
// rider power and mass plus the step's elevation delta and distance. Missing
// elevation on either endpoint is passed in as a zero delta.
func StepSpeed(powerW, massKg, elevDeltaM, distanceM float64) float64 {
	base := math.Cbrt(powerW / (speedWeightFactor * massKg))

	adjust := 1.0
	if distanceM > 0 {
		gradePercent := elevDeltaM / distanceM * 100
		adjust = 1 - gradePercent*gradeSpeedFactor
		adjust = math.Max(minGradeAdjust, math.Min(maxGradeAdjust, adjust))
	}

	return math.Max(minSpeedMS, base*adjust)
}

// stepDuration returns the traversal time in seconds between two consecutive
// points. Zero-length steps contribute zero, never NaN.
func stepDuration(prev, curr schema.Point, powerW, massKg float64) float64 {
	d := geo.Distance(prev, curr)
	if d == 0 {
		return 0
	}
	delta := 0.0
	if prev.Elevation != nil && curr.Elevation != nil {
		delta = *curr.Elevation - *prev.Elevation
	}
	return d / StepSpeed(powerW, massKg, delta, d)
}

// RideDuration returns the total synthetic traversal time for the route:
// the sum of per-step durations across tracks and paths in traversal order.
func RideDuration(route *schema.Route, powerW, massKg float64) time.Duration {
	total := 0.0
	for _, seq := range route.Sequences() {
		for i := 1; i < len(seq); i++ {
			total += stepDuration(seq[i-1], seq[i], powerW, massKg)
		}
	}
	return time.Duration(total * float64(time.Second))
}

// AnnotateTimestamps assigns a synthetic timestamp to every point of the
// route in place, walking forward from the start time at the modeled speed.
// When start is nil the ride is backdated so it ends about ten minutes ago.
// Timestamps are monotonically non-decreasing by construction.
func AnnotateTimestamps(route *schema.Route, powerW, massKg float64, start *time.Time) {
	var current time.Time
	if start != nil {
		current = *start
	} else {
		current = time.Now().Add(-(RideDuration(route, powerW, massKg) + startBuffer))
	}

	for _, seq := range route.Sequences() {
		for i := range seq {
			if i > 0 {
				secs := stepDuration(seq[i-1], seq[i], powerW, massKg)
				current = current.Add(time.Duration(secs * float64(time.Second)))
			}
			ts := current
			seq[i].Time = &ts
		}
	}
}
