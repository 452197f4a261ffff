package schema

import "time"

// RouteStats are derived per-route metrics, recomputed on demand and never
// stored on points or segments.
type RouteStats struct {
	DistanceKm float64 `json:"distance_km"`
	AscentM    float64 `json:"ascent_m"`
	DescentM   float64 `json:"descent_m"`
}

// ScaleDirective holds the fully resolved parameters for rescaling one route.
// It is computed once, before rescaling starts, and never adjusted mid-route.
type ScaleDirective struct {
	DistanceScale  float64
	ElevationScale float64
	StartLat       float64
	StartLon       float64
	// StartElevation is the real-world elevation at the new start, when a
	// lookup produced one. Nil means "keep the route's own first elevation".
	StartElevation *float64
}

// RouteReport is the analysis result for one discovered file.
type RouteReport struct {
	File  string     `json:"file"`
	Name  string     `json:"name,omitempty"`
	Stats RouteStats `json:"stats"`
}

// ScalePreview shows the effective scales and projected stats for one route
// before any file is written.
type ScalePreview struct {
	File            string  `json:"file"`
	OriginalKm      float64 `json:"original_km"`
	ScaledKm        float64 `json:"scaled_km"`
	DistanceScale   float64 `json:"distance_scale"`
	ElevationScale  float64 `json:"elevation_scale"`
	OriginalAscentM float64 `json:"original_ascent_m"`
	ScaledAscentM   float64 `json:"scaled_ascent_m"`
	ScaledDescentM  float64 `json:"scaled_descent_m"`
}

// ScaleOutcome records what happened to one route during a scaling run.
// Err is set when the route failed; the batch continues regardless.
type ScaleOutcome struct {
	File           string        `json:"file"`
	OutputFile     string        `json:"output_file,omitempty"`
	DistanceScale  float64       `json:"distance_scale,omitempty"`
	ElevationScale float64       `json:"elevation_scale,omitempty"`
	RideDuration   time.Duration `json:"ride_duration,omitempty"`
	Err            error         `json:"-"`
}
