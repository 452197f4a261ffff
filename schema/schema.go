// Package schema defines the shared data model for gpxscale: routes and their
// points, derived statistics, scale directives, and the enums used across the
// CLI, core algorithms, and output layers.
package schema

import "time"

// Point is a single recorded GPS position. Elevation and Time are optional;
// absence is meaningful (sparse recordings) and consumers must check presence
// instead of relying on sentinel values.
type Point struct {
	Latitude  float64
	Longitude float64
	Elevation *float64
	Time      *time.Time
}

// Elev returns a pointer to v, for building points with elevation inline.
func Elev(v float64) *float64 {
	return &v
}

// Segment is one continuous recorded path. Point order encodes the path shape
// and must never be reordered.
type Segment struct {
	Points []Point
}

// Track is a recorded track: an ordered list of segments.
type Track struct {
	Name     string
	Segments []Segment
}

// RoutePath is a planned (waypoint-style) path. It is rescaled exactly like a
// track segment.
type RoutePath struct {
	Name   string
	Points []Point
}

// Route is the in-memory representation of one GPX file: its tracks plus any
// waypoint-style paths, in file order.
type Route struct {
	Name   string
	Tracks []Track
	Paths  []RoutePath
}

// FirstPoint returns the first point of the route in traversal order, and
// false when the route holds no points at all.
func (r *Route) FirstPoint() (Point, bool) {
	for _, t := range r.Tracks {
		for _, s := range t.Segments {
			if len(s.Points) > 0 {
				return s.Points[0], true
			}
		}
	}
	for _, p := range r.Paths {
		if len(p.Points) > 0 {
			return p.Points[0], true
		}
	}
	return Point{}, false
}

// PointCount returns the total number of points across tracks and paths.
func (r *Route) PointCount() int {
	n := 0
	for _, t := range r.Tracks {
		for _, s := range t.Segments {
			n += len(s.Points)
		}
	}
	for _, p := range r.Paths {
		n += len(p.Points)
	}
	return n
}

// Sequences returns every ordered point sequence of the route (each track
// segment, then each path) in traversal order. The returned slices alias the
// route's own storage.
func (r *Route) Sequences() [][]Point {
	var seqs [][]Point
	for _, t := range r.Tracks {
		for _, s := range t.Segments {
			seqs = append(seqs, s.Points)
		}
	}
	for _, p := range r.Paths {
		seqs = append(seqs, p.Points)
	}
	return seqs
}

// ConvertPathsToTracks turns each waypoint-style path into a single-segment
// track and clears the path list. Timestamp synthesis requires track points,
// so this runs before timing annotation.
func (r *Route) ConvertPathsToTracks() {
	for _, p := range r.Paths {
		name := p.Name
		if name == "" {
			name = "Converted Route"
		}
		r.Tracks = append(r.Tracks, Track{
			Name:     name,
			Segments: []Segment{{Points: p.Points}},
		})
	}
	r.Paths = nil
}
