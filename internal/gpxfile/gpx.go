package gpxfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/velomapa/gpxscale/schema"
)

// gpxCreator is stamped into generated GPX files.
const gpxCreator = "gpxscale"

// Load parses a GPX file into a route. Tracks and routes are both carried
// over; elevation and timestamps survive only where the file has them.
func Load(file string) (*schema.Route, error) {
	parsed, err := gpx.ParseFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	route := &schema.Route{Name: routeName(parsed, file)}

	for _, track := range parsed.Tracks {
		t := schema.Track{Name: track.Name}
		for _, segment := range track.Segments {
			seg := schema.Segment{Points: make([]schema.Point, 0, len(segment.Points))}
			for i := range segment.Points {
				seg.Points = append(seg.Points, fromGPXPoint(&segment.Points[i]))
			}
			t.Segments = append(t.Segments, seg)
		}
		route.Tracks = append(route.Tracks, t)
	}

	for _, r := range parsed.Routes {
		path := schema.RoutePath{Name: r.Name, Points: make([]schema.Point, 0, len(r.Points))}
		for i := range r.Points {
			path.Points = append(path.Points, fromGPXPoint(&r.Points[i]))
		}
		route.Paths = append(route.Paths, path)
	}

	if route.PointCount() == 0 {
		return nil, fmt.Errorf("no GPS points found in %s", file)
	}
	return route, nil
}

// WriteGPX serializes a route back to GPX 1.1. Routes stay routes and tracks
// stay tracks unless the caller converted them beforehand.
func WriteGPX(route *schema.Route, file string) error {
	out := &gpx.GPX{Creator: gpxCreator, Name: route.Name}

	for _, track := range route.Tracks {
		t := gpx.GPXTrack{Name: track.Name}
		for _, segment := range track.Segments {
			seg := gpx.GPXTrackSegment{Points: make([]gpx.GPXPoint, 0, len(segment.Points))}
			for i := range segment.Points {
				seg.Points = append(seg.Points, toGPXPoint(&segment.Points[i]))
			}
			t.Segments = append(t.Segments, seg)
		}
		out.Tracks = append(out.Tracks, t)
	}

	for _, path := range route.Paths {
		r := gpx.GPXRoute{Name: path.Name}
		for i := range path.Points {
			r.Points = append(r.Points, toGPXPoint(&path.Points[i]))
		}
		out.Routes = append(out.Routes, r)
	}

	xmlBytes, err := out.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("failed to serialize GPX: %w", err)
	}
	if err := os.WriteFile(file, xmlBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}

// fromGPXPoint converts one parsed point, keeping elevation and timestamp
// only when present in the source.
func fromGPXPoint(p *gpx.GPXPoint) schema.Point {
	point := schema.Point{
		Latitude:  p.Point.Latitude,
		Longitude: p.Point.Longitude,
	}
	if p.Elevation.NotNull() {
		point.Elevation = schema.Elev(p.Elevation.Value())
	}
	if !p.Timestamp.IsZero() {
		ts := p.Timestamp
		point.Time = &ts
	}
	return point
}

// toGPXPoint converts one schema point for serialization.
func toGPXPoint(p *schema.Point) gpx.GPXPoint {
	out := gpx.GPXPoint{}
	out.Point.Latitude = p.Latitude
	out.Point.Longitude = p.Longitude
	if p.Elevation != nil {
		out.Elevation = *gpx.NewNullableFloat64(*p.Elevation)
	}
	if p.Time != nil {
		out.Timestamp = *p.Time
	}
	return out
}

// routeName prefers the file-level name, falling back to the first track or
// route name, then the bare filename.
func routeName(parsed *gpx.GPX, file string) string {
	if parsed.Name != "" {
		return parsed.Name
	}
	for _, track := range parsed.Tracks {
		if track.Name != "" {
			return track.Name
		}
	}
	for _, r := range parsed.Routes {
		if r.Name != "" {
			return r.Name
		}
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
