package gpxfile

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/velomapa/gpxscale/core/geo"
	"github.com/velomapa/gpxscale/schema"
)

// tcxNamespace is the Garmin Training Center Database v2 schema.
const tcxNamespace = "http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2"

// TCX document structures, trimmed to the fields trainers actually read.
type tcxDatabase struct {
	XMLName    xml.Name       `xml:"TrainingCenterDatabase"`
	Namespace  string         `xml:"xmlns,attr"`
	Activities *tcxActivities `xml:"Activities,omitempty"`
	Courses    *tcxCourses    `xml:"Courses,omitempty"`
}

type tcxActivities struct {
	Activity tcxActivity `xml:"Activity"`
}

type tcxActivity struct {
	Sport string   `xml:"Sport,attr"`
	ID    string   `xml:"Id"`
	Laps  []tcxLap `xml:"Lap"`
}

type tcxLap struct {
	StartTime        string   `xml:"StartTime,attr"`
	TotalTimeSeconds float64  `xml:"TotalTimeSeconds"`
	DistanceMeters   float64  `xml:"DistanceMeters"`
	Intensity        string   `xml:"Intensity"`
	TriggerMethod    string   `xml:"TriggerMethod"`
	Track            tcxTrack `xml:"Track"`
}

type tcxCourses struct {
	Course tcxCourse `xml:"Course"`
}

type tcxCourse struct {
	Name           string   `xml:"Name"`
	DistanceMeters float64  `xml:"Lap>DistanceMeters"`
	Track          tcxTrack `xml:"Track"`
}

type tcxTrack struct {
	Trackpoints []tcxTrackpoint `xml:"Trackpoint"`
}

type tcxTrackpoint struct {
	Time           string      `xml:"Time,omitempty"`
	Position       tcxPosition `xml:"Position"`
	AltitudeMeters *float64    `xml:"AltitudeMeters,omitempty"`
	DistanceMeters float64     `xml:"DistanceMeters"`
}

type tcxPosition struct {
	LatitudeDegrees  float64 `xml:"LatitudeDegrees"`
	LongitudeDegrees float64 `xml:"LongitudeDegrees"`
}

// WriteTCX serializes a route as TCX. Routes with timestamps become a cycling
// activity; untimed routes become a course.
func WriteTCX(route *schema.Route, file string) error {
	doc := tcxDatabase{Namespace: tcxNamespace}

	track, totalDistance := buildTCXTrack(route)
	if len(track.Trackpoints) == 0 {
		return fmt.Errorf("route %s has no points to write", route.Name)
	}

	first, _ := route.FirstPoint()
	if first.Time != nil {
		lastTime := lastTimestamp(route)
		doc.Activities = &tcxActivities{
			Activity: tcxActivity{
				Sport: "Biking",
				ID:    first.Time.UTC().Format(time.RFC3339),
				Laps: []tcxLap{{
					StartTime:        first.Time.UTC().Format(time.RFC3339),
					TotalTimeSeconds: lastTime.Sub(*first.Time).Seconds(),
					DistanceMeters:   totalDistance,
					Intensity:        "Active",
					TriggerMethod:    "Manual",
					Track:            track,
				}},
			},
		}
	} else {
		doc.Courses = &tcxCourses{
			Course: tcxCourse{
				Name:           route.Name,
				DistanceMeters: totalDistance,
				Track:          track,
			},
		}
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize TCX: %w", err)
	}
	data = append([]byte(xml.Header), data...)
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}

// buildTCXTrack flattens the route into trackpoints with running distance.
func buildTCXTrack(route *schema.Route) (tcxTrack, float64) {
	var track tcxTrack
	var distance float64

	for _, seq := range route.Sequences() {
		for i := range seq {
			if i > 0 {
				distance += geo.Distance(seq[i-1], seq[i])
			}
			tp := tcxTrackpoint{
				Position: tcxPosition{
					LatitudeDegrees:  seq[i].Latitude,
					LongitudeDegrees: seq[i].Longitude,
				},
				AltitudeMeters: seq[i].Elevation,
				DistanceMeters: distance,
			}
			if seq[i].Time != nil {
				tp.Time = seq[i].Time.UTC().Format(time.RFC3339)
			}
			track.Trackpoints = append(track.Trackpoints, tp)
		}
	}
	return track, distance
}

// lastTimestamp returns the timestamp of the final point that carries one.
func lastTimestamp(route *schema.Route) time.Time {
	var last time.Time
	for _, seq := range route.Sequences() {
		for i := range seq {
			if seq[i].Time != nil {
				last = *seq[i].Time
			}
		}
	}
	return last
}
