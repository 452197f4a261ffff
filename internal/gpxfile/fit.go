package gpxfile

import (
	"fmt"
	"os"
	"time"

	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/proto"

	"github.com/velomapa/gpxscale/core/geo"
	"github.com/velomapa/gpxscale/schema"
)

// degreesToSemicircles converts degrees to the FIT semicircle unit.
const degreesToSemicircles = 2147483648.0 / 180.0

// WriteFIT serializes a route as a FIT activity file. Points without
// timestamps are spaced one second apart from the file creation time, so the
// output always decodes as a valid activity.
func WriteFIT(route *schema.Route, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer func() { _ = f.Close() }()

	first, ok := route.FirstPoint()
	if !ok {
		return fmt.Errorf("route %s has no points to write", route.Name)
	}

	startTime := time.Now().UTC()
	if first.Time != nil {
		startTime = first.Time.UTC()
	}

	fit := proto.FIT{}

	fileIDMesg := mesgdef.FileId{
		Type:         typedef.FileActivity,
		Manufacturer: typedef.ManufacturerDevelopment,
		Product:      0,
		SerialNumber: 1,
		TimeCreated:  startTime,
	}
	fit.Messages = append(fit.Messages, fileIDMesg.ToMesg(nil))

	var distance float64
	lastTime := startTime
	pointIndex := 0

	for _, seq := range route.Sequences() {
		for i := range seq {
			if i > 0 {
				distance += geo.Distance(seq[i-1], seq[i])
			}

			ts := startTime.Add(time.Duration(pointIndex) * time.Second)
			if seq[i].Time != nil {
				ts = seq[i].Time.UTC()
			}
			lastTime = ts
			pointIndex++

			record := &mesgdef.Record{
				Timestamp:    ts,
				PositionLat:  int32(seq[i].Latitude * degreesToSemicircles),
				PositionLong: int32(seq[i].Longitude * degreesToSemicircles),
				Distance:     uint32(distance * 100), // cm
			}
			if seq[i].Elevation != nil {
				// Scale 5, offset 500 per the FIT altitude encoding
				record.EnhancedAltitude = uint32((*seq[i].Elevation + 500.0) * 5.0)
			}
			fit.Messages = append(fit.Messages, record.ToMesg(nil))
		}
	}

	elapsed := lastTime.Sub(startTime)

	eventMesg := mesgdef.Event{
		Timestamp: lastTime,
		Event:     typedef.EventTimer,
		EventType: typedef.EventTypeStopAll,
	}
	fit.Messages = append(fit.Messages, eventMesg.ToMesg(nil))

	lapMesg := mesgdef.Lap{
		Timestamp:        lastTime,
		StartTime:        startTime,
		TotalElapsedTime: uint32(elapsed.Milliseconds()),
		TotalTimerTime:   uint32(elapsed.Milliseconds()),
		TotalDistance:    uint32(distance * 100),
		Event:            typedef.EventLap,
		EventType:        typedef.EventTypeStop,
	}
	fit.Messages = append(fit.Messages, lapMesg.ToMesg(nil))

	sessionMesg := mesgdef.Session{
		Timestamp:        lastTime,
		StartTime:        startTime,
		TotalElapsedTime: uint32(elapsed.Milliseconds()),
		TotalTimerTime:   uint32(elapsed.Milliseconds()),
		TotalDistance:    uint32(distance * 100),
		Sport:            typedef.SportCycling,
		SubSport:         typedef.SubSportVirtualActivity,
		Event:            typedef.EventSession,
		EventType:        typedef.EventTypeStop,
		Trigger:          typedef.SessionTriggerActivityEnd,
	}
	fit.Messages = append(fit.Messages, sessionMesg.ToMesg(nil))

	enc := encoder.New(f)
	if err := enc.Encode(&fit); err != nil {
		return fmt.Errorf("failed to encode FIT: %w", err)
	}
	return nil
}
