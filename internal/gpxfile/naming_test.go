package gpxfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velomapa/gpxscale/schema"
)

func TestOutputName_Basic(t *testing.T) {
	got := OutputName("routes/tour-stage-3.gpx", "", "", 0.5, 0.5, schema.GPXFormat)
	assert.Equal(t, filepath.Join("routes", "tour-stage-3_scale_0.50.gpx"), got)
}

func TestOutputName_ElevationScaleDiffers(t *testing.T) {
	got := OutputName("routes/alpine.gpx", "", "", 0.5, 0.25, schema.TCXFormat)
	assert.Equal(t, filepath.Join("routes", "alpine_scale_0.50_elev_0.25.tcx"), got)
}

func TestOutputName_OutputFolderAndBaseName(t *testing.T) {
	got := OutputName("routes/alpine.gpx", "out", "trainer", 1.5, 1.5, schema.FITFormat)
	assert.Equal(t, filepath.Join("out", "trainer-alpine_scale_1.50.fit"), got)
}

func TestConvertName(t *testing.T) {
	got := ConvertName("routes/alpine.gpx", "", "", schema.TCXFormat)
	assert.Equal(t, filepath.Join("routes", "alpine.tcx"), got)

	got = ConvertName("routes/alpine.gpx", "out", "v2", schema.FITFormat)
	assert.Equal(t, filepath.Join("out", "v2-alpine.fit"), got)
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	route := &schema.Route{Name: "x"}
	err := Write(route, "x.kml", schema.OutputFormat("kml"))
	assert.Error(t, err)
}
