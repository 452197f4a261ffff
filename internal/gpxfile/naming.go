package gpxfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/velomapa/gpxscale/schema"
)

// OutputName builds the output file path for a scaled route. The scale goes
// into the name; when elevation was capped independently, its scale does too.
//
//	tour-stage-3.gpx -> tour-stage-3_scale_0.50.gpx
//	alpine.gpx       -> alpine_scale_0.50_elev_0.25.tcx
func OutputName(inputFile, outputFolder, baseName string, distScale, elevScale float64, format schema.OutputFormat) string {
	base := filepath.Base(inputFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if baseName != "" {
		stem = baseName + "-" + stem
	}

	name := fmt.Sprintf("%s_scale_%.2f", stem, distScale)
	if elevScale != distScale {
		name = fmt.Sprintf("%s_elev_%.2f", name, elevScale)
	}
	name += "." + string(format)

	folder := outputFolder
	if folder == "" {
		folder = filepath.Dir(inputFile)
	}
	return filepath.Join(folder, name)
}

// ConvertName builds the output file path for a format conversion, keeping
// the original stem and swapping the extension.
func ConvertName(inputFile, outputFolder, baseName string, format schema.OutputFormat) string {
	base := filepath.Base(inputFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if baseName != "" {
		stem = baseName + "-" + stem
	}

	folder := outputFolder
	if folder == "" {
		folder = filepath.Dir(inputFile)
	}
	return filepath.Join(folder, stem+"."+string(format))
}

// Write dispatches a route to the writer for the given format.
func Write(route *schema.Route, file string, format schema.OutputFormat) error {
	switch format {
	case schema.GPXFormat:
		return WriteGPX(route, file)
	case schema.TCXFormat:
		return WriteTCX(route, file)
	case schema.FITFormat:
		return WriteFIT(route, file)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
