// Package parquet provides data structures and functions for exporting route
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/velomapa/gpxscale/schema"
)

// RouteReportRecord represents one analyzed route file.
type RouteReportRecord struct {
	// File is the path to the source GPX file
	File string `parquet:"file,snappy"`

	// Name is the route's display name
	Name string `parquet:"name,snappy"`

	// DistanceKm is the accumulated route distance in kilometers
	DistanceKm float64 `parquet:"distance_km,snappy"`

	// AscentM is the total positive elevation change in meters
	AscentM float64 `parquet:"ascent_m,snappy"`

	// DescentM is the total negative elevation change in meters
	DescentM float64 `parquet:"descent_m,snappy"`
}

// ScalePreviewRecord represents the projected outcome of scaling one route.
type ScalePreviewRecord struct {
	// File is the path to the source GPX file
	File string `parquet:"file,snappy"`

	// OriginalKm is the route distance before scaling
	OriginalKm float64 `parquet:"original_km,snappy"`

	// ScaledKm is the projected distance after scaling
	ScaledKm float64 `parquet:"scaled_km,snappy"`

	// DistanceScale is the effective distance scale after constraint resolution
	DistanceScale float64 `parquet:"distance_scale,snappy"`

	// ElevationScale is the effective elevation scale after constraint resolution
	ElevationScale float64 `parquet:"elevation_scale,snappy"`

	// OriginalAscentM is the total ascent before scaling
	OriginalAscentM float64 `parquet:"original_ascent_m,snappy"`

	// ScaledAscentM is the projected ascent after scaling
	ScaledAscentM float64 `parquet:"scaled_ascent_m,snappy"`
}

// WriteRouteReportsParquet writes a slice of RouteReportRecord structs to a Parquet file.
func WriteRouteReportsParquet(data []RouteReportRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the RouteReportRecord struct tags
	writer := parquet.NewGenericWriter[RouteReportRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteScalePreviewsParquet writes a slice of ScalePreviewRecord structs to a Parquet file.
func WriteScalePreviewsParquet(data []ScalePreviewRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the ScalePreviewRecord struct tags
	writer := parquet.NewGenericWriter[ScalePreviewRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRouteReports converts schema.RouteReport to RouteReportRecord for Parquet export.
func ConvertRouteReports(reports []schema.RouteReport) []RouteReportRecord {
	result := make([]RouteReportRecord, len(reports))
	for i, rep := range reports {
		result[i] = RouteReportRecord{
			File:       rep.File,
			Name:       rep.Name,
			DistanceKm: rep.Stats.DistanceKm,
			AscentM:    rep.Stats.AscentM,
			DescentM:   rep.Stats.DescentM,
		}
	}
	return result
}

// ConvertScalePreviews converts schema.ScalePreview to ScalePreviewRecord for Parquet export.
func ConvertScalePreviews(previews []schema.ScalePreview) []ScalePreviewRecord {
	result := make([]ScalePreviewRecord, len(previews))
	for i, p := range previews {
		result[i] = ScalePreviewRecord{
			File:            p.File,
			OriginalKm:      p.OriginalKm,
			ScaledKm:        p.ScaledKm,
			DistanceScale:   p.DistanceScale,
			ElevationScale:  p.ElevationScale,
			OriginalAscentM: p.OriginalAscentM,
			ScaledAscentM:   p.ScaledAscentM,
		}
	}
	return result
}
