package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/internal/parquet"
	"github.com/velomapa/gpxscale/schema"
)

// writePreviewResults outputs scaling previews, dispatching based on the output format configured.
func writePreviewResults(previews []schema.ScalePreview, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, previews)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePreviewCSV(w, previews, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := requireParquetFile(cfg.OutputFile); err != nil {
			return err
		}
		return parquet.WriteScalePreviewsParquet(parquet.ConvertScalePreviews(previews), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePreviewTable(previews, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writePreviewTable generates and writes the human-readable table.
func writePreviewTable(previews []schema.ScalePreview, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Route", "Km", "-> Km", "Scale", "Elev Scale", "Ascent (m)", "-> Ascent (m)", "Profile"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	var totalScaledKm, totalScaledAscent float64
	for i, p := range previews {
		totalScaledKm += p.ScaledKm
		totalScaledAscent += p.ScaledAscentM
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(p.File, nameWidth),
			fmtFloat(p.OriginalKm),
			fmtFloat(p.ScaledKm),
			fmt.Sprintf("%.2f", p.DistanceScale),
			fmt.Sprintf("%.2f", p.ElevationScale),
			fmtFloat(p.OriginalAscentM),
			fmtFloat(p.ScaledAscentM),
			terrainLabel(p.ScaledKm, p.ScaledAscentM, cfg),
		})
	}
	data = append(data, []string{
		"",
		"Total",
		"",
		fmtFloat(totalScaledKm),
		"",
		"",
		"",
		fmtFloat(totalScaledAscent),
		terrainLabel(totalScaledKm, totalScaledAscent, cfg),
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Previewed %d routes in %v. No files were written.\n", len(previews), duration); err != nil {
		return err
	}
	return nil
}

// writePreviewCSV writes scaling previews in CSV format.
func writePreviewCSV(w io.Writer, previews []schema.ScalePreview, fmtFloat func(float64) string) error {
	header := []string{"rank", "file", "original_km", "scaled_km", "distance_scale", "elevation_scale", "original_ascent_m", "scaled_ascent_m"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, p := range previews {
			rec := []string{
				strconv.Itoa(i + 1),
				p.File,
				fmtFloat(p.OriginalKm),
				fmtFloat(p.ScaledKm),
				fmt.Sprintf("%.2f", p.DistanceScale),
				fmt.Sprintf("%.2f", p.ElevationScale),
				fmtFloat(p.OriginalAscentM),
				fmtFloat(p.ScaledAscentM),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
