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

// writeReportResults outputs the analysis results, dispatching based on the output format configured.
func writeReportResults(reports []schema.RouteReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportJSON(w, reports)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, reports, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := requireParquetFile(cfg.OutputFile); err != nil {
			return err
		}
		return parquet.WriteRouteReportsParquet(parquet.ConvertRouteReports(reports), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(reports, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(reports []schema.RouteReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Route", "Distance (km)", "Ascent (m)", "Descent (m)", "Profile"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	var totalKm, totalAscent, totalDescent float64
	for i, rep := range reports {
		totalKm += rep.Stats.DistanceKm
		totalAscent += rep.Stats.AscentM
		totalDescent += rep.Stats.DescentM
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(rep.Name, nameWidth),
			fmtFloat(rep.Stats.DistanceKm),
			fmtFloat(rep.Stats.AscentM),
			fmtFloat(rep.Stats.DescentM),
			terrainLabel(rep.Stats.DistanceKm, rep.Stats.AscentM, cfg),
		})
	}
	data = append(data, []string{
		"",
		"Total",
		fmtFloat(totalKm),
		fmtFloat(totalAscent),
		fmtFloat(totalDescent),
		terrainLabel(totalKm, totalAscent, cfg),
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analyzed %d routes in %v with %d workers. Cache backend: %s\n",
		len(reports), duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeReportCSV writes the analysis results in CSV format.
func writeReportCSV(w io.Writer, reports []schema.RouteReport, fmtFloat func(float64) string) error {
	header := []string{"rank", "file", "name", "distance_km", "ascent_m", "descent_m", "profile"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, rep := range reports {
			rec := []string{
				strconv.Itoa(i + 1),
				rep.File,
				rep.Name,
				fmtFloat(rep.Stats.DistanceKm),
				fmtFloat(rep.Stats.AscentM),
				fmtFloat(rep.Stats.DescentM),
				contract.GetPlainLabel(contract.AscentPerKm(rep.Stats.DistanceKm, rep.Stats.AscentM)),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeReportJSON writes the analysis results in JSON format.
func writeReportJSON(w io.Writer, reports []schema.RouteReport) error {
	type jsonRouteReport struct {
		Rank    int    `json:"rank"`
		Profile string `json:"profile"`
		schema.RouteReport
	}

	output := make([]jsonRouteReport, len(reports))
	for i, rep := range reports {
		output[i] = jsonRouteReport{
			Rank:        i + 1,
			Profile:     contract.GetPlainLabel(contract.AscentPerKm(rep.Stats.DistanceKm, rep.Stats.AscentM)),
			RouteReport: rep,
		}
	}

	return writeJSON(w, output)
}
