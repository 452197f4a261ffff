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
	"github.com/velomapa/gpxscale/schema"
)

// writeOutcomeResults outputs scaling outcomes, dispatching based on the output format configured.
func writeOutcomeResults(outcomes []schema.ScaleOutcome, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOutcomeJSON(w, outcomes)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOutcomeCSV(w, outcomes, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for scale results")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOutcomeTable(outcomes, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// outcomeStatus renders the per-file result column.
func outcomeStatus(o *schema.ScaleOutcome) string {
	if o.Err != nil {
		return "FAILED: " + o.Err.Error()
	}
	return o.OutputFile
}

// writeOutcomeTable generates and writes the human-readable table.
func writeOutcomeTable(outcomes []schema.ScaleOutcome, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Route", "Scale", "Elev Scale", "Ride Time", "Output"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	failures := 0
	for i, o := range outcomes {
		if o.Err != nil {
			failures++
		}
		rideTime := ""
		if o.RideDuration > 0 {
			rideTime = o.RideDuration.Round(time.Second).String()
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(o.File, nameWidth),
			fmt.Sprintf("%.2f", o.DistanceScale),
			fmt.Sprintf("%.2f", o.ElevationScale),
			rideTime,
			outcomeStatus(&o),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scaled %d routes (%d failed) in %v with %d workers\n",
		len(outcomes)-failures, failures, duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeOutcomeCSV writes scaling outcomes in CSV format.
func writeOutcomeCSV(w io.Writer, outcomes []schema.ScaleOutcome, fmtFloat func(float64) string) error {
	header := []string{"rank", "file", "distance_scale", "elevation_scale", "ride_seconds", "output", "error"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, o := range outcomes {
			errMsg := ""
			if o.Err != nil {
				errMsg = o.Err.Error()
			}
			rec := []string{
				strconv.Itoa(i + 1),
				o.File,
				fmt.Sprintf("%.2f", o.DistanceScale),
				fmt.Sprintf("%.2f", o.ElevationScale),
				fmtFloat(o.RideDuration.Seconds()),
				o.OutputFile,
				errMsg,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeOutcomeJSON writes scaling outcomes in JSON format.
func writeOutcomeJSON(w io.Writer, outcomes []schema.ScaleOutcome) error {
	type jsonOutcome struct {
		Rank  int    `json:"rank"`
		Error string `json:"error,omitempty"`
		schema.ScaleOutcome
	}

	output := make([]jsonOutcome, len(outcomes))
	for i, o := range outcomes {
		j := jsonOutcome{Rank: i + 1, ScaleOutcome: o}
		if o.Err != nil {
			j.Error = o.Err.Error()
		}
		output[i] = j
	}

	return writeJSON(w, output)
}
