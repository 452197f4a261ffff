// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReports prints route analysis results using the configured output format.
func (ow *OutWriter) WriteReports(reports []schema.RouteReport, cfg *contract.Config, duration time.Duration) error {
	return writeReportResults(reports, cfg, duration)
}

// WritePreviews prints scaling previews using the configured output format.
func (ow *OutWriter) WritePreviews(previews []schema.ScalePreview, cfg *contract.Config, duration time.Duration) error {
	return writePreviewResults(previews, cfg, duration)
}

// WriteOutcomes prints scaling outcomes using the configured output format.
func (ow *OutWriter) WriteOutcomes(outcomes []schema.ScaleOutcome, cfg *contract.Config, duration time.Duration) error {
	return writeOutcomeResults(outcomes, cfg, duration)
}

// getMaxTableNameWidth calculates the maximum width for route names in table
// output based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns, borders, and padding
	available := termWidth - 55
	if available < 12 {
		return 12
	}
	if available > 50 {
		return 50
	}
	return available
}
