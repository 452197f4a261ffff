// Package core implements the route rescaling pipeline: scale-factor
// resolution, the vector-based path rescaler, the speed/timing model, route
// analysis, and the batch orchestration that ties them together.
package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/internal/gpxfile"
	"github.com/velomapa/gpxscale/schema"
)

// ExecuteAnalyze discovers the GPX files in the configured folder and
// analyzes them in parallel. Results keep stage order regardless of which
// worker finished first; unreadable files are warned about and skipped.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config) ([]schema.RouteReport, error) {
	files, err := gpxfile.Discover(cfg.Folder)
	if err != nil {
		return nil, err
	}

	reports := make([]*schema.RouteReport, len(files))

	idxCh := make(chan int, len(files))
	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Go(func() {
			for idx := range idxCh {
				// Each goroutine writes to a unique index, which is safe.
				route, err := gpxfile.Load(files[idx])
				if err != nil {
					contract.LogWarn("Skipping unreadable route", err)
					continue
				}
				reports[idx] = &schema.RouteReport{
					File:  files[idx],
					Name:  gpxfile.DisplayName(files[idx]),
					Stats: AnalyzeRoute(route),
				}
			}
		})
	}

	for i := range files {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]schema.RouteReport, 0, len(reports))
	for _, rep := range reports {
		if rep != nil {
			out = append(out, *rep)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no readable routes in %s", cfg.Folder)
	}
	return out, nil
}

// ExecutePreview analyzes the folder and projects the scaling outcome for
// each route without writing any file.
func ExecutePreview(ctx context.Context, cfg *contract.Config) ([]schema.ScalePreview, error) {
	reports, err := ExecuteAnalyze(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return PreviewScaling(reports, cfg.Scale, cfg.MinDistanceKm, cfg.MaxAscentM)
}

// ResolveStart determines the new start coordinate and its real-world
// elevation. Geolocation runs only when configured; the elevation lookup is
// best-effort and a failure degrades to "keep the route's own elevation".
func ResolveStart(ctx context.Context, cfg *contract.Config, locator contract.Locator, provider contract.ElevationProvider) (float64, float64, *float64, error) {
	lat, lon := cfg.StartLat, cfg.StartLon
	if cfg.UseHere {
		var err error
		lat, lon, err = locator.Locate(ctx)
		if err != nil {
			return 0, 0, nil, fmt.Errorf("failed to resolve current location: %w", err)
		}
	}

	if cfg.SkipElevation || provider == nil {
		return lat, lon, nil, nil
	}
	elevation, err := provider.Elevation(ctx, lat, lon)
	if err != nil {
		contract.LogWarn("Start elevation lookup failed", err)
		return lat, lon, nil, nil
	}
	return lat, lon, elevation, nil
}

// ExecuteScale runs the full pipeline for every route in the folder: analyze,
// resolve scales, rescale, optionally synthesize timestamps, and write the
// output file. One route failing never stops the batch; its outcome carries
// the error instead.
func ExecuteScale(ctx context.Context, cfg *contract.Config, locator contract.Locator, provider contract.ElevationProvider) ([]schema.ScaleOutcome, error) {
	files, err := gpxfile.Discover(cfg.Folder)
	if err != nil {
		return nil, err
	}

	// The start coordinate and its elevation are shared by every route.
	startLat, startLon, startElev, err := ResolveStart(ctx, cfg, locator, provider)
	if err != nil {
		return nil, err
	}

	outcomes := make([]schema.ScaleOutcome, len(files))

	idxCh := make(chan int, len(files))
	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Go(func() {
			for idx := range idxCh {
				outcomes[idx] = scaleOne(files[idx], cfg, startLat, startLon, startElev)
			}
		})
	}

	for i := range files {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// scaleOne processes a single route file end to end.
func scaleOne(file string, cfg *contract.Config, startLat, startLon float64, startElev *float64) schema.ScaleOutcome {
	outcome := schema.ScaleOutcome{File: file}

	route, err := gpxfile.Load(file)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	stats := AnalyzeRoute(route)
	directive, err := ResolveDirective(stats, cfg.Scale, cfg.MinDistanceKm, cfg.MaxAscentM, startLat, startLon, startElev)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.DistanceScale = directive.DistanceScale
	outcome.ElevationScale = directive.ElevationScale

	scaled := Rescale(route, directive)

	if cfg.AddTiming {
		// Trainers expect timestamps on track points, not route points.
		scaled.ConvertPathsToTracks()
		AnnotateTimestamps(scaled, cfg.PowerW, cfg.WeightKg, nil)
		outcome.RideDuration = RideDuration(scaled, cfg.PowerW, cfg.WeightKg)
	}

	outputFile := gpxfile.OutputName(file, cfg.OutputFolder, cfg.BaseName,
		directive.DistanceScale, directive.ElevationScale, cfg.Format)
	if err := gpxfile.Write(scaled, outputFile, cfg.Format); err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.OutputFile = outputFile
	return outcome
}

// ExecuteConvert rewrites every discovered GPX file in the configured output
// format without scaling or relocating anything. Useful for producing clean
// TCX or FIT versions of existing routes.
func ExecuteConvert(ctx context.Context, cfg *contract.Config) ([]schema.ScaleOutcome, error) {
	files, err := gpxfile.Discover(cfg.Folder)
	if err != nil {
		return nil, err
	}

	outcomes := make([]schema.ScaleOutcome, len(files))

	idxCh := make(chan int, len(files))
	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Go(func() {
			for idx := range idxCh {
				outcomes[idx] = convertOne(files[idx], cfg)
			}
		})
	}

	for i := range files {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// convertOne rewrites a single route file in the configured format.
func convertOne(file string, cfg *contract.Config) schema.ScaleOutcome {
	outcome := schema.ScaleOutcome{File: file, DistanceScale: 1, ElevationScale: 1}

	route, err := gpxfile.Load(file)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	if cfg.AddTiming {
		route.ConvertPathsToTracks()
		AnnotateTimestamps(route, cfg.PowerW, cfg.WeightKg, nil)
		outcome.RideDuration = RideDuration(route, cfg.PowerW, cfg.WeightKg)
	}

	outputFile := gpxfile.ConvertName(file, cfg.OutputFolder, cfg.BaseName, cfg.Format)
	if err := gpxfile.Write(route, outputFile, cfg.Format); err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.OutputFile = outputFile
	return outcome
}
