package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/velomapa/gpxscale/core"
	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	locator  contract.Locator
	provider contract.ElevationProvider
}

func (h *toolHandler) handleAnalyzeRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("folder", ""); f != "" {
		cfg.Folder = f
	}

	reports, err := core.ExecuteAnalyze(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(reports, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handlePreviewScaling(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("folder", ""); f != "" {
		cfg.Folder = f
	}
	if s := request.GetFloat("scale", 0); s > 0 {
		cfg.Scale = s
	}
	if v := request.GetFloat("min_distance", 0); v > 0 {
		cfg.MinDistanceKm = &v
	}
	if v := request.GetFloat("max_ascent", 0); v > 0 {
		cfg.MaxAscentM = &v
	}

	previews, err := core.ExecutePreview(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("preview failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(previews, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScaleRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("folder", ""); f != "" {
		cfg.Folder = f
	}
	if s := request.GetFloat("scale", 0); s > 0 {
		cfg.Scale = s
	}
	if lat := request.GetFloat("start_lat", cfg.StartLat); lat != cfg.StartLat {
		cfg.StartLat = lat
	}
	if lon := request.GetFloat("start_lon", cfg.StartLon); lon != cfg.StartLon {
		cfg.StartLon = lon
	}
	if f := request.GetString("format", ""); f != "" {
		cfg.Format = schema.OutputFormat(f)
	}
	cfg.AddTiming = request.GetBool("add_timing", cfg.AddTiming)

	outcomes, err := core.ExecuteScale(ctx, cfg, h.locator, h.provider)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scaling failed: %v", err)), nil
	}

	// Errors are per-route; serialize them as strings so nothing is lost.
	type jsonOutcome struct {
		Error string `json:"error,omitempty"`
		schema.ScaleOutcome
	}
	output := make([]jsonOutcome, len(outcomes))
	for i, o := range outcomes {
		output[i] = jsonOutcome{ScaleOutcome: o}
		if o.Err != nil {
			output[i].Error = o.Err.Error()
		}
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
