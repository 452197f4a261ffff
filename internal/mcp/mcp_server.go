// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/velomapa/gpxscale/internal/contract"
)

// NewMCPServer initializes and configures the route scaling MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, locator contract.Locator, provider contract.ElevationProvider) *server.MCPServer {
	s := server.NewMCPServer(
		"GPX Scale Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		locator:  locator,
		provider: provider,
	}

	// --- 1. Tool: analyze_routes ---
	s.AddTool(mcp.NewTool("analyze_routes",
		mcp.WithDescription("Analyze GPX route files in a folder: distance, ascent, descent, terrain profile."),
		mcp.WithString("folder", mcp.Description("Folder containing GPX files (defaults to the configured folder).")),
	), h.handleAnalyzeRoutes)

	// --- 2. Tool: preview_scaling ---
	s.AddTool(mcp.NewTool("preview_scaling",
		mcp.WithDescription("Preview the effective scales and projected stats for each route, without writing files."),
		mcp.WithString("folder", mcp.Description("Folder containing GPX files.")),
		mcp.WithNumber("scale", mcp.Description("Desired distance scale factor (e.g. 0.5 halves each route).")),
		mcp.WithNumber("min_distance", mcp.Description("Minimum output distance in km; raises the scale when violated.")),
		mcp.WithNumber("max_ascent", mcp.Description("Maximum output ascent in meters; caps the elevation scale.")),
	), h.handlePreviewScaling)

	// --- 3. Tool: scale_routes ---
	s.AddTool(mcp.NewTool("scale_routes",
		mcp.WithDescription("Scale GPX routes, relocate their start, and write the output files."),
		mcp.WithString("folder", mcp.Description("Folder containing GPX files.")),
		mcp.WithNumber("scale", mcp.Description("Desired distance scale factor.")),
		mcp.WithNumber("start_lat", mcp.Description("Latitude of the new start point.")),
		mcp.WithNumber("start_lon", mcp.Description("Longitude of the new start point.")),
		mcp.WithString("format", mcp.Description("Output format."), mcp.Enum("gpx", "tcx", "fit")),
		mcp.WithBoolean("add_timing", mcp.Description("Synthesize timestamps from a rider power/weight model.")),
	), h.handleScaleRoutes)

	return s
}

// StartMCPServer starts the route scaling MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, locator contract.Locator, provider contract.ElevationProvider) error {
	s := NewMCPServer(baseCfg, locator, provider)
	return server.ServeStdio(s)
}
