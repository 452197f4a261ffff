package cmd

import (
	"github.com/spf13/cobra"

	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the gpxscale MCP server",
	Long:  `Launch an MCP server that allows AI agents to analyze, preview, and scale routes via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		locator, provider, err := buildElevationStack()
		if err != nil {
			contract.LogFatal("Cannot set up elevation lookups", err)
		}
		return mcp.StartMCPServer(rootCtx, cfg, locator, provider)
	},
}
