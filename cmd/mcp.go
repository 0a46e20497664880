package cmd

import (
	"github.com/huangsam/teamdisc/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the teamdisc MCP server",
	Long:  `Launch an MCP server that lets AI agents score assessments and query department analytics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Logs go to stderr so that stdio stays clean for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		svc, repo, err := openService(rootCtx)
		if err != nil {
			return err
		}
		defer closeRepo(repo)
		return mcp.StartMCPServer(rootCtx, svc, version)
	},
}
