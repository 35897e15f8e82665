package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/rsr-standard/rsrcheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the rsrcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start rsrcheck MCP server (stdio)",
		Long:  "Start the rsrcheck MCP server using stdio transport. This allows AI coding assistants to query the repository's RSR compliance report and badge.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoPath == "" {
				repoPath = "."
			}
			s := mcpadapter.NewRSRCheckMCPServer(repoPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&repoPath, "path", "", "Repository path (defaults to current working directory)")

	return cmd
}
