package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewRSRCheckMCPServer creates an MCP server with the rsrcheck tools
// and resources registered. repoPath is the root of the repository to
// audit.
func NewRSRCheckMCPServer(repoPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"rsrcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, repoPath)
	registerResources(s, repoPath)

	return s
}
