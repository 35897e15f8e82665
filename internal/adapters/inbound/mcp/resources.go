package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/exporter"
)

// registerResources registers all rsrcheck MCP resources on the given server.
func registerResources(s *server.MCPServer, repoPath string) {
	// rsr://report - current compliance report
	s.AddResource(
		mcplib.NewResource(
			"rsr://report",
			"Compliance Report",
			mcplib.WithResourceDescription("Current RSR compliance report for the repository"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(repoPath),
	)
}

func handleReportResource(repoPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := auditRepo(repoPath)
		if err != nil {
			return nil, fmt.Errorf("audit failed: %w", err)
		}

		data, err := json.MarshalIndent(exporter.BuildDocument(report), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "rsr://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
