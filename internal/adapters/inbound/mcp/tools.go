package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/rsr-standard/rsrcheck/internal/adapters/outbound/config"
	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/exporter"
	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/gitinfo"
	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/probe"
	"github.com/rsr-standard/rsrcheck/internal/application"
	"github.com/rsr-standard/rsrcheck/internal/domain"
)

// registerTools registers all rsrcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, repoPath string) {
	// 1. rsr_report
	s.AddTool(
		mcplib.NewTool("rsr_report",
			mcplib.WithDescription("Returns the full RSR compliance report for the repository as JSON"),
		),
		handleReport(repoPath),
	)

	// 2. rsr_level
	s.AddTool(
		mcplib.NewTool("rsr_level",
			mcplib.WithDescription("Returns the overall compliance level and per-level scores"),
		),
		handleLevel(repoPath),
	)

	// 3. rsr_badge
	s.AddTool(
		mcplib.NewTool("rsr_badge",
			mcplib.WithDescription("Returns the shields.io badge URL for the repository's compliance level"),
		),
		handleBadge(repoPath),
	)
}

// auditRepo runs a full audit for the configured repository path.
func auditRepo(repoPath string) (*domain.Report, error) {
	cfg, err := configAdapter.New().Load(repoPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	svc := application.NewAuditService(probe.NewOpener(), gitinfo.New())
	return svc.Audit(repoPath, cfg)
}

func handleReport(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := auditRepo(repoPath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(exporter.BuildDocument(report))
	}
}

func handleLevel(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := auditRepo(repoPath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}

		type levelSummary struct {
			OverallLevel string                       `json:"overall_level"`
			Scores       map[string]domain.LevelScore `json:"scores"`
		}

		summary := levelSummary{
			OverallLevel: report.OverallLevel().String(),
			Scores:       make(map[string]domain.LevelScore, len(domain.ChecklistLevels)),
		}
		for _, level := range domain.ChecklistLevels {
			summary.Scores[level.Key()] = report.Score(level)
		}
		return jsonResult(summary)
	}
}

func handleBadge(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := auditRepo(repoPath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return textResult(domain.BadgeURL(report.OverallLevel())), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
