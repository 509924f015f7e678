package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/reportkraft/internal/adapters/outbound/config"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/reports"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/summary"
	"github.com/openkraft/reportkraft/internal/application"
	"github.com/openkraft/reportkraft/internal/domain"
)

// registerTools registers all reportkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, dir string) {
	s.AddTool(
		mcplib.NewTool("reportkraft_aggregate",
			mcplib.WithDescription("Aggregate the lint report, dependency graph and large-file list into comprehensive-analysis.json and return the run result"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Build the summary without writing the output file")),
		),
		handleAggregate(dir),
	)

	s.AddTool(
		mcplib.NewTool("reportkraft_get_summary",
			mcplib.WithDescription("Returns the last written comprehensive analysis summary"),
		),
		handleGetSummary(dir),
	)

	s.AddTool(
		mcplib.NewTool("reportkraft_get_config",
			mcplib.WithDescription("Returns the effective report paths and thresholds"),
		),
		handleGetConfig(dir),
	)
}

func newAggregateService() *application.AggregateService {
	r := reports.New()
	return application.NewAggregateService(r, r, r, summary.New())
}

func handleAggregate(dir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := newAggregateService()
		dryRun, _ := request.GetArguments()["dry_run"].(bool)
		if dryRun {
			return jsonResult(svc.Build(dir, cfg))
		}

		result, err := svc.Aggregate(dir, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("aggregation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleGetSummary(dir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		s, path, err := readSummary(dir)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if s == nil {
			return errorResult(fmt.Sprintf("no summary found at %s (run reportkraft_aggregate first)", path)), nil
		}
		return summaryResult(s)
	}
}

func handleGetConfig(dir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		return jsonResult(cfg)
	}
}

// readSummary loads the summary at the configured output path.
// Returns a nil summary if none has been written yet.
func readSummary(dir string) (*domain.AnalysisSummary, string, error) {
	cfg, err := config.New().Load(dir)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}

	path := domain.ResolvePath(dir, cfg.OutputPath)
	s, err := summary.New().Read(path)
	if err != nil {
		return nil, path, fmt.Errorf("reading %s: %w", path, err)
	}
	return s, path, nil
}

// summaryResult returns the summary exactly as it is written to disk.
func summaryResult(s *domain.AnalysisSummary) (*mcplib.CallToolResult, error) {
	data, err := summary.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling summary: %w", err)
	}
	return textResult(string(data)), nil
}

// jsonResult marshals v to indented JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return textResult(string(data)), nil
}

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
