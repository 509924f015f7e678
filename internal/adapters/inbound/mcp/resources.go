package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/reportkraft/internal/adapters/outbound/config"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/summary"
)

const (
	summaryURI = "reportkraft://summary"
	configURI  = "reportkraft://config"
)

// registerResources registers all reportkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, dir string) {
	s.AddResource(
		mcplib.NewResource(
			summaryURI,
			"Comprehensive Analysis",
			mcplib.WithResourceDescription("Last written consolidated analysis summary"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSummaryResource(dir),
	)

	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Configuration",
			mcplib.WithResourceDescription("Effective report paths and thresholds"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(dir),
	)
}

func handleSummaryResource(dir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		s, path, err := readSummary(dir)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("no summary found at %s", path)
		}

		data, err := summary.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshaling summary: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      summaryURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleConfigResource(dir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(dir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      configURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
