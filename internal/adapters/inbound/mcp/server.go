package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewReportKraftMCPServer creates an MCP server with the reportkraft tools
// and resources registered. dir is the directory whose reports are
// aggregated; relative report paths resolve against it.
func NewReportKraftMCPServer(dir string) *server.MCPServer {
	s := server.NewMCPServer(
		"reportkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, dir)
	registerResources(s, dir)

	return s
}
