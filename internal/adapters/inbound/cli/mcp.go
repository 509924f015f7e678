package cli

import (
	mcpadapter "github.com/openkraft/reportkraft/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the reportkraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start reportkraft MCP server (stdio)",
		Long:  "Start the reportkraft MCP server using stdio transport. AI coding assistants can run the aggregation and read the consolidated summary.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = "."
			}
			s := mcpadapter.NewReportKraftMCPServer(dir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&dir, "path", "", "Report directory (defaults to current working directory)")

	return cmd
}
