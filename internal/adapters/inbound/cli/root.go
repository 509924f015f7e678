package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	opts := &aggregateOptions{}

	cmd := &cobra.Command{
		Use:   "reportkraft",
		Short: "Consolidate lint, dependency and file-size reports",
		Long: "reportkraft reads eslint-report.json, dependency-graph.json and large-files.txt, " +
			"keeps the records that cross their thresholds, and writes comprehensive-analysis.json.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregate(cmd, opts)
		},
	}
	opts.bindFlags(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newSizesCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
