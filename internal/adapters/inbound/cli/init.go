package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/reportkraft/internal/adapters/outbound/config"
	"github.com/openkraft/reportkraft/internal/domain"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + config.FileName + " configuration file",
		Long:  "Create a " + config.FileName + " holding the default report paths and thresholds.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absDir, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)

	return cmd
}

func generateConfig() string {
	cfg := domain.DefaultConfig()
	th := cfg.Thresholds()

	return fmt.Sprintf(`# reportkraft configuration
# Paths are relative to the directory reportkraft runs in.

lint_report_path: %s
dependency_graph_path: %s
large_files_path: %s
output_path: %s

# A record is kept only when it is strictly greater than its threshold.
lint_error_threshold: %d
lint_warning_threshold: %d
dependency_count_threshold: %d
large_file_line_threshold: %d

logging:
  level: %s
  format: %s
`,
		cfg.LintReportPath, cfg.DependencyGraphPath, cfg.LargeFilesPath, cfg.OutputPath,
		th.LintErrors, th.LintWarnings, th.DependencyCount, th.LargeFileLines,
		cfg.Logging.Level, cfg.Logging.Format,
	)
}
