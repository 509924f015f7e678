package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/reportkraft/internal/adapters/outbound/reports"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/scanner"
	"github.com/openkraft/reportkraft/internal/domain"
)

func newSizesCmd() *cobra.Command {
	var (
		extensions []string
		exclude    []string
		output     string
		stdout     bool
	)

	cmd := &cobra.Command{
		Use:   "sizes [dir]",
		Short: "Generate " + domain.DefaultLargeFilesPath + " from source line counts",
		Long:  "Count the lines of every source file under dir and write them as \"<count> <path>\" lines, largest first.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			var sc domain.SourceScanner = scanner.New()
			counts, err := sc.Scan(dir, domain.ScanOptions{
				Extensions:   extensions,
				ExcludePaths: exclude,
			})
			if err != nil {
				return fmt.Errorf("scanning %s: %w", dir, err)
			}

			text := reports.FormatLargeFileList(counts)
			if stdout {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}

			dest := domain.ResolvePath(dir, output)
			if err := os.WriteFile(dest, []byte(text), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Counted %d files into %s\n", len(counts), filepath.Clean(dest))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "File extensions to count (default: JavaScript/TypeScript sources)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directories or files to skip")
	cmd.Flags().StringVar(&output, "output", domain.DefaultLargeFilesPath, "Output file, relative to dir")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the list instead of writing a file")

	return cmd
}
