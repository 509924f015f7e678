package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openkraft/reportkraft/internal/adapters/outbound/config"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/history"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/reports"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/summary"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/reportkraft/internal/application"
	"github.com/openkraft/reportkraft/internal/domain"
	"github.com/openkraft/reportkraft/internal/logging"
)

type aggregateOptions struct {
	dir        string
	configPath string

	lintReport      string
	dependencyGraph string
	largeFiles      string
	output          string

	lintErrors   int
	lintWarnings int
	maxDeps      int
	maxLines     int

	jsonOutput  bool
	showSummary bool
	record      bool

	logLevel  string
	logFormat string
}

func (o *aggregateOptions) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.dir, "dir", ".", "Directory the report paths are relative to")
	f.StringVar(&o.configPath, "config", "", "Config file (defaults to "+config.FileName+" in --dir)")

	f.StringVar(&o.lintReport, "lint-report", "", "ESLint JSON report (default "+domain.DefaultLintReportPath+")")
	f.StringVar(&o.dependencyGraph, "dependency-graph", "", "Dependency graph JSON (default "+domain.DefaultDependencyGraphPath+")")
	f.StringVar(&o.largeFiles, "large-files", "", "Large-file list (default "+domain.DefaultLargeFilesPath+")")
	f.StringVar(&o.output, "output", "", "Summary output file (default "+domain.DefaultOutputPath+")")

	f.IntVar(&o.lintErrors, "lint-errors", domain.DefaultLintErrorThreshold, "Keep files with more than this many lint errors")
	f.IntVar(&o.lintWarnings, "lint-warnings", domain.DefaultLintWarningThreshold, "Keep files with more than this many lint warnings")
	f.IntVar(&o.maxDeps, "max-deps", domain.DefaultDependencyCountThreshold, "Keep modules with more than this many dependencies")
	f.IntVar(&o.maxLines, "max-lines", domain.DefaultLargeFileLineThreshold, "Keep files with more than this many lines")

	f.BoolVar(&o.jsonOutput, "json", false, "Also print the summary JSON to stdout")
	f.BoolVar(&o.showSummary, "summary", false, "Render the summary in the terminal")
	f.BoolVar(&o.record, "record", false, "Append this run to .reportkraft/history")

	f.StringVar(&o.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	f.StringVar(&o.logFormat, "log-format", "", "Log format (text, json)")
}

// overrides returns a Config holding only the values set on the command line.
func (o *aggregateOptions) overrides(cmd *cobra.Command) domain.Config {
	cfg := domain.Config{
		LintReportPath:      o.lintReport,
		DependencyGraphPath: o.dependencyGraph,
		LargeFilesPath:      o.largeFiles,
		OutputPath:          o.output,
		Logging:             domain.LoggingConfig{Level: o.logLevel, Format: o.logFormat},
	}

	f := cmd.Flags()
	if f.Changed("lint-errors") {
		cfg.LintErrorThreshold = &o.lintErrors
	}
	if f.Changed("lint-warnings") {
		cfg.LintWarningThreshold = &o.lintWarnings
	}
	if f.Changed("max-deps") {
		cfg.DependencyCountThreshold = &o.maxDeps
	}
	if f.Changed("max-lines") {
		cfg.LargeFileLineThreshold = &o.maxLines
	}
	return cfg
}

func (o *aggregateOptions) loadConfig(cmd *cobra.Command) (domain.Config, error) {
	var loader domain.ConfigLoader = config.New()
	if o.configPath != "" {
		loader = config.NewWithPath(domain.ResolvePath(o.dir, o.configPath))
	}

	cfg, err := loader.Load(o.dir)
	if err != nil {
		return domain.Config{}, err
	}

	cfg = cfg.Merge(o.overrides(cmd))
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func runAggregate(cmd *cobra.Command, opts *aggregateOptions) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logging.Init(cfg.Logging, cmd.ErrOrStderr())
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("effective config:\n%s", spew.Sdump(cfg))
	}

	r := reports.New()
	store := summary.New()
	svc := application.NewAggregateService(r, r, r, store)

	result, err := svc.Aggregate(opts.dir, cfg)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	if opts.record {
		recordRun(opts.dir, result, history.New(), gitinfo.New())
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		data, err := summary.Marshal(result.Summary)
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
	}
	if opts.showSummary {
		fmt.Fprint(out, tui.RenderResult(result))
	}

	fmt.Fprintf(out, "Analysis written to %s\n", result.OutputPath)
	return nil
}

// recordRun appends the run to history. Best-effort: failures are logged.
func recordRun(dir string, result *domain.AggregateResult, hist domain.RunHistory, gi domain.GitInfo) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		logrus.WithError(err).Warn("could not record run")
		return
	}

	entry := domain.RunEntry{
		Timestamp:          time.Now().Format(time.RFC3339),
		Output:             result.OutputPath,
		TechnicalDebt:      len(result.Summary.TechnicalDebt),
		RefactoringTargets: len(result.Summary.RefactoringTargets),
		LargeFiles:         len(result.Summary.LargeFiles),
		FailedReports:      result.FailedReports(),
	}

	if gi.IsGitRepo(absDir) {
		if hash, err := gi.CommitHash(absDir); err == nil {
			entry.CommitHash = hash
		}
	}

	if err := hist.Save(absDir, entry); err != nil {
		logrus.WithError(err).Warn("could not record run")
	}
}
