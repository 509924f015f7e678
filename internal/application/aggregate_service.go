package application

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/openkraft/reportkraft/internal/domain"
)

// AggregateService consolidates the lint report, dependency graph and
// large-file list into one AnalysisSummary:
// load lint -> load dependencies -> load large files -> write.
type AggregateService struct {
	lint   domain.LintReportReader
	deps   domain.DependencyGraphReader
	large  domain.LargeFileListReader
	writer domain.SummaryWriter
}

func NewAggregateService(
	lint domain.LintReportReader,
	deps domain.DependencyGraphReader,
	large domain.LargeFileListReader,
	writer domain.SummaryWriter,
) *AggregateService {
	return &AggregateService{
		lint:   lint,
		deps:   deps,
		large:  large,
		writer: writer,
	}
}

// Build runs the three load steps without writing anything. A failing step
// leaves its summary field empty and never stops the others.
func (s *AggregateService) Build(dir string, cfg domain.Config) *domain.AggregateResult {
	th := cfg.Thresholds()
	summary := domain.NewAnalysisSummary()
	result := &domain.AggregateResult{
		Summary:    summary,
		OutputPath: domain.ResolvePath(dir, cfg.OutputPath),
	}

	// 1. Lint report
	lintPath := domain.ResolvePath(dir, cfg.LintReportPath)
	step := domain.StepResult{Report: domain.ReportLint, Path: lintPath}
	if records, err := s.lint.ReadLintReport(lintPath); err != nil {
		step.Err = loadError(domain.ReportLint, lintPath, err)
	} else {
		summary.TechnicalDebt = th.FilterLint(records)
		step.Records, step.Kept = len(records), len(summary.TechnicalDebt)
	}
	result.Steps = append(result.Steps, step)

	// 2. Dependency graph
	depsPath := domain.ResolvePath(dir, cfg.DependencyGraphPath)
	step = domain.StepResult{Report: domain.ReportDependency, Path: depsPath}
	if graph, err := s.deps.ReadDependencyGraph(depsPath); err != nil {
		step.Err = loadError(domain.ReportDependency, depsPath, err)
	} else {
		summary.RefactoringTargets = th.FilterDependencies(graph)
		step.Records, step.Kept = len(graph), len(summary.RefactoringTargets)
	}
	result.Steps = append(result.Steps, step)

	// 3. Large-file list
	largePath := domain.ResolvePath(dir, cfg.LargeFilesPath)
	step = domain.StepResult{Report: domain.ReportLargeFiles, Path: largePath}
	if counts, err := s.large.ReadLargeFileList(largePath); err != nil {
		step.Err = loadError(domain.ReportLargeFiles, largePath, err)
	} else {
		summary.LargeFiles = th.FilterLargeFiles(counts)
		step.Records, step.Kept = len(counts), len(summary.LargeFiles)
	}
	result.Steps = append(result.Steps, step)

	for _, st := range result.Steps {
		if st.Err != nil {
			logrus.WithFields(logrus.Fields{
				"report": st.Report,
				"path":   st.Path,
				"kind":   st.Err.Kind,
			}).Warn(st.Err.Error())
			continue
		}
		logrus.WithFields(logrus.Fields{
			"report":  st.Report,
			"records": st.Records,
			"kept":    st.Kept,
		}).Debug("report loaded")
	}

	return result
}

// Aggregate builds the summary and writes it to the configured output path.
// Only the write can fail the run.
func (s *AggregateService) Aggregate(dir string, cfg domain.Config) (*domain.AggregateResult, error) {
	result := s.Build(dir, cfg)

	if err := s.writer.Write(result.OutputPath, result.Summary); err != nil {
		return nil, fmt.Errorf("writing %s: %w", result.OutputPath, err)
	}

	return result, nil
}

// loadError normalizes reader errors into a *domain.LoadError.
func loadError(report, path string, err error) *domain.LoadError {
	var le *domain.LoadError
	if errors.As(err, &le) {
		return le
	}
	return &domain.LoadError{Report: report, Path: path, Kind: domain.IOError, Err: err}
}
