package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/reportkraft/internal/adapters/outbound/reports"
	"github.com/openkraft/reportkraft/internal/adapters/outbound/summary"
	"github.com/openkraft/reportkraft/internal/application"
	"github.com/openkraft/reportkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../testdata/reports"

// --- fakes ---

type fakeReader struct {
	lint    []domain.LintRecord
	lintErr error
	deps    []domain.ModuleDependencies
	depsErr error
	large   []domain.FileLineCount
	bigErr  error
	paths   []string
}

func (f *fakeReader) ReadLintReport(path string) ([]domain.LintRecord, error) {
	f.paths = append(f.paths, path)
	return f.lint, f.lintErr
}

func (f *fakeReader) ReadDependencyGraph(path string) ([]domain.ModuleDependencies, error) {
	f.paths = append(f.paths, path)
	return f.deps, f.depsErr
}

func (f *fakeReader) ReadLargeFileList(path string) ([]domain.FileLineCount, error) {
	f.paths = append(f.paths, path)
	return f.large, f.bigErr
}

type fakeWriter struct {
	path    string
	summary *domain.AnalysisSummary
	err     error
}

func (w *fakeWriter) Write(path string, s *domain.AnalysisSummary) error {
	w.path, w.summary = path, s
	return w.err
}

func newService(r *fakeReader, w *fakeWriter) *application.AggregateService {
	return application.NewAggregateService(r, r, r, w)
}

// --- tests ---

func TestAggregate_AppliesThresholds(t *testing.T) {
	r := &fakeReader{
		lint: []domain.LintRecord{
			{FilePath: "a.ts", ErrorCount: 6},
			{FilePath: "b.ts", ErrorCount: 5, WarningCount: 10},
		},
		deps: []domain.ModuleDependencies{
			{Module: "m", Dependencies: make([]string, 11)},
			{Module: "n", Dependencies: make([]string, 10)},
		},
		large: []domain.FileLineCount{{Path: "big.ts", Lines: 301}, {Path: "ok.ts", Lines: 300}},
	}
	w := &fakeWriter{}

	result, err := newService(r, w).Aggregate(".", domain.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []domain.LintFinding{{FilePath: "a.ts", ErrorCount: 6}}, result.Summary.TechnicalDebt)
	assert.Equal(t, []domain.DependencyEntry{{Module: "m", DependencyCount: 11}}, result.Summary.RefactoringTargets)
	assert.Equal(t, []domain.LargeFileEntry{{File: "big.ts", LineCount: 301}}, result.Summary.LargeFiles)
	assert.Empty(t, result.Summary.ComplexityIssues)
	assert.NotNil(t, result.Summary.ComplexityIssues)

	assert.Same(t, result.Summary, w.summary)
	assert.Equal(t, "comprehensive-analysis.json", w.path)
	assert.Empty(t, result.FailedReports())
	assert.Equal(t, 2, result.Steps[0].Records)
	assert.Equal(t, 1, result.Steps[0].Kept)
}

func TestAggregate_ReadsStepsInOrder(t *testing.T) {
	r := &fakeReader{}
	_, err := newService(r, &fakeWriter{}).Aggregate("reports", domain.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("reports", "eslint-report.json"),
		filepath.Join("reports", "dependency-graph.json"),
		filepath.Join("reports", "large-files.txt"),
	}, r.paths)
}

func TestAggregate_FailedStepDoesNotStopOthers(t *testing.T) {
	r := &fakeReader{
		lintErr: &domain.LoadError{Report: domain.ReportLint, Path: "eslint-report.json", Kind: domain.ParseError, Err: errors.New("bad json")},
		deps:    []domain.ModuleDependencies{{Module: "m", Dependencies: make([]string, 12)}},
		large:   []domain.FileLineCount{{Path: "big.ts", Lines: 900}},
	}
	w := &fakeWriter{}

	result, err := newService(r, w).Aggregate(".", domain.DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, result.Summary.TechnicalDebt)
	assert.NotNil(t, result.Summary.TechnicalDebt)
	assert.Len(t, result.Summary.RefactoringTargets, 1)
	assert.Len(t, result.Summary.LargeFiles, 1)
	assert.Equal(t, []string{domain.ReportLint}, result.FailedReports())
	assert.Equal(t, domain.ParseError, result.Steps[0].Err.Kind)
	assert.NotNil(t, w.summary, "write still happens")
}

func TestAggregate_AllStepsFailStillWrites(t *testing.T) {
	fail := errors.New("boom")
	r := &fakeReader{lintErr: fail, depsErr: fail, bigErr: fail}
	w := &fakeWriter{}

	result, err := newService(r, w).Aggregate(".", domain.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, result.Summary.IsEmpty())
	assert.Len(t, result.FailedReports(), 3)
	assert.Equal(t, domain.IOError, result.Steps[1].Err.Kind, "plain errors are classified as IOError")
	assert.NotNil(t, w.summary)
}

func TestAggregate_WriteFailureIsFatal(t *testing.T) {
	w := &fakeWriter{err: errors.New("disk full")}
	_, err := newService(&fakeReader{}, w).Aggregate(".", domain.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing comprehensive-analysis.json")
	assert.Contains(t, err.Error(), "disk full")
}

func TestBuild_DoesNotWrite(t *testing.T) {
	w := &fakeWriter{}
	result := newService(&fakeReader{}, w).Build(".", domain.DefaultConfig())
	require.NotNil(t, result)
	assert.Nil(t, w.summary)
}

func TestAggregate_CustomThresholds(t *testing.T) {
	zero := 0
	cfg := domain.DefaultConfig()
	cfg.LargeFileLineThreshold = &zero

	r := &fakeReader{large: []domain.FileLineCount{{Path: "tiny.ts", Lines: 1}}}
	result, err := newService(r, &fakeWriter{}).Aggregate(".", cfg)
	require.NoError(t, err)
	assert.Len(t, result.Summary.LargeFiles, 1)
}

// --- end to end over the filesystem adapters ---

func copyFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"eslint-report.json", "dependency-graph.json", "large-files.txt"} {
		data, err := os.ReadFile(filepath.Join(fixtureDir, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
	return dir
}

func newFileService() *application.AggregateService {
	r := reports.New()
	return application.NewAggregateService(r, r, r, summary.New())
}

func TestAggregate_FixtureMatchesGolden(t *testing.T) {
	dir := copyFixtures(t)

	result, err := newFileService().Aggregate(dir, domain.DefaultConfig())
	require.NoError(t, err)

	got, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join(fixtureDir, "comprehensive-analysis.golden.json"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestAggregate_NoInputsWritesEmptySummary(t *testing.T) {
	dir := t.TempDir()

	result, err := newFileService().Aggregate(dir, domain.DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, result.FailedReports(), 3)
	for _, st := range result.Steps {
		assert.Equal(t, domain.MissingFile, st.Err.Kind)
	}

	got, err := os.ReadFile(filepath.Join(dir, "comprehensive-analysis.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"technicalDebt":[],"refactoringTargets":[],"complexityIssues":[],"largeFiles":[]}`, string(got))
}

func TestAggregate_IsIdempotent(t *testing.T) {
	dir := copyFixtures(t)
	svc := newFileService()
	out := filepath.Join(dir, "comprehensive-analysis.json")

	_, err := svc.Aggregate(dir, domain.DefaultConfig())
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = svc.Aggregate(dir, domain.DefaultConfig())
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_MalformedLintReportDoesNotBlockOthers(t *testing.T) {
	dir := copyFixtures(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eslint-report.json"), []byte("{not json"), 0644))

	result, err := newFileService().Aggregate(dir, domain.DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, result.Summary.TechnicalDebt)
	assert.Len(t, result.Summary.RefactoringTargets, 2)
	assert.Len(t, result.Summary.LargeFiles, 2)
	assert.Equal(t, domain.ParseError, result.Steps[0].Err.Kind)
}
