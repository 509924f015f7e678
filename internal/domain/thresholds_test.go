package domain_test

import (
	"testing"

	"github.com/openkraft/reportkraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func defaultThresholds() domain.Thresholds {
	return domain.DefaultConfig().Thresholds()
}

func TestFilterLint_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		errors   int
		warnings int
		kept     bool
	}{
		{"six errors", 6, 0, true},
		{"eleven warnings", 0, 11, true},
		{"both at threshold", 5, 10, false},
		{"clean", 0, 0, false},
		{"both over", 20, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultThresholds().FilterLint([]domain.LintRecord{
				{FilePath: "src/app.ts", ErrorCount: tt.errors, WarningCount: tt.warnings},
			})
			if tt.kept {
				assert.Equal(t, []domain.LintFinding{{FilePath: "src/app.ts", ErrorCount: tt.errors, WarningCount: tt.warnings}}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFilterLint_PreservesOrderAndNeverNil(t *testing.T) {
	th := defaultThresholds()
	assert.NotNil(t, th.FilterLint(nil))

	got := th.FilterLint([]domain.LintRecord{
		{FilePath: "b.ts", ErrorCount: 9},
		{FilePath: "a.ts", ErrorCount: 1},
		{FilePath: "c.ts", WarningCount: 12},
	})
	assert.Equal(t, []string{"b.ts", "c.ts"}, []string{got[0].FilePath, got[1].FilePath})
}

func TestFilterDependencies_Boundaries(t *testing.T) {
	deps := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "dep"
		}
		return out
	}

	got := defaultThresholds().FilterDependencies([]domain.ModuleDependencies{
		{Module: "eleven", Dependencies: deps(11)},
		{Module: "ten", Dependencies: deps(10)},
		{Module: "none"},
	})
	assert.Equal(t, []domain.DependencyEntry{{Module: "eleven", DependencyCount: 11}}, got)
}

func TestFilterLargeFiles_Boundaries(t *testing.T) {
	got := defaultThresholds().FilterLargeFiles([]domain.FileLineCount{
		{Path: "src/app.ts", Lines: 301},
		{Path: "src/util.ts", Lines: 300},
	})
	assert.Equal(t, []domain.LargeFileEntry{{File: "src/app.ts", LineCount: 301}}, got)
	assert.NotNil(t, defaultThresholds().FilterLargeFiles(nil))
}

func TestThresholds_Custom(t *testing.T) {
	th := domain.Thresholds{LintErrors: 0, LintWarnings: 0, DependencyCount: 0, LargeFileLines: 0}
	assert.Len(t, th.FilterLint([]domain.LintRecord{{ErrorCount: 1}, {}}), 1)
	assert.Len(t, th.FilterDependencies([]domain.ModuleDependencies{{Module: "m", Dependencies: []string{"x"}}}), 1)
	assert.Len(t, th.FilterLargeFiles([]domain.FileLineCount{{Lines: 1}, {Lines: 0}}), 1)
}
