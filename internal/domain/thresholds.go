package domain

// Thresholds holds the strict lower bounds a record must exceed to be
// surfaced in the summary.
type Thresholds struct {
	LintErrors      int
	LintWarnings    int
	DependencyCount int
	LargeFileLines  int
}

// FilterLint keeps records with more than LintErrors errors or more than
// LintWarnings warnings. Input order is preserved.
func (t Thresholds) FilterLint(records []LintRecord) []LintFinding {
	findings := []LintFinding{}
	for _, r := range records {
		if r.ErrorCount > t.LintErrors || r.WarningCount > t.LintWarnings {
			findings = append(findings, LintFinding{
				FilePath:     r.FilePath,
				ErrorCount:   r.ErrorCount,
				WarningCount: r.WarningCount,
			})
		}
	}
	return findings
}

// FilterDependencies keeps modules with more than DependencyCount
// dependencies. Only the count is retained.
func (t Thresholds) FilterDependencies(graph []ModuleDependencies) []DependencyEntry {
	entries := []DependencyEntry{}
	for _, m := range graph {
		if n := len(m.Dependencies); n > t.DependencyCount {
			entries = append(entries, DependencyEntry{Module: m.Module, DependencyCount: n})
		}
	}
	return entries
}

// FilterLargeFiles keeps files with more than LargeFileLines lines.
func (t Thresholds) FilterLargeFiles(counts []FileLineCount) []LargeFileEntry {
	entries := []LargeFileEntry{}
	for _, c := range counts {
		if c.Lines > t.LargeFileLines {
			entries = append(entries, LargeFileEntry{File: c.Path, LineCount: c.Lines})
		}
	}
	return entries
}
