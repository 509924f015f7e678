package domain

// LintFinding is a per-file lint record that crossed a lint threshold.
type LintFinding struct {
	FilePath     string `json:"filePath"`
	ErrorCount   int    `json:"errorCount"`
	WarningCount int    `json:"warningCount"`
}

// DependencyEntry is a module whose direct dependency count crossed the
// dependency threshold.
type DependencyEntry struct {
	Module          string `json:"module"`
	DependencyCount int    `json:"dependencyCount"`
}

// LargeFileEntry is a file whose line count crossed the large-file threshold.
type LargeFileEntry struct {
	File      string `json:"file"`
	LineCount int    `json:"lineCount"`
}

// ComplexityIssue is reserved for a complexity report source. No reader
// produces it yet, so AnalysisSummary.ComplexityIssues is always empty.
type ComplexityIssue struct {
	File     string `json:"file"`
	Function string `json:"function,omitempty"`
	Score    int    `json:"score"`
}

// AnalysisSummary is the consolidated output of one aggregation run.
// Field order is the serialized key order.
type AnalysisSummary struct {
	TechnicalDebt      []LintFinding     `json:"technicalDebt"`
	RefactoringTargets []DependencyEntry `json:"refactoringTargets"`
	ComplexityIssues   []ComplexityIssue `json:"complexityIssues"`
	LargeFiles         []LargeFileEntry  `json:"largeFiles"`
}

// NewAnalysisSummary returns a summary whose sequences are empty, not nil,
// so they serialize as [] rather than null.
func NewAnalysisSummary() *AnalysisSummary {
	return &AnalysisSummary{
		TechnicalDebt:      []LintFinding{},
		RefactoringTargets: []DependencyEntry{},
		ComplexityIssues:   []ComplexityIssue{},
		LargeFiles:         []LargeFileEntry{},
	}
}

// IsEmpty reports whether no report contributed any record.
func (s *AnalysisSummary) IsEmpty() bool {
	return len(s.TechnicalDebt) == 0 &&
		len(s.RefactoringTargets) == 0 &&
		len(s.ComplexityIssues) == 0 &&
		len(s.LargeFiles) == 0
}

// LintRecord is one entry of an ESLint JSON report. Fields the aggregator
// does not use are ignored on decode.
type LintRecord struct {
	FilePath     string `json:"filePath"`
	ErrorCount   int    `json:"errorCount"`
	WarningCount int    `json:"warningCount"`
}

// ModuleDependencies is one entry of a dependency graph, in document order.
type ModuleDependencies struct {
	Module       string
	Dependencies []string
}

// FileLineCount is one parsed "<count> <path>" line of a large-file list.
type FileLineCount struct {
	Path  string
	Lines int
}
