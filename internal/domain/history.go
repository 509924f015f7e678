package domain

// RunEntry records the outcome of one aggregation run.
type RunEntry struct {
	Timestamp          string   `json:"timestamp"`
	CommitHash         string   `json:"commit_hash,omitempty"`
	Output             string   `json:"output"`
	TechnicalDebt      int      `json:"technical_debt"`
	RefactoringTargets int      `json:"refactoring_targets"`
	LargeFiles         int      `json:"large_files"`
	FailedReports      []string `json:"failed_reports,omitempty"`
}

// Total returns the number of surfaced records in the run.
func (e RunEntry) Total() int {
	return e.TechnicalDebt + e.RefactoringTargets + e.LargeFiles
}
