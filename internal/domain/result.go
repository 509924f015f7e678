package domain

// StepResult is the outcome of one load step. Err is nil on success.
type StepResult struct {
	Report  string     `json:"report"`
	Path    string     `json:"path"`
	Records int        `json:"records"`
	Kept    int        `json:"kept"`
	Err     *LoadError `json:"error,omitempty"`
}

// OK reports whether the step loaded its report.
func (s StepResult) OK() bool { return s.Err == nil }

// AggregateResult is what one aggregation run produced.
type AggregateResult struct {
	Summary    *AnalysisSummary `json:"summary"`
	OutputPath string           `json:"output_path"`
	Steps      []StepResult     `json:"steps"`
}

// FailedReports lists the reports whose load step failed, in step order.
func (r *AggregateResult) FailedReports() []string {
	var failed []string
	for _, s := range r.Steps {
		if !s.OK() {
			failed = append(failed, s.Report)
		}
	}
	return failed
}
