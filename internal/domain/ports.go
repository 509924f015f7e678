package domain

// LintReportReader loads the per-file records of a lint report.
type LintReportReader interface {
	ReadLintReport(path string) ([]LintRecord, error)
}

// DependencyGraphReader loads a module dependency graph in document order.
type DependencyGraphReader interface {
	ReadDependencyGraph(path string) ([]ModuleDependencies, error)
}

// LargeFileListReader loads the parsed lines of a large-file list.
type LargeFileListReader interface {
	ReadLargeFileList(path string) ([]FileLineCount, error)
}

// SummaryWriter persists an AnalysisSummary, overwriting any previous one.
type SummaryWriter interface {
	Write(path string, summary *AnalysisSummary) error
}

// ConfigLoader loads the aggregation config for a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// RunHistory stores metadata about past aggregation runs.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// GitInfo reports version control details for a directory.
type GitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}

// SourceScanner counts the lines of the source files under a directory.
type SourceScanner interface {
	Scan(root string, opts ScanOptions) ([]FileLineCount, error)
}
