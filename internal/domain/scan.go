package domain

// DefaultSourceExtensions are the file types counted by the sizes command.
var DefaultSourceExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".vue"}

// ScanOptions controls which files a SourceScanner counts.
type ScanOptions struct {
	Extensions   []string
	ExcludePaths []string
}
