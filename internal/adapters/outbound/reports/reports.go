// Package reports reads the externally produced analysis reports that the
// aggregator consumes. Every reader returns a *domain.LoadError on failure.
package reports

import (
	"errors"
	"os"

	"github.com/openkraft/reportkraft/internal/domain"
)

// FileReader implements the three domain report reader ports on top of the
// local filesystem.
type FileReader struct{}

// New creates a FileReader.
func New() *FileReader {
	return &FileReader{}
}

// readReport reads path, classifying a failure as MissingFile or IOError.
func readReport(report, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := domain.IOError
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.MissingFile
		}
		return nil, &domain.LoadError{Report: report, Path: path, Kind: kind, Err: err}
	}
	return data, nil
}

func parseError(report, path string, err error) error {
	return &domain.LoadError{Report: report, Path: path, Kind: domain.ParseError, Err: err}
}
