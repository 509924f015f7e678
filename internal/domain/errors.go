package domain

import (
	"encoding/json"
	"fmt"
)

// LoadErrorKind classifies why a report could not be loaded.
type LoadErrorKind string

const (
	MissingFile LoadErrorKind = "missing_file"
	ParseError  LoadErrorKind = "parse_error"
	IOError     LoadErrorKind = "io_error"
)

// Report names, used in diagnostics and step results.
const (
	ReportLint       = "lint report"
	ReportDependency = "dependency graph"
	ReportLargeFiles = "large-file list"
)

// LoadError describes a failed load step. It never aborts a run.
type LoadError struct {
	Report string        `json:"report"`
	Path   string        `json:"path"`
	Kind   LoadErrorKind `json:"kind"`
	Err    error         `json:"-"`
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case MissingFile:
		return fmt.Sprintf("%s not found at %s", e.Report, e.Path)
	case ParseError:
		return fmt.Sprintf("could not parse %s %s: %v", e.Report, e.Path, e.Err)
	default:
		return fmt.Sprintf("could not read %s %s: %v", e.Report, e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// MarshalJSON adds the rendered message; Err is not serialized.
func (e *LoadError) MarshalJSON() ([]byte, error) {
	type alias LoadError
	return json.Marshal(struct {
		alias
		Message string `json:"message"`
	}{alias: alias(*e), Message: e.Error()})
}
