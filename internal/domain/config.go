package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default report locations, relative to the working directory.
const (
	DefaultLintReportPath      = "eslint-report.json"
	DefaultDependencyGraphPath = "dependency-graph.json"
	DefaultLargeFilesPath      = "large-files.txt"
	DefaultOutputPath          = "comprehensive-analysis.json"
)

// Default thresholds. A record is surfaced only when it strictly exceeds them.
const (
	DefaultLintErrorThreshold       = 5
	DefaultLintWarningThreshold     = 10
	DefaultDependencyCountThreshold = 10
	DefaultLargeFileLineThreshold   = 300
)

// ValidLogLevels enumerates the accepted logging.level values.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error"}

// ValidLogFormats enumerates the accepted logging.format values.
var ValidLogFormats = []string{"text", "json"}

// Config holds aggregation settings loaded from .reportkraft.yaml.
type Config struct {
	LintReportPath           string        `yaml:"lint_report_path"           json:"lint_report_path"`
	DependencyGraphPath      string        `yaml:"dependency_graph_path"      json:"dependency_graph_path"`
	LargeFilesPath           string        `yaml:"large_files_path"           json:"large_files_path"`
	OutputPath               string        `yaml:"output_path"                json:"output_path"`
	LintErrorThreshold       *int          `yaml:"lint_error_threshold"       json:"lint_error_threshold,omitempty"`
	LintWarningThreshold     *int          `yaml:"lint_warning_threshold"     json:"lint_warning_threshold,omitempty"`
	DependencyCountThreshold *int          `yaml:"dependency_count_threshold" json:"dependency_count_threshold,omitempty"`
	LargeFileLineThreshold   *int          `yaml:"large_file_line_threshold"  json:"large_file_line_threshold,omitempty"`
	Logging                  LoggingConfig `yaml:"logging"                    json:"logging"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level,omitempty"`
	Format string `yaml:"format" json:"format,omitempty"`
}

func intPtr(v int) *int { return &v }

// DefaultConfig returns the built-in paths and thresholds.
func DefaultConfig() Config {
	return Config{
		LintReportPath:           DefaultLintReportPath,
		DependencyGraphPath:      DefaultDependencyGraphPath,
		LargeFilesPath:           DefaultLargeFilesPath,
		OutputPath:               DefaultOutputPath,
		LintErrorThreshold:       intPtr(DefaultLintErrorThreshold),
		LintWarningThreshold:     intPtr(DefaultLintWarningThreshold),
		DependencyCountThreshold: intPtr(DefaultDependencyCountThreshold),
		LargeFileLineThreshold:   intPtr(DefaultLargeFileLineThreshold),
		Logging:                  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Merge overlays the explicitly set (non-zero) fields of override on c.
func (c Config) Merge(override Config) Config {
	result := c
	if override.LintReportPath != "" {
		result.LintReportPath = override.LintReportPath
	}
	if override.DependencyGraphPath != "" {
		result.DependencyGraphPath = override.DependencyGraphPath
	}
	if override.LargeFilesPath != "" {
		result.LargeFilesPath = override.LargeFilesPath
	}
	if override.OutputPath != "" {
		result.OutputPath = override.OutputPath
	}
	if override.LintErrorThreshold != nil {
		result.LintErrorThreshold = override.LintErrorThreshold
	}
	if override.LintWarningThreshold != nil {
		result.LintWarningThreshold = override.LintWarningThreshold
	}
	if override.DependencyCountThreshold != nil {
		result.DependencyCountThreshold = override.DependencyCountThreshold
	}
	if override.LargeFileLineThreshold != nil {
		result.LargeFileLineThreshold = override.LargeFileLineThreshold
	}
	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		result.Logging.Format = override.Logging.Format
	}
	return result
}

// Thresholds returns the effective thresholds, falling back to the defaults
// for any unset value.
func (c Config) Thresholds() Thresholds {
	return Thresholds{
		LintErrors:      valueOr(c.LintErrorThreshold, DefaultLintErrorThreshold),
		LintWarnings:    valueOr(c.LintWarningThreshold, DefaultLintWarningThreshold),
		DependencyCount: valueOr(c.DependencyCountThreshold, DefaultDependencyCountThreshold),
		LargeFileLines:  valueOr(c.LargeFileLineThreshold, DefaultLargeFileLineThreshold),
	}
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	paths := []struct {
		name, value string
	}{
		{"lint_report_path", c.LintReportPath},
		{"dependency_graph_path", c.DependencyGraphPath},
		{"large_files_path", c.LargeFilesPath},
		{"output_path", c.OutputPath},
	}
	for _, p := range paths {
		if strings.TrimSpace(p.value) == "" {
			return fmt.Errorf("%s must not be empty", p.name)
		}
	}

	thresholds := []struct {
		name  string
		value *int
	}{
		{"lint_error_threshold", c.LintErrorThreshold},
		{"lint_warning_threshold", c.LintWarningThreshold},
		{"dependency_count_threshold", c.DependencyCountThreshold},
		{"large_file_line_threshold", c.LargeFileLineThreshold},
	}
	for _, th := range thresholds {
		if th.value != nil && *th.value < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", th.name, *th.value)
		}
	}

	if c.Logging.Level != "" && !contains(ValidLogLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("unknown logging.level %q (valid: %s)", c.Logging.Level, strings.Join(ValidLogLevels, ", "))
	}
	if c.Logging.Format != "" && !contains(ValidLogFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("unknown logging.format %q (valid: text, json)", c.Logging.Format)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ResolvePath resolves a report path against dir. Absolute paths are kept.
func ResolvePath(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" || dir == "." {
		return path
	}
	return filepath.Join(dir, path)
}
