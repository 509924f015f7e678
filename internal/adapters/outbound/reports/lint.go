package reports

import (
	"encoding/json"

	"github.com/openkraft/reportkraft/internal/domain"
)

// ReadLintReport decodes an ESLint JSON report (an array of per-file results).
func (r *FileReader) ReadLintReport(path string) ([]domain.LintRecord, error) {
	data, err := readReport(domain.ReportLint, path)
	if err != nil {
		return nil, err
	}

	var records []domain.LintRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, parseError(domain.ReportLint, path, err)
	}
	return records, nil
}
