package summary

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/openkraft/reportkraft/internal/domain"
)

// FileStore implements domain.SummaryWriter using an indented JSON file.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

// Marshal encodes a summary as 2-space indented JSON without HTML escaping
// and without a trailing newline.
func Marshal(summary *domain.AnalysisSummary) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (s *FileStore) Write(path string, summary *domain.AnalysisSummary) error {
	data, err := Marshal(summary)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

// Read loads a previously written summary. Returns (nil, nil) if none exists.
func (s *FileStore) Read(path string) (*domain.AnalysisSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	summary := domain.NewAnalysisSummary()
	if err := json.Unmarshal(data, summary); err != nil {
		return nil, err
	}
	return summary, nil
}
