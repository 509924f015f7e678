package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/reportkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".reportkraft.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .reportkraft.yaml.
type YAMLLoader struct {
	path string
}

// New creates a YAMLLoader that reads FileName from the given directory.
func New() *YAMLLoader { return &YAMLLoader{} }

// NewWithPath creates a YAMLLoader that reads an explicit config file.
func NewWithPath(path string) *YAMLLoader { return &YAMLLoader{path: path} }

// Load reads the config for dir. A missing file yields DefaultConfig;
// explicit values are overlaid on the defaults.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	path := l.path
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var override domain.Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	cfg := domain.DefaultConfig().Merge(override)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}
