package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rsr-standard/rsrcheck/internal/domain"
)

const fileName = ".rsrcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .rsrcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .rsrcheck.yaml from repoPath. Returns DefaultConfig if
// the file does not exist.
func (l *YAMLLoader) Load(repoPath string) (domain.RepoConfig, error) {
	data, err := os.ReadFile(filepath.Join(repoPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.RepoConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RepoConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if cfg.JSONOutput == "" {
		cfg.JSONOutput = domain.DefaultJSONOutput
	}
	return cfg, nil
}
