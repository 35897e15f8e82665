package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/config"
	"github.com/rsr-standard/rsrcheck/internal/domain"
)

func TestLoad_NoConfigFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.Equal(t, "rsr_compliance.json", cfg.JSONOutput)
}

func TestLoad_ReadsFields(t *testing.T) {
	dir := t.TempDir()
	content := "exclude_paths:\n  - node_modules\n  - vendor\njson_output: reports/compliance.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rsrcheck.yaml"), []byte(content), 0644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"node_modules", "vendor"}, cfg.ExcludePaths)
	assert.Equal(t, "reports/compliance.json", cfg.JSONOutput)
}

func TestLoad_PartialConfigKeepsDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rsrcheck.yaml"), []byte("exclude_paths: [dist]\n"), 0644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dist"}, cfg.ExcludePaths)
	assert.Equal(t, domain.DefaultJSONOutput, cfg.JSONOutput)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rsrcheck.yaml"), []byte("exclude_paths: ["), 0644))

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".rsrcheck.yaml")
}
