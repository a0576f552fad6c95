package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "depwatch-report.csv", cfg.Output.File)
	assert.Equal(t, "name", cfg.Report.NameHeader)
	assert.Equal(t, "version", cfg.Report.VersionHeader)
	assert.Equal(t, "warning", cfg.Report.WarningHeader)
	assert.Equal(t, "×", cfg.Report.StaleMarker)
	assert.Empty(t, cfg.IgnorePackages)
}

func TestLoadConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, ".depwatch.yaml")
	err = os.WriteFile(configPath, []byte(`
output:
  format: json
report:
  staleMarker: "STALE"
ignorePackages:
  - lodash
`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	// Overridden fields take, untouched fields keep their defaults.
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "depwatch-report.csv", cfg.Output.File)
	assert.Equal(t, "STALE", cfg.Report.StaleMarker)
	assert.Equal(t, "name", cfg.Report.NameHeader)
	assert.True(t, cfg.IsPackageIgnored("lodash"))
	assert.False(t, cfg.IsPackageIgnored("express"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, ".depwatch.yaml")
	err = os.WriteFile(configPath, []byte("output: [not: a: mapping"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestFindAndLoadConfigWalksParents(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// Config sits two levels above the project directory.
	err = os.WriteFile(filepath.Join(tmpDir, ".depwatch.yaml"), []byte("output:\n  format: text\n"), 0644)
	require.NoError(t, err)

	projectDir := filepath.Join(tmpDir, "workspace", "app")
	require.NoError(t, os.MkdirAll(projectDir, 0755))

	cfg, err := FindAndLoadConfig(projectDir)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
}
