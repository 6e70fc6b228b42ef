package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"catalog": "resources.yaml",
		"source": "dataset",
		"workers": 8,
		"max_results": 10,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resources.yaml", cfg.Catalog)
	assert.Equal(t, "dataset", cfg.Source)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 10, cfg.MaxResults)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownSource(t *testing.T) {
	cfg := &Config{
		Source: "spreadsheet",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		Workers: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_MissingCatalog(t *testing.T) {
	cfg := &Config{
		Catalog: filepath.Join(t.TempDir(), "nope.yaml"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Source:     "manual",
		Workers:    4,
		MaxResults: 5,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Catalog:    "default-catalog.yaml",
		Output:     "out.json",
		Workers:    4,
		MaxResults: 10,
	}

	partial := Config{
		Catalog: "custom-catalog.json",
		Source:  "dataset",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-catalog.json", merged.Catalog)
	assert.Equal(t, "dataset", merged.Source)

	// Default values should fill in empty fields
	assert.Equal(t, "out.json", merged.Output)
	assert.Equal(t, 4, merged.Workers)
	assert.Equal(t, 10, merged.MaxResults)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Catalog: "catalog.yaml",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "catalog.yaml", merged.Catalog)
	// source always resolves to a valid provenance value
	assert.Equal(t, "manual", merged.Source)
}
