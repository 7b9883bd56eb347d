package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 8080,
		"database_url": "postgres://localhost/resumes",
		"reference_year": 2025,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, 2025, cfg.ReferenceYear)
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

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_NegativeUploadCap(t *testing.T) {
	cfg := &Config{MaxUploadBytes: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_upload_bytes")
}

func TestValidate_ImplausibleReferenceYear(t *testing.T) {
	cfg := &Config{ReferenceYear: 42}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reference_year")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:          8080,
		ReferenceYear: 2026,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/resumes",
		APIKey:      "default-key",
	}

	partial := Config{
		Port:   9090,
		APIKey: "custom-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "custom-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://localhost/resumes", merged.DatabaseURL)
	assert.Equal(t, int64(DefaultMaxUploadBytes), merged.MaxUploadBytes)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/resumes",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "postgres://localhost/resumes", merged.DatabaseURL)
	assert.Equal(t, int64(DefaultMaxUploadBytes), merged.MaxUploadBytes)
}
