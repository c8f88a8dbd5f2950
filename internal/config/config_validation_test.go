package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, defaultBaseURL, cfg.Server.BaseURL)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.NotEmpty(t, cfg.Storage.StateDir)
	assert.Equal(t, filepath.Join(cfg.Storage.StateDir, "cache.db"), cfg.Storage.CacheDSN)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{LogLevel: "debug"},
		Server:  Server{BaseURL: "http://custom:9999", RequestTimeout: defaultRequestTimeout},
		Storage: Storage{StateDir: "/opt/tb", CacheDSN: "/opt/tb/other.db"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://custom:9999", cfg.Server.BaseURL)
	assert.Equal(t, "/opt/tb/other.db", cfg.Storage.CacheDSN)
}

func TestValidate_Valid(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	require.NoError(t, cfg.validate())
}

func TestValidate_MissingServer(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{StateDir: "/opt/tb", CacheDSN: "/opt/tb/cache.db"},
	}

	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestValidate_MissingStorage(t *testing.T) {
	cfg := &StructuredConfig{
		Server: Server{BaseURL: defaultBaseURL, RequestTimeout: defaultRequestTimeout},
	}

	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
