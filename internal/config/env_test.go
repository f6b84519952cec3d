// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_KEEP_DOWNLOADS": "true",
		"APP_LOG_DIR":        "/var/log/mods",

		"PATHS_CONTENT_ROOT":   "/game/Content",
		"PATHS_STORE_DATA_DIR": "/game/store_data",

		"STORAGE_DB_DSN": "/game/store_data/settings.db",

		"ADAPTER_ADDRESS":          "localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT":  "30s",
		"ADAPTER_CREDENTIALS_PATH": "/home/me/creds.json",

		"WORKERS_POOL_SIZE": "3",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.True(t, cfg.App.KeepDownloads)
	assert.Equal(t, "/var/log/mods", cfg.App.LogDir)
	assert.Equal(t, "/game/Content", cfg.Paths.ContentRoot)
	assert.Equal(t, "/game/store_data", cfg.Paths.StoreDataDir)
	assert.Equal(t, "/game/store_data/settings.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/home/me/creds.json", cfg.Adapter.CredentialsPath)
	assert.Equal(t, 3, cfg.Workers.PoolSize)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Paths.ContentRoot)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
