// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-mod-manager client. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level behaviour switches.
	App App `envPrefix:"APP_"`

	// Paths holds the locations of the game Content tree and of the local
	// asset store data folder.
	Paths Paths `envPrefix:"PATHS_"`

	// Storage holds configuration for the local settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote asset store endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background worker pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level switches.
type App struct {
	// KeepDownloads disables deletion of the downloaded package after a
	// successful install.
	// Env: APP_KEEP_DOWNLOADS
	KeepDownloads bool `env:"KEEP_DOWNLOADS"`

	// LogDir is the directory the client log file is written to. Defaults to
	// the directory of the executable.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Paths holds file-system locations.
type Paths struct {
	// ContentRoot is the absolute path to the game's Content folder, the
	// destination tree for every installed item.
	// Env: PATHS_CONTENT_ROOT
	ContentRoot string `env:"CONTENT_ROOT"`

	// StoreDataDir is the folder holding temporary downloads, thumbnails
	// and the settings database.
	// Env: PATHS_STORE_DATA_DIR
	StoreDataDir string `env:"STORE_DATA_DIR"`
}

// Storage groups the configuration for the settings database.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite settings database.
type DB struct {
	// DSN is the SQLite file path. Defaults to settings.db inside
	// StoreDataDir.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the remote asset store transport.
type Adapter struct {
	// HTTPAddress is the base address of the asset store API
	// (e.g. "https://assets.example.com" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single transfer. Zero means no timeout; a hung
	// transfer then blocks its pipeline stage.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CredentialsPath is the path to the uploader credentials JSON file.
	// Env: ADAPTER_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH"`
}

// Workers holds configuration for the background worker pool.
type Workers struct {
	// PoolSize is the number of long-running operations that may execute
	// at the same time. Defaults to 2.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. flagCfg is the config populated by [BindFlags] after
// the command line has been parsed; it may be nil.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		build()
}
