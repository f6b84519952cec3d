package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Folder names used below ContentRoot and StoreDataDir.
const (
	MetaFolderName      = "MapSwitcherMetaData"
	StoreFolderName     = "store_data"
	DownloadsFolderName = "temp_downloads"
	ThumbnailFolderName = "thumbnails"
	SettingsDBFileName  = "settings.db"
)

const defaultPoolSize = 2

// ClientApp holds client-side application settings.
type ClientApp struct {
	// DeleteAfterInstall removes the downloaded package once it has been
	// installed successfully.
	DeleteAfterInstall bool
	// LogDir is the directory for the client log file.
	LogDir string
}

// ClientPaths holds every folder the client reads or writes.
type ClientPaths struct {
	// ContentRoot is the destination tree for installed items.
	ContentRoot string
	// MetadataDir holds one json record per installed item.
	MetadataDir string
	// StoreDataDir holds the client-side asset store data.
	StoreDataDir string
	// TempDownloadsDir receives downloaded packages and temporary manifests.
	TempDownloadsDir string
	// ThumbnailsDir caches preview images.
	ThumbnailsDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the asset store endpoint address.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests, zero for none.
	RequestTimeout time.Duration
	// CredentialsPath is the default uploader credentials file.
	CredentialsPath string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PoolSize is the worker pool concurrency limit.
	PoolSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Paths   ClientPaths
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	storeData := cfg.Paths.StoreDataDir
	if storeData == "" && cfg.Paths.ContentRoot != "" {
		storeData = filepath.Join(filepath.Dir(filepath.Clean(cfg.Paths.ContentRoot)), StoreFolderName)
	}

	dsn := cfg.Storage.DB.DSN
	if dsn == "" && storeData != "" {
		dsn = filepath.Join(storeData, SettingsDBFileName)
	}

	poolSize := cfg.Workers.PoolSize
	if poolSize == 0 {
		poolSize = defaultPoolSize
	}

	paths := ClientPaths{
		ContentRoot:  cfg.Paths.ContentRoot,
		StoreDataDir: storeData,
	}
	if paths.ContentRoot != "" {
		paths.MetadataDir = filepath.Join(paths.ContentRoot, MetaFolderName)
	}
	if storeData != "" {
		paths.TempDownloadsDir = filepath.Join(storeData, DownloadsFolderName)
		paths.ThumbnailsDir = filepath.Join(storeData, ThumbnailFolderName)
	}

	return &ClientConfig{
		App: ClientApp{
			DeleteAfterInstall: !cfg.App.KeepDownloads,
			LogDir:             cfg.App.LogDir,
		},
		Paths: paths,
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			CredentialsPath: cfg.Adapter.CredentialsPath,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{PoolSize: poolSize},
	}
}
