package service

import (
	"fmt"

	"github.com/MKhiriev/go-mod-manager/internal/adapter"
	"github.com/MKhiriev/go-mod-manager/internal/config"
	"github.com/MKhiriev/go-mod-manager/internal/content"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/metrics"
	"github.com/MKhiriev/go-mod-manager/internal/store"
	"github.com/MKhiriev/go-mod-manager/internal/validators"
	"github.com/MKhiriev/go-mod-manager/internal/workers"
)

// Services groups every service used by the client.
type Services struct {
	Install  InstallService
	Catalog  CatalogService
	Upload   UploadService
	Metadata MetadataService
}

// NewServices wires the services on top of storages and the asset store
// adapter. Background stages run on pool.
func NewServices(
	cfg *config.ClientConfig,
	storages *store.Storages,
	assetStore adapter.AssetStoreAdapter,
	pool *workers.Pool,
	observer metrics.Observer,
	log *logger.Logger,
) (*Services, error) {
	metadata := &metadataService{
		storage:     storages.Metadata,
		scanner:     content.NewMapScanner(log),
		contentRoot: cfg.Paths.ContentRoot,
		logger:      log,
	}

	install := NewInstallService(
		storages.Metadata,
		assetStore,
		pool,
		newMapInstaller(metadata, cfg.Paths.TempDownloadsDir),
		newTextureInstaller(storages.Metadata, cfg.Paths.ContentRoot, cfg.Paths.TempDownloadsDir),
		observer,
		InstallServiceOptions{
			DownloadsDir:       cfg.Paths.TempDownloadsDir,
			DeleteAfterInstall: cfg.App.DeleteAfterInstall,
		},
		log,
	)

	catalog, err := NewCatalogService(assetStore, pool, cfg.Paths.ThumbnailsDir, log)
	if err != nil {
		return nil, fmt.Errorf("create catalog service: %w", err)
	}

	upload := NewUploadService(
		assetStore,
		storages.Settings,
		validators.NewUploadRequestValidator(),
		pool,
		observer,
		cfg.Paths.TempDownloadsDir,
		cfg.Adapter.CredentialsPath,
		log,
	)

	return &Services{
		Install:  install,
		Catalog:  catalog,
		Upload:   upload,
		Metadata: metadata,
	}, nil
}
