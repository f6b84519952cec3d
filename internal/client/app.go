package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-mod-manager/internal/adapter"
	"github.com/MKhiriev/go-mod-manager/internal/config"
	"github.com/MKhiriev/go-mod-manager/internal/handler"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/metrics"
	"github.com/MKhiriev/go-mod-manager/internal/server"
	"github.com/MKhiriev/go-mod-manager/internal/service"
	"github.com/MKhiriev/go-mod-manager/internal/store"
	"github.com/MKhiriev/go-mod-manager/internal/tui"
	"github.com/MKhiriev/go-mod-manager/internal/workers"
	"github.com/MKhiriev/go-mod-manager/models"
)

const shutdownTimeout = 5 * time.Second

var (
	// ErrAssetNotFound is returned when a catalog entry is not known to the
	// asset store.
	ErrAssetNotFound = errors.New("asset not found in catalog")

	// ErrItemNotFound is returned when no installed map matches a path.
	ErrItemNotFound = errors.New("installed map not found")

	// ErrCatalogUnavailable is returned when the catalog could not be
	// fetched.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// Options holds process settings that are not part of the stored
// configuration.
type Options struct {
	// MetricsAddress serves Prometheus metrics and the pipeline status while
	// the client runs when non-empty (e.g. "localhost:9090").
	MetricsAddress string
}

// App is the mod manager client.
type App struct {
	services *service.Services
	ui       *tui.TUI
	pool     *workers.Pool
	closers  []func() error
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires every client component from cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, opts Options, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	assetStore, err := adapter.NewHTTPAssetStoreAdapter(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create asset store adapter: %w", err)
	}

	observer, err := metrics.NewPrometheusObserver("", nil)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create metrics: %w", err)
	}

	pool := workers.NewPool(cfg.Workers.PoolSize, log)
	services, err := service.NewServices(cfg, storages, assetStore, pool, observer, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	app := newApp(services, tui.New(services, log), pool, log)
	app.closers = append(app.closers, storages.Close)

	if opts.MetricsAddress != "" {
		if err = app.serveStatus(opts.MetricsAddress, observer.Handler()); err != nil {
			app.Close()
			return nil, fmt.Errorf("serve status: %w", err)
		}
	}

	return app, nil
}

func newApp(services *service.Services, ui *tui.TUI, pool *workers.Pool, log *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		pool:     pool,
		logger:   log,
	}
}

func (a *App) serveStatus(address string, metricsHandler http.Handler) error {
	router := handler.NewHandler(a.services, metricsHandler, a.logger).Init()
	srv, err := server.NewHTTPServer(address, router, a.logger)
	if err != nil {
		return err
	}

	go func() {
		if err := srv.RunServer(); err != nil {
			a.logger.Err(err).Str("func", "App.serveStatus").Msg("status server stopped")
		}
	}()

	a.closers = append(a.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return nil
}

// Run shows the catalog browser.
func (a *App) Run(ctx context.Context) error {
	return a.ui.Browse(ctx)
}

// Close waits for running pipelines and releases resources.
func (a *App) Close() error {
	a.pool.Wait()

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// List returns the catalog entries of categories, or of every category when
// none is given.
func (a *App) List(ctx context.Context, categories []string) ([]models.Asset, error) {
	catalog := a.services.Catalog

	if len(categories) == 0 {
		if err := catalog.SelectAll(ctx, true); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
		}
		return catalog.Filtered(), nil
	}

	for _, raw := range categories {
		category, err := models.ParseCategory(raw)
		if err != nil {
			return nil, err
		}
		if err = catalog.Select(ctx, category, true); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
		}
	}
	return catalog.Filtered(), nil
}

// findAsset fetches the catalog and looks up assetName.
func (a *App) findAsset(ctx context.Context, assetName string) (models.Asset, error) {
	result := <-a.services.Catalog.FetchManifests(ctx, false)
	if !result.Success {
		return models.Asset{}, fmt.Errorf("%w: %s", ErrCatalogUnavailable, result.Message)
	}

	asset, ok := a.services.Catalog.Find(assetName)
	if !ok {
		return models.Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, assetName)
	}
	return asset, nil
}

// Install downloads and installs the catalog entry assetName, showing its
// progress.
func (a *App) Install(ctx context.Context, assetName string) (models.Result, error) {
	asset, err := a.findAsset(ctx, assetName)
	if err != nil {
		return models.Result{}, err
	}

	return a.ui.RunOperation(ctx, "Installing "+asset.Name, a.services.Install.Subscribe,
		func(ctx context.Context) (<-chan models.Result, error) {
			return a.services.Install.Install(ctx, asset)
		})
}

// Remove deletes the installed files of assetName.
func (a *App) Remove(ctx context.Context, assetName string) (models.Result, error) {
	asset, err := a.findAsset(ctx, assetName)
	if err != nil {
		return models.Result{}, err
	}
	return a.services.Install.Remove(ctx, asset)
}

// Installed returns every installed map record.
func (a *App) Installed() []models.ContentMetadata {
	return a.services.Metadata.ListInstalled()
}

// Upload validates req and uploads it, showing its progress.
func (a *App) Upload(ctx context.Context, req models.UploadRequest) (models.Result, error) {
	if req.Author == "" {
		req.Author = a.services.Upload.DefaultAuthor(ctx)
	}

	return a.ui.RunOperation(ctx, "Uploading "+req.Name, a.services.Upload.Subscribe,
		func(ctx context.Context) (<-chan models.Result, error) {
			return a.services.Upload.Upload(ctx, req)
		})
}

// Login authenticates to the asset store with the credentials file at
// credentialsPath, or with the remembered one when it is empty.
func (a *App) Login(ctx context.Context, credentialsPath string) models.Result {
	return a.services.Upload.Authenticate(ctx, credentialsPath)
}

// Import copies the map found under folder into the content folder.
func (a *App) Import(ctx context.Context, folder string) (models.Result, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return models.Result{}, fmt.Errorf("resolve %s: %w", folder, err)
	}
	return a.services.Metadata.ImportFolder(ctx, abs), nil
}

// Rename sets the display name of the installed map at mapPath.
func (a *App) Rename(mapPath, name string) error {
	return a.updateItem(mapPath, func(item *models.ContentItem) {
		item.CustomName = name
	})
}

// SetHidden hides or shows the installed map at mapPath.
func (a *App) SetHidden(mapPath string, hidden bool) error {
	return a.updateItem(mapPath, func(item *models.ContentItem) {
		item.IsHiddenByUser = hidden
	})
}

func (a *App) updateItem(mapPath string, change func(item *models.ContentItem)) error {
	abs, err := filepath.Abs(mapPath)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", mapPath, err)
	}

	items := a.services.Metadata.ApplyCustomProperties([]models.ContentItem{models.NewContentItem(abs)}, true)
	if len(items) == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, mapPath)
	}
	item := items[0]
	change(&item)
	return a.services.Metadata.WriteCustomProperties([]models.ContentItem{item})
}
