package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-mod-manager/internal/adapter"
	"github.com/MKhiriev/go-mod-manager/internal/app"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/workers"
	"github.com/MKhiriev/go-mod-manager/models"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const defaultThumbnailCacheSize = 256

type catalogService struct {
	adapter  adapter.AssetStoreAdapter
	pool     *workers.Pool
	notifier *notifier
	logger   *logger.Logger

	thumbnailsDir string
	thumbnails    *lru.Cache[string, string]

	// flights collapses concurrent fetches of one missing category.
	flights singleflight.Group

	// mu guards every field below. It is never held while fetching or
	// while listeners run.
	mu       sync.Mutex
	selected map[models.Category]bool
	entries  map[models.Category][]models.Asset
	filtered []models.Asset
	fetched  bool
}

// NewCatalogService constructs a [CatalogService] that stores preview
// images in thumbnailsDir.
func NewCatalogService(assetStore adapter.AssetStoreAdapter, pool *workers.Pool, thumbnailsDir string, logger *logger.Logger) (CatalogService, error) {
	thumbnails, err := lru.New[string, string](defaultThumbnailCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create thumbnail cache: %w", err)
	}

	return &catalogService{
		adapter:       assetStore,
		pool:          pool,
		notifier:      newNotifier(),
		logger:        logger,
		thumbnailsDir: thumbnailsDir,
		thumbnails:    thumbnails,
		selected:      make(map[models.Category]bool),
		entries:       make(map[models.Category][]models.Asset),
	}, nil
}

// Select implements [CatalogService].
func (c *catalogService) Select(ctx context.Context, category models.Category, selected bool) error {
	c.mu.Lock()
	c.selected[category] = selected
	c.mu.Unlock()

	return c.RefreshFiltered(ctx)
}

// SelectAll implements [CatalogService].
func (c *catalogService) SelectAll(ctx context.Context, selected bool) error {
	c.mu.Lock()
	for _, category := range models.Categories() {
		c.selected[category] = selected
	}
	c.mu.Unlock()

	return c.RefreshFiltered(ctx)
}

// Selected implements [CatalogService].
func (c *catalogService) Selected() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedLocked()
}

func (c *catalogService) selectedLocked() []models.Category {
	out := make([]models.Category, 0, len(c.selected))
	for _, category := range models.Categories() {
		if c.selected[category] {
			out = append(out, category)
		}
	}
	return out
}

// RefreshFiltered implements [CatalogService]. Categories that fail to
// fetch are left out of the view and fetched again on the next refresh.
func (c *catalogService) RefreshFiltered(ctx context.Context) error {
	c.mu.Lock()
	selected := c.selectedLocked()
	var missing []models.Category
	for _, category := range selected {
		if _, ok := c.entries[category]; !ok {
			missing = append(missing, category)
		}
	}
	c.mu.Unlock()

	fetched, err := c.fetchMissing(ctx, missing)

	c.mu.Lock()
	for category, assets := range fetched {
		if _, ok := c.entries[category]; !ok {
			c.entries[category] = assets
		}
	}
	filtered := make([]models.Asset, 0)
	for _, category := range c.selectedLocked() {
		filtered = append(filtered, c.entries[category]...)
	}
	c.filtered = filtered
	c.mu.Unlock()

	if len(selected) == 0 {
		c.publish(models.InstallStateIdle, app.MsgNoCategory)
	}

	return err
}

// fetchMissing lists the categories not cached yet and caches them.
// Callers asking for the same category at once share a single request.
func (c *catalogService) fetchMissing(ctx context.Context, categories []models.Category) (map[models.Category][]models.Asset, error) {
	out := make(map[models.Category][]models.Asset, len(categories))
	var errs []error

	for _, category := range categories {
		v, err, _ := c.flights.Do(category.String(), func() (any, error) {
			c.mu.Lock()
			cached, ok := c.entries[category]
			c.mu.Unlock()
			if ok {
				return cached, nil
			}

			fetched, err := c.fetch(ctx, []models.Category{category})
			if err != nil {
				return nil, err
			}

			assets := fetched[category]
			c.mu.Lock()
			if current, ok := c.entries[category]; ok {
				assets = current
			} else {
				c.entries[category] = assets
			}
			c.mu.Unlock()
			return assets, nil
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[category] = v.([]models.Asset)
	}

	return out, errors.Join(errs...)
}

// fetch lists every category in categories. Failed categories are missing
// from the returned map and reported in the joined error.
func (c *catalogService) fetch(ctx context.Context, categories []models.Category) (map[models.Category][]models.Asset, error) {
	out := make(map[models.Category][]models.Asset, len(categories))
	var errs []error

	for _, category := range categories {
		assets, err := c.adapter.ListAssets(ctx, category)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "catalogService.fetch").
				Str("category", category.String()).
				Msg("failed to fetch catalog")
			errs = append(errs, fmt.Errorf("fetch %s: %w", category, err))
			continue
		}
		if assets == nil {
			assets = []models.Asset{}
		}
		out[category] = assets
	}

	return out, errors.Join(errs...)
}

// Filtered implements [CatalogService].
func (c *catalogService) Filtered() []models.Asset {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Asset, len(c.filtered))
	copy(out, c.filtered)
	return out
}

// Find implements [CatalogService].
func (c *catalogService) Find(assetName string) (models.Asset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, category := range models.Categories() {
		for _, asset := range c.entries[category] {
			if asset.AssetName == assetName {
				return asset, true
			}
		}
	}
	return models.Asset{}, false
}

// FetchManifests implements [CatalogService].
func (c *catalogService) FetchManifests(ctx context.Context, force bool) <-chan models.Result {
	results := make(chan models.Result, 1)

	c.mu.Lock()
	done := c.fetched && !force
	c.mu.Unlock()
	if done {
		results <- models.Succeeded(app.MsgManifestsFetched)
		close(results)
		return results
	}

	c.publish(models.InstallStateDownloading, app.MsgFetchingManifests)

	var fetched map[models.Category][]models.Asset
	c.pool.Submit(ctx, "fetch manifests", func(ctx context.Context) error {
		var err error
		fetched, err = c.fetch(ctx, models.Categories())
		return err
	}, func(err error) {
		c.mu.Lock()
		for category, assets := range fetched {
			c.entries[category] = assets
		}
		if err == nil {
			c.fetched = true
		}
		c.mu.Unlock()

		result := models.Succeeded(app.MsgManifestsFetched)
		state := models.InstallStateDone
		if err != nil {
			result = models.Failed(app.MsgManifestsFailed)
			state = models.InstallStateFailed
		} else if refreshErr := c.RefreshFiltered(context.WithoutCancel(ctx)); refreshErr != nil {
			c.logger.Err(refreshErr).Str("func", "catalogService.FetchManifests").Msg("failed to refresh catalog view")
		}

		c.publish(state, result.Message)
		results <- result
		close(results)
	})

	return results
}

// Thumbnail implements [CatalogService].
func (c *catalogService) Thumbnail(ctx context.Context, asset models.Asset) (string, error) {
	if asset.Thumbnail == "" {
		c.publish(models.InstallStateFailed, app.MsgPreviewFailed)
		return "", fmt.Errorf("%w: %s has no thumbnail", ErrThumbnailUnavailable, asset.AssetName)
	}

	path := filepath.Join(c.thumbnailsDir, filepath.Base(asset.Thumbnail))
	if cached, ok := c.thumbnails.Get(asset.AssetName); ok && fileExists(cached) {
		return cached, nil
	}
	if fileExists(path) {
		c.thumbnails.Add(asset.AssetName, path)
		return path, nil
	}

	if err := os.MkdirAll(c.thumbnailsDir, 0o755); err != nil {
		c.publish(models.InstallStateFailed, app.MsgPreviewFailed)
		return "", fmt.Errorf("%w: %w", ErrThumbnailUnavailable, err)
	}

	err := c.adapter.DownloadThumbnail(ctx, asset, path, func(p models.TransferProgress) {
		c.publish(models.InstallStateDownloading, fmt.Sprintf(app.MsgPreviewProgressFmt,
			p.Status, float64(p.BytesTransferred)/bytesPerKB))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogService.Thumbnail").
			Str("asset", asset.AssetName).
			Msg("failed to fetch preview image")
		c.publish(models.InstallStateFailed, app.MsgPreviewFailed)
		return "", fmt.Errorf("%w: %w", ErrThumbnailUnavailable, err)
	}

	c.thumbnails.Add(asset.AssetName, path)
	return path, nil
}

// Subscribe implements [CatalogService].
func (c *catalogService) Subscribe(listener models.StatusListener) func() {
	return c.notifier.subscribe(listener)
}

func (c *catalogService) publish(state models.InstallState, message string) {
	c.notifier.publish(models.StatusUpdate{
		Operation: models.OperationCatalog,
		State:     state,
		Message:   message,
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
