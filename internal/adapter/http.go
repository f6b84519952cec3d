package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-mod-manager/internal/config"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/utils"
	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/go-resty/resty/v2"
)

// REST routes of the asset store.
const (
	routeToken     = "/api/auth/token"
	routeAssets    = "/api/assets"
	routeAsset     = "/api/assets/{name}"
	routeThumbnail = "/api/thumbnails/{name}"
	routeUpload    = "/api/uploads/{name}"
)

type httpAssetStoreAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPAssetStoreAdapter constructs an HTTP/REST implementation of
// [AssetStoreAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies adapterCfg.RequestTimeout (zero means
// no timeout).
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAssetStoreAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AssetStoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpAssetStoreAdapter{client: client, now: time.Now, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAssetStoreAdapter) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAssetStoreAdapter) getToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Authenticate implements [AssetStoreAdapter]. It POSTs the content of the
// credentials file to POST /api/auth/token and stores the bearer token from
// the Authorization response header.
func (h *httpAssetStoreAdapter) Authenticate(ctx context.Context, credentialsPath string) error {
	credentials, err := os.ReadFile(credentialsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrCredentialsNotFound, credentialsPath)
	}
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	if !json.Valid(credentials) {
		return fmt.Errorf("credentials file %s is not valid json", credentialsPath)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(routeToken)
	if err != nil {
		return fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("authenticate parse bearer token: %w", err)
	}

	h.setToken(token)
	h.logger.Info().Str("func", "httpAssetStoreAdapter.Authenticate").Msg("authenticated to asset store")
	return nil
}

// IsAuthenticated implements [AssetStoreAdapter].
func (h *httpAssetStoreAdapter) IsAuthenticated() bool {
	return utils.TokenUsable(h.getToken(), h.now())
}

// ListAssets implements [AssetStoreAdapter]. It GETs
// GET /api/assets?category=<category> and decodes the json array of
// catalog entries.
func (h *httpAssetStoreAdapter) ListAssets(ctx context.Context, category models.Category) ([]models.Asset, error) {
	var assets []models.Asset

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("category", category.String()).
		SetResult(&assets).
		Get(routeAssets)
	if err != nil {
		return nil, fmt.Errorf("list assets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	for i := range assets {
		if assets[i].Category == "" {
			assets[i].Category = category
		}
	}

	return assets, nil
}

// DownloadAsset implements [AssetStoreAdapter] via GET /api/assets/{name}.
func (h *httpAssetStoreAdapter) DownloadAsset(ctx context.Context, asset models.Asset, dest string, onProgress models.ProgressFunc) error {
	if err := h.download(ctx, routeAsset, asset.AssetName, dest, onProgress); err != nil {
		return fmt.Errorf("download asset %s: %w", asset.AssetName, err)
	}
	return nil
}

// DownloadThumbnail implements [AssetStoreAdapter] via
// GET /api/thumbnails/{name}.
func (h *httpAssetStoreAdapter) DownloadThumbnail(ctx context.Context, asset models.Asset, dest string, onProgress models.ProgressFunc) error {
	if asset.Thumbnail == "" {
		return fmt.Errorf("asset %s has no thumbnail: %w", asset.AssetName, ErrNotFound)
	}
	if err := h.download(ctx, routeThumbnail, asset.Thumbnail, dest, onProgress); err != nil {
		return fmt.Errorf("download thumbnail %s: %w", asset.Thumbnail, err)
	}
	return nil
}

func (h *httpAssetStoreAdapter) download(ctx context.Context, route, name, dest string, onProgress models.ProgressFunc) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetPathParam("name", name).
		Get(route)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	raw := resp.RawBody()
	defer raw.Close()

	if err = mapRawHTTPError(resp); err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create download folder: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	pr := newProgressReader(raw, StatusDownloading, resp.RawResponse.ContentLength, onProgress)
	pr.report(StatusStarting)

	if _, err = io.Copy(out, pr); err != nil {
		out.Close()
		os.Remove(dest)
		pr.report(StatusFailed)
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if err = out.Close(); err != nil {
		os.Remove(dest)
		pr.report(StatusFailed)
		return fmt.Errorf("close %s: %w", dest, err)
	}

	pr.report(StatusCompleted)
	return nil
}

// UploadAsset implements [AssetStoreAdapter]. Each file is sent with
// PUT /api/uploads/{file name}; the first failure stops the sequence.
func (h *httpAssetStoreAdapter) UploadAsset(ctx context.Context, manifestPath, thumbnailPath, payloadPath string, progress []models.ProgressFunc) error {
	if !h.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	for i, path := range []string{manifestPath, thumbnailPath, payloadPath} {
		var onProgress models.ProgressFunc
		if i < len(progress) {
			onProgress = progress[i]
		}
		if err := h.upload(ctx, path, onProgress); err != nil {
			return fmt.Errorf("upload %s: %w", filepath.Base(path), err)
		}
	}

	return nil
}

func (h *httpAssetStoreAdapter) upload(ctx context.Context, path string, onProgress models.ProgressFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	pr := newProgressReader(f, StatusUploading, info.Size(), onProgress)
	pr.report(StatusStarting)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetPathParam("name", filepath.Base(path)).
		SetBody(pr).
		Put(routeUpload)
	if err != nil {
		pr.report(StatusFailed)
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		pr.report(StatusFailed)
		return err
	}

	pr.report(StatusCompleted)
	return nil
}

func (h *httpAssetStoreAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.getToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
