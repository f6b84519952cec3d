package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-mod-manager/internal/adapter"
	"github.com/MKhiriev/go-mod-manager/internal/app"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/metrics"
	"github.com/MKhiriev/go-mod-manager/internal/store"
	"github.com/MKhiriev/go-mod-manager/internal/utils"
	"github.com/MKhiriev/go-mod-manager/internal/validators"
	"github.com/MKhiriev/go-mod-manager/internal/workers"
	"github.com/MKhiriev/go-mod-manager/models"
)

type uploadService struct {
	adapter   adapter.AssetStoreAdapter
	settings  store.SettingsRepository
	validator validators.Validator
	pool      *workers.Pool
	observer  metrics.Observer
	notifier  *notifier
	logger    *logger.Logger

	tempDir            string
	defaultCredentials string

	busy atomic.Bool
}

// NewUploadService constructs an [UploadService]. Manifests are written to
// tempDir; defaultCredentials is used when no credentials file was
// remembered yet. Requests are checked by validator before anything is sent.
func NewUploadService(
	assetStore adapter.AssetStoreAdapter,
	settings store.SettingsRepository,
	validator validators.Validator,
	pool *workers.Pool,
	observer metrics.Observer,
	tempDir, defaultCredentials string,
	logger *logger.Logger,
) UploadService {
	if observer == nil {
		observer = metrics.Nop()
	}
	return &uploadService{
		adapter:            assetStore,
		settings:           settings,
		validator:          validator,
		pool:               pool,
		observer:           observer,
		notifier:           newNotifier(),
		logger:             logger,
		tempDir:            tempDir,
		defaultCredentials: defaultCredentials,
	}
}

// Upload implements [UploadService].
func (u *uploadService) Upload(ctx context.Context, req models.UploadRequest) (<-chan models.Result, error) {
	if err := u.validator.Validate(ctx, req); err != nil {
		return nil, err
	}
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	if !u.busy.CompareAndSwap(false, true) {
		return nil, ErrPipelineBusy
	}

	runCtx, log := u.logger.WithRunID(ctx, utils.NewRunID())
	log.Info().
		Str("func", "uploadService.Upload").
		Str("file", req.PathToFile).
		Str("category", category.String()).
		Msg("upload started")

	if err = u.settings.Set(runCtx, store.SettingUploaderAuthor, req.Author); err != nil {
		log.Warn().Err(err).Str("func", "uploadService.Upload").Msg("failed to remember uploader author")
	}

	manifest := newManifest(req, category)
	started := time.Now()
	results := make(chan models.Result, 1)
	u.publish(models.InstallStateUploading, app.MsgUploading)

	var sent [3]atomic.Int64
	u.pool.Submit(runCtx, "upload "+manifest.AssetName, func(ctx context.Context) error {
		return u.upload(ctx, req, manifest, &sent)
	}, func(err error) {
		var total int64
		for i := range sent {
			total += sent[i].Load()
		}
		u.observer.RecordTransfer(metrics.DirectionUpload, total)
		u.observer.RecordOperation(models.OperationUpload, time.Since(started), err)

		result := models.Succeeded(fmt.Sprintf(app.MsgUploadedFmt, manifest.Name))
		state := models.InstallStateDone
		if err != nil {
			log.Err(err).Str("func", "uploadService.Upload").Msg("upload failed")
			result = models.Failed(uploadFailureMessage(err))
			state = models.InstallStateFailed
		}

		u.busy.Store(false)
		u.publish(state, result.Message)
		results <- result
		close(results)
	})

	return results, nil
}

func (u *uploadService) upload(ctx context.Context, req models.UploadRequest, manifest models.Asset, sent *[3]atomic.Int64) error {
	if !u.adapter.IsAuthenticated() {
		if result := u.Authenticate(ctx, ""); !result.Success {
			return errors.New(result.Message)
		}
	}

	manifestPath, err := u.writeManifest(manifest, req.PathToFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(manifestPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "uploadService.upload").
				Str("file", manifestPath).
				Msg("failed to delete temporary manifest")
		}
	}()

	progress := []models.ProgressFunc{
		func(p models.TransferProgress) {
			sent[0].Store(p.BytesTransferred)
			u.publish(models.InstallStateUploading, fmt.Sprintf(app.MsgUploadManifestFmt,
				p.Status, p.BytesTransferred))
		},
		func(p models.TransferProgress) {
			sent[1].Store(p.BytesTransferred)
			u.publish(models.InstallStateUploading, fmt.Sprintf(app.MsgUploadThumbnailFmt,
				p.Status, float64(p.BytesTransferred)/bytesPerKB))
		},
		func(p models.TransferProgress) {
			sent[2].Store(p.BytesTransferred)
			u.publish(models.InstallStateUploading, fmt.Sprintf(app.MsgUploadFileFmt,
				p.Status, float64(p.BytesTransferred)/bytesPerMB))
		},
	}

	return u.adapter.UploadAsset(ctx, manifestPath, req.PathToThumbnail, req.PathToFile, progress)
}

// newManifest builds the catalog entry uploaded next to the payload.
func newManifest(req models.UploadRequest, category models.Category) models.Asset {
	description := req.Description
	if strings.TrimSpace(description) == "" {
		description = req.Name
	}
	return models.Asset{
		AssetName:   filepath.Base(req.PathToFile),
		Name:        req.Name,
		Description: description,
		Author:      req.Author,
		Thumbnail:   filepath.Base(req.PathToThumbnail),
		Category:    category,
	}
}

// writeManifest saves manifest as indented json named after the payload
// file and returns its path.
func (u *uploadService) writeManifest(manifest models.Asset, payloadPath string) (string, error) {
	if err := os.MkdirAll(u.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("create temp folder: %w", err)
	}

	base := filepath.Base(payloadPath)
	path := filepath.Join(u.tempDir, strings.TrimSuffix(base, filepath.Ext(base))+".json")

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

func uploadFailureMessage(err error) string {
	return fmt.Sprintf(app.MsgUploadFailedFmt, err)
}

// Authenticate implements [UploadService].
func (u *uploadService) Authenticate(ctx context.Context, credentialsPath string) models.Result {
	log := logger.FromContext(ctx)

	if credentialsPath == "" {
		credentialsPath = u.rememberedCredentials(ctx)
	}
	if !fileExists(credentialsPath) {
		return models.Failed(fmt.Sprintf(app.MsgCredentialsMissingFmt, credentialsPath))
	}

	if err := u.settings.Set(ctx, store.SettingUploaderCredentials, credentialsPath); err != nil {
		log.Warn().Err(err).Str("func", "uploadService.Authenticate").Msg("failed to remember credentials path")
	}

	if err := u.adapter.Authenticate(ctx, credentialsPath); err != nil {
		log.Err(err).Str("func", "uploadService.Authenticate").Msg("failed to authenticate to asset store")
		return models.Failed(fmt.Sprintf(app.MsgAuthenticationFailedFmt, err))
	}

	return models.Succeeded(app.MsgAuthenticated)
}

func (u *uploadService) rememberedCredentials(ctx context.Context) string {
	path, ok, err := u.settings.Get(ctx, store.SettingUploaderCredentials)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "uploadService.rememberedCredentials").
			Msg("failed to read credentials path")
	}
	if !ok || path == "" {
		return u.defaultCredentials
	}
	return path
}

// DefaultAuthor implements [UploadService].
func (u *uploadService) DefaultAuthor(ctx context.Context) string {
	author, _, err := u.settings.Get(ctx, store.SettingUploaderAuthor)
	if err != nil {
		u.logger.Warn().Err(err).Str("func", "uploadService.DefaultAuthor").Msg("failed to read uploader author")
		return ""
	}
	return author
}

// Subscribe implements [UploadService].
func (u *uploadService) Subscribe(listener models.StatusListener) func() {
	return u.notifier.subscribe(listener)
}

func (u *uploadService) publish(state models.InstallState, message string) {
	u.notifier.publish(models.StatusUpdate{
		Operation: models.OperationUpload,
		State:     state,
		Message:   message,
		Busy:      u.busy.Load(),
	})
}
