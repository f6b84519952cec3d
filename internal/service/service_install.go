// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-mod-manager/internal/adapter"
	"github.com/MKhiriev/go-mod-manager/internal/app"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/metrics"
	"github.com/MKhiriev/go-mod-manager/internal/store"
	"github.com/MKhiriev/go-mod-manager/internal/utils"
	"github.com/MKhiriev/go-mod-manager/internal/workers"
	"github.com/MKhiriev/go-mod-manager/models"
	securejoin "github.com/cyphar/filepath-securejoin"
)

// Units used in progress messages.
const (
	bytesPerKB = 1000
	bytesPerMB = 1000 * 1000
)

// installService runs "download → install → clean up" on the worker pool.
// The busy flag is shared by Install and Remove.
type installService struct {
	storage  store.MetadataStorage
	adapter  adapter.AssetStoreAdapter
	pool     *workers.Pool
	maps     Installer
	textures Installer
	observer metrics.Observer
	notifier *notifier
	logger   *logger.Logger

	downloadsDir       string
	deleteAfterInstall bool

	busy  atomic.Bool
	mu    sync.RWMutex
	state models.InstallState
}

// InstallServiceOptions carries the folders and switches of the install
// pipeline.
type InstallServiceOptions struct {
	DownloadsDir       string
	DeleteAfterInstall bool
}

// NewInstallService constructs an [InstallService]. maps installs assets of
// the Maps category, textures everything else.
func NewInstallService(
	storage store.MetadataStorage,
	assetStore adapter.AssetStoreAdapter,
	pool *workers.Pool,
	maps, textures Installer,
	observer metrics.Observer,
	opts InstallServiceOptions,
	logger *logger.Logger,
) InstallService {
	if observer == nil {
		observer = metrics.Nop()
	}
	return &installService{
		storage:            storage,
		adapter:            assetStore,
		pool:               pool,
		maps:               maps,
		textures:           textures,
		observer:           observer,
		notifier:           newNotifier(),
		logger:             logger,
		downloadsDir:       opts.DownloadsDir,
		deleteAfterInstall: opts.DeleteAfterInstall,
		state:              models.InstallStateIdle,
	}
}

// installRun holds everything one Install call passes between its stages.
type installRun struct {
	ctx          context.Context
	asset        models.Asset
	downloadPath string
	started      time.Time
	transferred  atomic.Int64
	results      chan models.Result
}

// Install implements [InstallService].
func (s *installService) Install(ctx context.Context, asset models.Asset) (<-chan models.Result, error) {
	downloadPath, err := s.downloadPathFor(asset)
	if err != nil {
		return nil, err
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrPipelineBusy
	}

	runCtx, log := s.logger.WithRunID(ctx, utils.NewRunID())
	run := &installRun{
		ctx:          runCtx,
		asset:        asset,
		downloadPath: downloadPath,
		started:      time.Now(),
		results:      make(chan models.Result, 1),
	}

	log.Info().
		Str("func", "installService.Install").
		Str("asset", asset.AssetName).
		Str("category", asset.Category.String()).
		Msg("install started")

	s.setState(models.OperationInstall, models.InstallStateDownloading, fmt.Sprintf(app.MsgDownloadingFmt, asset.Name))
	s.pool.Submit(runCtx, "download "+asset.AssetName, func(ctx context.Context) error {
		return s.download(ctx, run)
	}, func(err error) {
		if err != nil {
			s.finish(run, models.Failed(app.MsgDownloadFailed))
			return
		}
		s.startInstall(run)
	})

	return run.results, nil
}

// downloadPathFor resolves the temp artifact of asset inside the downloads
// folder. Asset names are plain file names; anything else is refused.
func (s *installService) downloadPathFor(asset models.Asset) (string, error) {
	name := asset.AssetName
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}

	path, err := securejoin.SecureJoin(s.downloadsDir, name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAssetName, err)
	}
	return path, nil
}

func (s *installService) download(ctx context.Context, run *installRun) error {
	if err := os.MkdirAll(s.downloadsDir, 0o755); err != nil {
		return fmt.Errorf("create downloads folder: %w", err)
	}

	return s.adapter.DownloadAsset(ctx, run.asset, run.downloadPath, func(p models.TransferProgress) {
		run.transferred.Store(p.BytesTransferred)
		s.publish(models.OperationInstall, models.InstallStateDownloading, fmt.Sprintf(app.MsgDownloadProgressFmt,
			p.Status, float64(p.BytesTransferred)/bytesPerMB))
	})
}

func (s *installService) startInstall(run *installRun) {
	s.observer.RecordTransfer(metrics.DirectionDownload, run.transferred.Load())
	s.setState(models.OperationInstall, models.InstallStateInstalling, fmt.Sprintf(app.MsgInstallingFmt, run.asset.Name))

	var result models.Result
	s.pool.Submit(run.ctx, "install "+run.asset.AssetName, func(ctx context.Context) error {
		result = s.installerFor(run.asset).InstallFromDownloadedPackage(ctx, run.downloadPath, run.asset)
		if !result.Success {
			return errors.New(result.Message)
		}
		return nil
	}, func(err error) {
		if err != nil {
			if result.Message == "" {
				result = models.Failed(fmt.Sprintf(app.MsgInstallFailedFmt, run.asset.Name, err))
			}
			s.finish(run, result)
			return
		}
		s.cleanUp(run)
		s.finish(run, result)
	})
}

func (s *installService) cleanUp(run *installRun) {
	if !s.deleteAfterInstall {
		return
	}

	s.setState(models.OperationInstall, models.InstallStateCleaningUp, "")
	if err := os.Remove(run.downloadPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(run.ctx).Warn().Err(err).
			Str("func", "installService.cleanUp").
			Str("file", run.downloadPath).
			Msg("failed to delete downloaded package")
	}
}

func (s *installService) installerFor(asset models.Asset) Installer {
	if asset.Category.IsMap() {
		return s.maps
	}
	return s.textures
}

// finish publishes the terminal state, releases the busy flag and delivers
// result to the caller.
func (s *installService) finish(run *installRun, result models.Result) {
	state := models.InstallStateDone
	var runErr error
	if !result.Success {
		state = models.InstallStateFailed
		runErr = errors.New(result.Message)
	}

	log := logger.FromContext(run.ctx)
	if runErr != nil {
		log.Err(runErr).Str("func", "installService.finish").Str("asset", run.asset.AssetName).Msg("install failed")
	} else {
		log.Info().Str("func", "installService.finish").Str("asset", run.asset.AssetName).Msg("install finished")
	}

	s.observer.RecordOperation(models.OperationInstall, time.Since(run.started), runErr)

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.busy.Store(false)
	s.notifier.publish(models.StatusUpdate{
		Operation: models.OperationInstall,
		State:     state,
		Message:   result.Message,
		Busy:      false,
	})

	run.results <- result
	close(run.results)
}

// Remove implements [InstallService].
func (s *installService) Remove(ctx context.Context, asset models.Asset) (models.Result, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return models.Result{}, ErrPipelineBusy
	}

	started := time.Now()
	_, log := s.logger.WithRunID(ctx, utils.NewRunID())
	s.setState(models.OperationRemove, models.InstallStateRemoving, fmt.Sprintf(app.MsgRemovingFmt, asset.Name))

	result := s.remove(asset)

	state := models.InstallStateDone
	var runErr error
	if !result.Success {
		state = models.InstallStateFailed
		runErr = errors.New(result.Message)
		log.Warn().Str("func", "installService.Remove").Str("asset", asset.AssetName).Msg(result.Message)
	}
	s.observer.RecordOperation(models.OperationRemove, time.Since(started), runErr)

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.busy.Store(false)
	s.notifier.publish(models.StatusUpdate{
		Operation: models.OperationRemove,
		State:     state,
		Message:   result.Message,
	})

	return result, nil
}

func (s *installService) remove(asset models.Asset) models.Result {
	if asset.Category.IsMap() {
		record, ok := s.storage.FindByAsset(asset.AssetName)
		if !ok {
			return models.Failed(app.MsgMapMetadataNotFound)
		}
		return s.storage.DeleteItem(record)
	}

	entry, ok := s.storage.FindTexture(asset.AssetName)
	if !ok {
		return models.Failed(fmt.Sprintf(app.MsgTextureMetadataNotFoundFmt, asset.Category.Label()))
	}
	return s.storage.DeleteTextureFiles(entry)
}

// IsInstalled implements [InstallService].
func (s *installService) IsInstalled(asset models.Asset) bool {
	if asset.Category.IsMap() {
		_, ok := s.storage.FindByAsset(asset.AssetName)
		return ok
	}
	_, ok := s.storage.FindTexture(asset.AssetName)
	return ok
}

// State implements [InstallService].
func (s *installService) State() models.InstallState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Busy implements [InstallService].
func (s *installService) Busy() bool {
	return s.busy.Load()
}

// Subscribe implements [InstallService].
func (s *installService) Subscribe(listener models.StatusListener) func() {
	return s.notifier.subscribe(listener)
}

func (s *installService) setState(operation string, state models.InstallState, message string) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.publish(operation, state, message)
}

func (s *installService) publish(operation string, state models.InstallState, message string) {
	s.notifier.publish(models.StatusUpdate{
		Operation: operation,
		State:     state,
		Message:   message,
		Busy:      s.busy.Load(),
	})
}
