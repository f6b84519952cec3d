package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/metrics"
	"github.com/MKhiriev/go-mod-manager/internal/mock"
	"github.com/MKhiriev/go-mod-manager/internal/workers"
	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// updateRecorder collects published status updates.
type updateRecorder struct {
	mu      sync.Mutex
	updates []models.StatusUpdate
}

func (r *updateRecorder) listen(update models.StatusUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, update)
}

func (r *updateRecorder) states() []models.InstallState {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.InstallState
	for _, u := range r.updates {
		if len(out) == 0 || out[len(out)-1] != u.State {
			out = append(out, u.State)
		}
	}
	return out
}

func (r *updateRecorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.updates))
	for _, u := range r.updates {
		out = append(out, u.Message)
	}
	return out
}

// downloadZip makes a mocked DownloadAsset write files as a zip to dest.
func downloadZip(t *testing.T, files map[string]string) func(context.Context, models.Asset, string, models.ProgressFunc) error {
	return func(_ context.Context, _ models.Asset, dest string, onProgress models.ProgressFunc) error {
		onProgress.Report(models.TransferProgress{Status: "Starting", TotalBytes: -1})
		writeZip(t, dest, files)
		onProgress.Report(models.TransferProgress{Status: "Completed", BytesTransferred: 2_500_000, TotalBytes: 2_500_000})
		return nil
	}
}

func newTestInstallService(paths testPaths, assetStore *mock.MockAssetStoreAdapter, maps, textures Installer, deleteAfter bool) (InstallService, *workers.Pool) {
	pool := workers.NewPool(2, logger.Nop())
	svc := NewInstallService(paths.storage(), assetStore, pool, maps, textures, metrics.Nop(),
		InstallServiceOptions{DownloadsDir: paths.downloads, DeleteAfterInstall: deleteAfter}, logger.Nop())
	return svc, pool
}

func TestInstallService_InstallAndRemoveMap(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	assetStore := mock.NewMockAssetStoreAdapter(ctrl)
	storage := paths.storage()

	maps := newMapInstaller(paths.metadataService(storage), paths.downloads)
	textures := newTextureInstaller(storage, paths.contentRoot, paths.downloads)
	svc, pool := newTestInstallService(paths, assetStore, maps, textures, true)

	recorder := &updateRecorder{}
	unsubscribe := svc.Subscribe(recorder.listen)
	defer unsubscribe()

	downloadPath := filepath.Join(paths.downloads, skateparkAsset.AssetName)
	assetStore.EXPECT().
		DownloadAsset(gomock.Any(), skateparkAsset, downloadPath, gomock.Any()).
		DoAndReturn(downloadZip(t, skateparkPackage))

	assert.False(t, svc.IsInstalled(skateparkAsset))

	results, err := svc.Install(context.Background(), skateparkAsset)
	require.NoError(t, err)
	result := <-results
	pool.Wait()

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "Successfully installed Skatepark!", result.Message)
	assert.Equal(t, models.InstallStateDone, svc.State())
	assert.False(t, svc.Busy())
	assert.NoFileExists(t, downloadPath)
	assert.Equal(t, []models.InstallState{
		models.InstallStateDownloading,
		models.InstallStateInstalling,
		models.InstallStateCleaningUp,
		models.InstallStateDone,
	}, recorder.states())
	assert.Contains(t, recorder.messages(), "Downloading asset: Completed 2.50 MB...")
	assert.Contains(t, recorder.messages(), "Installing asset: Skatepark ... ")

	record, ok := storage.Load(models.MetadataKey{DirectoryName: "skatepark", ItemName: "skatepark"})
	require.True(t, ok)
	require.NotEmpty(t, record.FilePaths)
	assert.True(t, svc.IsInstalled(skateparkAsset))

	removed, err := svc.Remove(context.Background(), skateparkAsset)
	require.NoError(t, err)
	require.True(t, removed.Success, removed.Message)
	assert.Equal(t, "skatepark has been deleted!", removed.Message)
	for _, p := range record.FilePaths {
		assert.NoFileExists(t, p)
	}
	assert.NoDirExists(t, filepath.Join(paths.contentRoot, "skatepark"))

	_, ok = storage.Load(record.Key())
	assert.False(t, ok)
	assert.False(t, svc.IsInstalled(skateparkAsset))
}

func TestInstallService_InstallTexture(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	assetStore := mock.NewMockAssetStoreAdapter(ctrl)
	maps := mock.NewMockInstaller(ctrl)
	textures := mock.NewMockInstaller(ctrl)
	svc, pool := newTestInstallService(paths, assetStore, maps, textures, false)

	downloadPath := filepath.Join(paths.downloads, deckAsset.AssetName)
	assetStore.EXPECT().
		DownloadAsset(gomock.Any(), deckAsset, downloadPath, gomock.Any()).
		DoAndReturn(downloadZip(t, map[string]string{"deck.uasset": "d"}))
	textures.EXPECT().
		InstallFromDownloadedPackage(gomock.Any(), downloadPath, deckAsset).
		Return(models.Succeeded("Successfully installed Red Deck!"))

	results, err := svc.Install(context.Background(), deckAsset)
	require.NoError(t, err)
	result := <-results
	pool.Wait()

	assert.True(t, result.Success)
	// downloads are kept when cleanup is disabled
	assert.FileExists(t, downloadPath)
}

func TestInstallService_DownloadFailure(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	assetStore := mock.NewMockAssetStoreAdapter(ctrl)
	maps := mock.NewMockInstaller(ctrl)
	svc, pool := newTestInstallService(paths, assetStore, maps, mock.NewMockInstaller(ctrl), true)

	assetStore.EXPECT().DownloadAsset(gomock.Any(), skateparkAsset, gomock.Any(), gomock.Any()).Return(assert.AnError)

	results, err := svc.Install(context.Background(), skateparkAsset)
	require.NoError(t, err)
	result := <-results
	pool.Wait()

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to install asset ...", result.Message)
	assert.Equal(t, models.InstallStateFailed, svc.State())
	assert.False(t, svc.Busy())
}

func TestInstallService_InstallFailureKeepsDownload(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	assetStore := mock.NewMockAssetStoreAdapter(ctrl)
	maps := mock.NewMockInstaller(ctrl)
	svc, pool := newTestInstallService(paths, assetStore, maps, mock.NewMockInstaller(ctrl), true)

	downloadPath := filepath.Join(paths.downloads, skateparkAsset.AssetName)
	assetStore.EXPECT().
		DownloadAsset(gomock.Any(), skateparkAsset, downloadPath, gomock.Any()).
		DoAndReturn(downloadZip(t, skateparkPackage))
	maps.EXPECT().
		InstallFromDownloadedPackage(gomock.Any(), downloadPath, skateparkAsset).
		Return(models.Failed("Failed to install Skatepark: disk full"))

	results, err := svc.Install(context.Background(), skateparkAsset)
	require.NoError(t, err)
	result := <-results
	pool.Wait()

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to install Skatepark: disk full", result.Message)
	assert.Equal(t, models.InstallStateFailed, svc.State())
	assert.FileExists(t, downloadPath)
}

func TestInstallService_InstallerPanic(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	assetStore := mock.NewMockAssetStoreAdapter(ctrl)
	maps := mock.NewMockInstaller(ctrl)
	svc, pool := newTestInstallService(paths, assetStore, maps, mock.NewMockInstaller(ctrl), true)

	assetStore.EXPECT().DownloadAsset(gomock.Any(), skateparkAsset, gomock.Any(), gomock.Any()).Return(nil)
	maps.EXPECT().InstallFromDownloadedPackage(gomock.Any(), gomock.Any(), skateparkAsset).
		DoAndReturn(func(context.Context, string, models.Asset) models.Result {
			panic("boom")
		})

	results, err := svc.Install(context.Background(), skateparkAsset)
	require.NoError(t, err)
	result := <-results
	pool.Wait()

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Failed to install Skatepark: ")
	assert.False(t, svc.Busy())
}

func TestInstallService_BusyRejectsSecondOperation(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	assetStore := mock.NewMockAssetStoreAdapter(ctrl)
	maps := mock.NewMockInstaller(ctrl)
	svc, pool := newTestInstallService(paths, assetStore, maps, mock.NewMockInstaller(ctrl), false)

	started := make(chan struct{})
	release := make(chan struct{})
	assetStore.EXPECT().DownloadAsset(gomock.Any(), skateparkAsset, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Asset, string, models.ProgressFunc) error {
			close(started)
			<-release
			return nil
		})
	maps.EXPECT().InstallFromDownloadedPackage(gomock.Any(), gomock.Any(), skateparkAsset).
		Return(models.Succeeded("Successfully installed Skatepark!"))

	results, err := svc.Install(context.Background(), skateparkAsset)
	require.NoError(t, err)
	<-started

	assert.True(t, svc.Busy())
	_, err = svc.Install(context.Background(), deckAsset)
	assert.ErrorIs(t, err, ErrPipelineBusy)
	_, err = svc.Remove(context.Background(), deckAsset)
	assert.ErrorIs(t, err, ErrPipelineBusy)

	close(release)
	result := <-results
	pool.Wait()
	assert.True(t, result.Success)
	assert.False(t, svc.Busy())
}

func TestInstallService_InstallCancelledContextStillRuns(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	assetStore := mock.NewMockAssetStoreAdapter(ctrl)
	maps := mock.NewMockInstaller(ctrl)
	svc, pool := newTestInstallService(paths, assetStore, maps, mock.NewMockInstaller(ctrl), false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assetStore.EXPECT().DownloadAsset(gomock.Any(), skateparkAsset, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.Asset, _ string, _ models.ProgressFunc) error {
			return ctx.Err()
		})
	maps.EXPECT().InstallFromDownloadedPackage(gomock.Any(), gomock.Any(), skateparkAsset).
		Return(models.Succeeded("Successfully installed Skatepark!"))

	results, err := svc.Install(ctx, skateparkAsset)
	require.NoError(t, err)
	result := <-results
	pool.Wait()
	assert.True(t, result.Success)
}

func TestInstallService_Remove(t *testing.T) {
	record := models.ContentMetadata{
		ItemName:         "skatepark",
		AssetName:        skateparkAsset.AssetName,
		ContentDirectory: "/content/skatepark",
	}
	entry := models.TextureMetadata{AssetName: deckAsset.AssetName, Name: deckAsset.Name}

	tests := []struct {
		name        string
		asset       models.Asset
		setup       func(storage *mock.MockMetadataStorage)
		wantSuccess bool
		wantMessage string
	}{
		{
			name:  "map without metadata",
			asset: skateparkAsset,
			setup: func(storage *mock.MockMetadataStorage) {
				storage.EXPECT().FindByAsset(skateparkAsset.AssetName).Return(models.ContentMetadata{}, false)
			},
			wantMessage: "Failed to find meta data to delete map files ...",
		},
		{
			name:  "map with unknown files",
			asset: skateparkAsset,
			setup: func(storage *mock.MockMetadataStorage) {
				storage.EXPECT().FindByAsset(skateparkAsset.AssetName).Return(record, true)
				storage.EXPECT().DeleteItem(record).Return(models.Failed("List of files to delete is unknown for skatepark."))
			},
			wantMessage: "List of files to delete is unknown for skatepark.",
		},
		{
			name:  "texture",
			asset: deckAsset,
			setup: func(storage *mock.MockMetadataStorage) {
				storage.EXPECT().FindTexture(deckAsset.AssetName).Return(entry, true)
				storage.EXPECT().DeleteTextureFiles(entry).Return(models.Succeeded("Red Deck has been deleted!"))
			},
			wantSuccess: true,
			wantMessage: "Red Deck has been deleted!",
		},
		{
			name:  "texture without registry entry",
			asset: deckAsset,
			setup: func(storage *mock.MockMetadataStorage) {
				storage.EXPECT().FindTexture(deckAsset.AssetName).Return(models.TextureMetadata{}, false)
			},
			wantMessage: "Failed to find meta data to delete Deck files ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockMetadataStorage(ctrl)
			tt.setup(storage)

			svc := NewInstallService(storage, mock.NewMockAssetStoreAdapter(ctrl), workers.NewPool(1, logger.Nop()),
				mock.NewMockInstaller(ctrl), mock.NewMockInstaller(ctrl), nil, InstallServiceOptions{}, logger.Nop())

			recorder := &updateRecorder{}
			svc.Subscribe(recorder.listen)

			result, err := svc.Remove(context.Background(), tt.asset)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.False(t, svc.Busy())

			wantState := models.InstallStateFailed
			if tt.wantSuccess {
				wantState = models.InstallStateDone
			}
			assert.Equal(t, []models.InstallState{models.InstallStateRemoving, wantState}, recorder.states())
		})
	}
}

func TestInstallService_ListenerMayCallBack(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	storage := mock.NewMockMetadataStorage(ctrl)
	storage.EXPECT().FindByAsset(gomock.Any()).Return(models.ContentMetadata{}, false).AnyTimes()

	svc := NewInstallService(storage, mock.NewMockAssetStoreAdapter(ctrl), workers.NewPool(1, logger.Nop()),
		mock.NewMockInstaller(ctrl), mock.NewMockInstaller(ctrl), nil,
		InstallServiceOptions{DownloadsDir: paths.downloads}, logger.Nop())

	var states []models.InstallState
	svc.Subscribe(func(models.StatusUpdate) {
		states = append(states, svc.State())
		svc.IsInstalled(skateparkAsset)
	})

	_, err := svc.Remove(context.Background(), skateparkAsset)
	require.NoError(t, err)
	assert.Equal(t, []models.InstallState{models.InstallStateRemoving, models.InstallStateFailed}, states)
}

func TestInstallService_CleanupOfMissingDownload(t *testing.T) {
	paths := newTestPaths(t)
	ctrl := gomock.NewController(t)
	assetStore := mock.NewMockAssetStoreAdapter(ctrl)
	maps := mock.NewMockInstaller(ctrl)
	svc, pool := newTestInstallService(paths, assetStore, maps, mock.NewMockInstaller(ctrl), true)

	downloadPath := filepath.Join(paths.downloads, skateparkAsset.AssetName)
	assetStore.EXPECT().DownloadAsset(gomock.Any(), skateparkAsset, downloadPath, gomock.Any()).
		DoAndReturn(downloadZip(t, skateparkPackage))
	maps.EXPECT().InstallFromDownloadedPackage(gomock.Any(), downloadPath, skateparkAsset).
		DoAndReturn(func(context.Context, string, models.Asset) models.Result {
			// the installer consumed the package already
			require.NoError(t, os.Remove(downloadPath))
			return models.Succeeded("Successfully installed Skatepark!")
		})

	results, err := svc.Install(context.Background(), skateparkAsset)
	require.NoError(t, err)
	result := <-results
	pool.Wait()

	assert.True(t, result.Success)
	assert.Equal(t, models.InstallStateDone, svc.State())
}

func TestInstallService_RejectsAssetNamesOutsideDownloads(t *testing.T) {
	tests := []struct {
		name      string
		assetName string
	}{
		{name: "parent traversal", assetName: "../../precious.txt"},
		{name: "nested path", assetName: "maps/skatepark.zip"},
		{name: "absolute path", assetName: "/tmp/precious.txt"},
		{name: "backslash path", assetName: `..\precious.txt`},
		{name: "parent only", assetName: ".."},
		{name: "empty", assetName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := newTestPaths(t)
			ctrl := gomock.NewController(t)
			// no DownloadAsset or installer expectations: nothing may run
			assetStore := mock.NewMockAssetStoreAdapter(ctrl)
			svc, pool := newTestInstallService(paths, assetStore,
				mock.NewMockInstaller(ctrl), mock.NewMockInstaller(ctrl), true)

			precious := filepath.Join(filepath.Dir(filepath.Dir(paths.downloads)), "precious.txt")
			writeFile(t, precious, "keep me")

			asset := skateparkAsset
			asset.AssetName = tt.assetName

			results, err := svc.Install(context.Background(), asset)
			pool.Wait()

			require.ErrorIs(t, err, ErrInvalidAssetName)
			assert.Nil(t, results)
			assert.False(t, svc.Busy())
			assert.Equal(t, models.InstallStateIdle, svc.State())
			assert.FileExists(t, precious)
		})
	}
}
