package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/metrics"
	"github.com/MKhiriev/go-mod-manager/internal/mock"
	"github.com/MKhiriev/go-mod-manager/internal/store"
	"github.com/MKhiriev/go-mod-manager/internal/validators"
	"github.com/MKhiriev/go-mod-manager/internal/workers"
	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type uploadFixture struct {
	svc        UploadService
	pool       *workers.Pool
	assetStore *mock.MockAssetStoreAdapter
	settings   *mock.MockSettingsRepository
	tempDir    string
	req        models.UploadRequest
}

func newUploadFixture(t *testing.T) *uploadFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	f := &uploadFixture{
		pool:       workers.NewPool(1, logger.Nop()),
		assetStore: mock.NewMockAssetStoreAdapter(ctrl),
		settings:   mock.NewMockSettingsRepository(ctrl),
		tempDir:    filepath.Join(dir, "temp_downloads"),
		req: models.UploadRequest{
			Name:            "Skatepark",
			Author:          "rasul",
			Category:        "Maps",
			PathToFile:      filepath.Join(dir, "skatepark.zip"),
			PathToThumbnail: filepath.Join(dir, "skatepark.png"),
		},
	}
	writeFile(t, f.req.PathToFile, "zip")
	writeFile(t, f.req.PathToThumbnail, "png")

	f.svc = NewUploadService(f.assetStore, f.settings, validators.NewUploadRequestValidator(), f.pool, metrics.Nop(), f.tempDir,
		filepath.Join(dir, "credentials.json"), logger.Nop())
	return f
}

func TestUploadService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(req *models.UploadRequest)
		message string
	}{
		{
			name: "missing file checked first",
			modify: func(req *models.UploadRequest) {
				req.PathToFile = "/nope/asset.zip"
				req.PathToThumbnail = "/nope/thumb.png"
				req.Name = ""
			},
			message: "File does not exist at /nope/asset.zip.",
		},
		{
			name:    "missing thumbnail",
			modify:  func(req *models.UploadRequest) { req.PathToThumbnail = "/nope/thumb.png"; req.Category = "" },
			message: "Thumbnail does not exist at /nope/thumb.png.",
		},
		{
			name:    "missing category",
			modify:  func(req *models.UploadRequest) { req.Category = ""; req.Name = "" },
			message: "Please select an Asset Category first.",
		},
		{
			name:    "unknown category",
			modify:  func(req *models.UploadRequest) { req.Category = "Boards" },
			message: `Unknown asset category "Boards".`,
		},
		{
			name:    "missing name",
			modify:  func(req *models.UploadRequest) { req.Name = "  "; req.Author = "" },
			message: "Please provide a Name for the asset.",
		},
		{
			name:    "missing author",
			modify:  func(req *models.UploadRequest) { req.Author = "" },
			message: "Please provide an Author for the asset.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUploadFixture(t)
			req := f.req
			tt.modify(&req)

			results, err := f.svc.Upload(context.Background(), req)
			assert.Nil(t, results)

			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
			assert.NoDirExists(t, f.tempDir)
		})
	}
}

func TestUploadService_Upload(t *testing.T) {
	f := newUploadFixture(t)

	f.settings.EXPECT().Set(gomock.Any(), store.SettingUploaderAuthor, "rasul").Return(nil)
	f.assetStore.EXPECT().IsAuthenticated().Return(true)

	manifestPath := filepath.Join(f.tempDir, "skatepark.json")
	f.assetStore.EXPECT().
		UploadAsset(gomock.Any(), manifestPath, f.req.PathToThumbnail, f.req.PathToFile, gomock.Len(3)).
		DoAndReturn(func(_ context.Context, manifest, _, _ string, progress []models.ProgressFunc) error {
			data, err := os.ReadFile(manifest)
			require.NoError(t, err)

			var asset models.Asset
			require.NoError(t, json.Unmarshal(data, &asset))
			assert.Equal(t, models.Asset{
				AssetName:   "skatepark.zip",
				Name:        "Skatepark",
				Description: "Skatepark",
				Author:      "rasul",
				Thumbnail:   "skatepark.png",
				Category:    models.CategoryMaps,
			}, asset)
			assert.Contains(t, string(data), "\n  \"assetName\"")

			progress[0](models.TransferProgress{Status: "Completed", BytesTransferred: 120})
			progress[1](models.TransferProgress{Status: "Uploading", BytesTransferred: 2500})
			progress[2](models.TransferProgress{Status: "Uploading", BytesTransferred: 3_000_000})
			return nil
		})

	recorder := &updateRecorder{}
	f.svc.Subscribe(recorder.listen)

	results, err := f.svc.Upload(context.Background(), f.req)
	require.NoError(t, err)
	result := <-results
	f.pool.Wait()

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "The asset Skatepark has been uploaded successfully! "+
		"You can close this window or leave it open to upload another asset.", result.Message)
	assert.Subset(t, recorder.messages(), []string{
		"Uploading manifest: Completed 120 Bytes ...",
		"Uploading thumbnail: Uploading 2.50 KB ...",
		"Uploading file: Uploading 3.00 MB ...",
	})

	assert.NoFileExists(t, manifestPath)
	assert.FileExists(t, f.req.PathToFile)
	assert.FileExists(t, f.req.PathToThumbnail)
}

func TestUploadService_UploadFailure(t *testing.T) {
	f := newUploadFixture(t)
	f.req.Description = "A park"

	f.settings.EXPECT().Set(gomock.Any(), store.SettingUploaderAuthor, "rasul").Return(errors.New("db locked"))
	f.assetStore.EXPECT().IsAuthenticated().Return(true)
	f.assetStore.EXPECT().UploadAsset(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	results, err := f.svc.Upload(context.Background(), f.req)
	require.NoError(t, err)
	result := <-results
	f.pool.Wait()

	assert.False(t, result.Success)
	assert.Equal(t, "An error occurred while uploading the files: connection reset", result.Message)
	assert.NoFileExists(t, filepath.Join(f.tempDir, "skatepark.json"))
	assert.FileExists(t, f.req.PathToFile)
}

func TestUploadService_AuthenticatesBeforeUpload(t *testing.T) {
	f := newUploadFixture(t)
	credentials := filepath.Join(t.TempDir(), "creds.json")
	writeFile(t, credentials, `{"user":"u"}`)

	f.settings.EXPECT().Set(gomock.Any(), store.SettingUploaderAuthor, "rasul").Return(nil)
	f.assetStore.EXPECT().IsAuthenticated().Return(false)
	f.settings.EXPECT().Get(gomock.Any(), store.SettingUploaderCredentials).Return(credentials, true, nil)
	f.settings.EXPECT().Set(gomock.Any(), store.SettingUploaderCredentials, credentials).Return(nil)
	f.assetStore.EXPECT().Authenticate(gomock.Any(), credentials).Return(nil)
	f.assetStore.EXPECT().UploadAsset(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	results, err := f.svc.Upload(context.Background(), f.req)
	require.NoError(t, err)
	result := <-results
	f.pool.Wait()
	assert.True(t, result.Success, result.Message)
}

func TestUploadService_Busy(t *testing.T) {
	f := newUploadFixture(t)

	release := make(chan struct{})
	f.settings.EXPECT().Set(gomock.Any(), store.SettingUploaderAuthor, "rasul").Return(nil)
	f.assetStore.EXPECT().IsAuthenticated().Return(true)
	f.assetStore.EXPECT().UploadAsset(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, string, []models.ProgressFunc) error {
			<-release
			return nil
		})

	results, err := f.svc.Upload(context.Background(), f.req)
	require.NoError(t, err)

	_, err = f.svc.Upload(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrPipelineBusy)

	close(release)
	<-results
	f.pool.Wait()
}

func TestUploadService_Authenticate(t *testing.T) {
	t.Run("missing credentials file", func(t *testing.T) {
		f := newUploadFixture(t)
		f.settings.EXPECT().Get(gomock.Any(), store.SettingUploaderCredentials).Return("", false, nil)

		result := f.svc.Authenticate(context.Background(), "")
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "Failed to authenticate to asset store: ")
		assert.Contains(t, result.Message, "credentials.json does not exist.")
	})

	t.Run("store rejects credentials", func(t *testing.T) {
		f := newUploadFixture(t)
		credentials := filepath.Join(t.TempDir(), "creds.json")
		writeFile(t, credentials, "{}")

		f.settings.EXPECT().Set(gomock.Any(), store.SettingUploaderCredentials, credentials).Return(nil)
		f.assetStore.EXPECT().Authenticate(gomock.Any(), credentials).Return(errors.New("invalid credentials"))

		result := f.svc.Authenticate(context.Background(), credentials)
		assert.False(t, result.Success)
		assert.Equal(t, "Failed to authenticate to asset store: invalid credentials", result.Message)
	})

	t.Run("success", func(t *testing.T) {
		f := newUploadFixture(t)
		credentials := filepath.Join(t.TempDir(), "creds.json")
		writeFile(t, credentials, "{}")

		f.settings.EXPECT().Set(gomock.Any(), store.SettingUploaderCredentials, credentials).Return(nil)
		f.assetStore.EXPECT().Authenticate(gomock.Any(), credentials).Return(nil)

		assert.True(t, f.svc.Authenticate(context.Background(), credentials).Success)
	})
}

func TestUploadService_DefaultAuthor(t *testing.T) {
	f := newUploadFixture(t)

	gomock.InOrder(
		f.settings.EXPECT().Get(gomock.Any(), store.SettingUploaderAuthor).Return("rasul", true, nil),
		f.settings.EXPECT().Get(gomock.Any(), store.SettingUploaderAuthor).Return("", false, assert.AnError),
	)

	assert.Equal(t, "rasul", f.svc.DefaultAuthor(context.Background()))
	assert.Empty(t, f.svc.DefaultAuthor(context.Background()))
}
