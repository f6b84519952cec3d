package store

import (
	"context"

	"github.com/MKhiriev/go-mod-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MetadataStorage persists per-item metadata records and the installed
// texture registry. Read failures never escape: missing or malformed files
// are reported as not found and logged.
type MetadataStorage interface {
	Load(key models.MetadataKey) (models.ContentMetadata, bool)
	LoadFile(path string) (models.ContentMetadata, bool)
	Save(record models.ContentMetadata) error
	ListAll() []models.ContentMetadata
	FindByAsset(assetName string) (models.ContentMetadata, bool)
	DeleteItem(record models.ContentMetadata) models.Result

	LoadTextures() models.InstalledTextures
	UpsertTexture(entry models.TextureMetadata) error
	DeleteTexture(entry models.TextureMetadata) error
	DeleteTextureFiles(entry models.TextureMetadata) models.Result
	FindTexture(assetName string) (models.TextureMetadata, bool)
}

// SettingsRepository is a small key-value store for remembered user
// preferences such as the last uploader name.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
