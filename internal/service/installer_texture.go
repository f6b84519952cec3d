package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-mod-manager/internal/app"
	"github.com/MKhiriev/go-mod-manager/internal/content"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/store"
	"github.com/MKhiriev/go-mod-manager/models"
)

// textureInstaller unpacks a downloaded texture or cosmetic pack into the
// content folder and records the written files in the texture registry.
type textureInstaller struct {
	storage     store.MetadataStorage
	contentRoot string
	stagingRoot string
}

func newTextureInstaller(storage store.MetadataStorage, contentRoot, downloadsDir string) *textureInstaller {
	return &textureInstaller{
		storage:     storage,
		contentRoot: contentRoot,
		stagingRoot: filepath.Join(downloadsDir, stagingFolderName),
	}
}

// InstallFromDownloadedPackage implements [Installer].
func (i *textureInstaller) InstallFromDownloadedPackage(ctx context.Context, sourcePath string, asset models.Asset) models.Result {
	log := logger.FromContext(ctx)

	staging, err := prepareStaging(i.stagingRoot, sourcePath)
	if err != nil {
		log.Err(err).Str("func", "textureInstaller.InstallFromDownloadedPackage").Msg("failed to prepare staging folder")
		return models.Failed(fmt.Sprintf(app.MsgInstallFailedFmt, asset.Name, err))
	}
	defer removeStaging(ctx, staging)

	if _, err = content.ExtractZip(sourcePath, staging); err != nil {
		log.Err(err).
			Str("func", "textureInstaller.InstallFromDownloadedPackage").
			Str("package", sourcePath).
			Msg("failed to extract texture package")
		return models.Failed(fmt.Sprintf(app.MsgInstallFailedFmt, asset.Name, err))
	}

	written, err := content.CopyTree(staging, i.contentRoot)
	if err != nil {
		log.Err(err).
			Str("func", "textureInstaller.InstallFromDownloadedPackage").
			Str("package", sourcePath).
			Msg("failed to copy texture files")
		return models.Failed(fmt.Sprintf(app.MsgInstallFailedFmt, asset.Name, err))
	}

	entry := models.TextureMetadata{
		AssetName: asset.AssetName,
		Name:      asset.Name,
		Category:  asset.Category,
		FilePaths: written,
	}
	if err = i.storage.UpsertTexture(entry); err != nil {
		return models.Failed(fmt.Sprintf(app.MsgInstallFailedFmt, asset.Name, err))
	}

	return models.Succeeded(fmt.Sprintf(app.MsgInstalledFmt, asset.Name))
}
