package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-mod-manager/internal/app"
	"github.com/MKhiriev/go-mod-manager/internal/content"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/models"
)

// stagingFolderName is the folder below the downloads folder that packages
// are extracted into before they are copied into the content folder.
const stagingFolderName = "extracted"

// mapInstaller unpacks a downloaded map package and imports it into the
// content folder.
type mapInstaller struct {
	metadata    *metadataService
	stagingRoot string
}

func newMapInstaller(metadata *metadataService, downloadsDir string) *mapInstaller {
	return &mapInstaller{
		metadata:    metadata,
		stagingRoot: filepath.Join(downloadsDir, stagingFolderName),
	}
}

// InstallFromDownloadedPackage implements [Installer]. A previous install of
// the same package is overwritten, keeping the custom name and hidden flag.
func (i *mapInstaller) InstallFromDownloadedPackage(ctx context.Context, sourcePath string, asset models.Asset) models.Result {
	log := logger.FromContext(ctx)

	staging, err := prepareStaging(i.stagingRoot, sourcePath)
	if err != nil {
		log.Err(err).Str("func", "mapInstaller.InstallFromDownloadedPackage").Msg("failed to prepare staging folder")
		return models.Failed(fmt.Sprintf(app.MsgInstallFailedFmt, asset.Name, err))
	}
	defer removeStaging(ctx, staging)

	if _, err = content.ExtractZip(sourcePath, staging); err != nil {
		log.Err(err).
			Str("func", "mapInstaller.InstallFromDownloadedPackage").
			Str("package", sourcePath).
			Msg("failed to extract map package")
		return models.Failed(fmt.Sprintf(app.MsgInstallFailedFmt, asset.Name, err))
	}

	result := i.metadata.importFolder(ctx, staging, sourcePath, asset.AssetName)
	if !result.Success {
		return models.Failed(fmt.Sprintf(app.MsgInstallFailedFmt, asset.Name, result.Message))
	}

	return models.Succeeded(fmt.Sprintf(app.MsgInstalledFmt, asset.Name))
}

// prepareStaging returns an empty folder below root named after the package.
func prepareStaging(root, sourcePath string) (string, error) {
	base := filepath.Base(sourcePath)
	staging := filepath.Join(root, strings.TrimSuffix(base, filepath.Ext(base)))

	if err := os.RemoveAll(staging); err != nil {
		return "", fmt.Errorf("clear staging folder %s: %w", staging, err)
	}
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return "", fmt.Errorf("create staging folder %s: %w", staging, err)
	}
	return staging, nil
}

func removeStaging(ctx context.Context, staging string) {
	if err := os.RemoveAll(staging); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "removeStaging").
			Str("folder", staging).
			Msg("failed to remove staging folder")
	}
}
