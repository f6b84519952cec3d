package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mod-manager/internal/app"
	"github.com/MKhiriev/go-mod-manager/internal/content"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/store"
	"github.com/MKhiriev/go-mod-manager/models"
)

type metadataService struct {
	storage     store.MetadataStorage
	scanner     *content.Scanner
	contentRoot string
	logger      *logger.Logger
}

// NewMetadataService constructs a [MetadataService] for the content folder
// contentRoot.
func NewMetadataService(storage store.MetadataStorage, scanner *content.Scanner, contentRoot string, logger *logger.Logger) MetadataService {
	return &metadataService{
		storage:     storage,
		scanner:     scanner,
		contentRoot: contentRoot,
		logger:      logger,
	}
}

// CreateFromFolder implements [MetadataService].
func (m *metadataService) CreateFromFolder(sourceFolder string, findFiles bool) (models.ContentMetadata, bool) {
	item, ok := m.scanner.FindFirst(sourceFolder, true)
	if !ok {
		return models.ContentMetadata{}, false
	}

	record := models.ContentMetadata{
		ItemName:         item.Name,
		ContentDirectory: content.Remap(sourceFolder, item.DirectoryPath(), m.contentRoot),
		FilePaths:        []string{},
	}

	if findFiles {
		files, err := content.ListFiles(sourceFolder)
		if err != nil {
			m.logger.Err(err).
				Str("func", "metadataService.CreateFromFolder").
				Str("folder", sourceFolder).
				Msg("failed to list map files")
			return record, true
		}
		record.FilePaths = content.RemapAll(sourceFolder, files, m.contentRoot)
	}

	return record, true
}

// CreateFromItem implements [MetadataService].
func (m *metadataService) CreateFromItem(item models.ContentItem) models.ContentMetadata {
	return models.ContentMetadata{
		ItemName:         item.Name,
		CustomName:       item.CustomName,
		IsHiddenByUser:   item.IsHiddenByUser,
		ContentDirectory: item.DirectoryPath(),
		FilePaths:        []string{},
	}
}

// ApplyCustomProperties implements [MetadataService].
func (m *metadataService) ApplyCustomProperties(items []models.ContentItem, createIfMissing bool) []models.ContentItem {
	out := make([]models.ContentItem, len(items))
	copy(out, items)

	for i, item := range out {
		record, ok := m.storage.Load(item.Key())
		if !ok {
			if !createIfMissing {
				continue
			}
			record = m.CreateFromItem(item)
			if err := m.storage.Save(record); err != nil {
				m.logger.Err(err).
					Str("func", "metadataService.ApplyCustomProperties").
					Str("item", item.Name).
					Msg("failed to create metadata")
			}
		}

		out[i].CustomName = record.CustomName
		out[i].IsHiddenByUser = record.IsHiddenByUser
	}

	return out
}

// WriteCustomProperties implements [MetadataService].
func (m *metadataService) WriteCustomProperties(items []models.ContentItem) error {
	var errs []error

	for _, item := range items {
		record, ok := m.storage.Load(item.Key())
		if !ok {
			continue
		}

		record.CustomName = item.CustomName
		record.IsHiddenByUser = item.IsHiddenByUser
		if err := m.storage.Save(record); err != nil {
			errs = append(errs, fmt.Errorf("save properties of %s: %w", item.Name, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		m.logger.Err(err).Str("func", "metadataService.WriteCustomProperties").Msg("failed to write custom map properties")
		return err
	}
	return nil
}

// OriginalImportLocation implements [MetadataService].
func (m *metadataService) OriginalImportLocation(item models.ContentItem) string {
	record, ok := m.storage.Load(item.Key())
	if !ok {
		return ""
	}
	return record.OriginalImportPath
}

// IsImportLocationStored implements [MetadataService].
func (m *metadataService) IsImportLocationStored(item models.ContentItem) bool {
	return m.OriginalImportLocation(item) != ""
}

// HasFilePathsStored implements [MetadataService].
func (m *metadataService) HasFilePathsStored(item models.ContentItem) bool {
	record, ok := m.storage.Load(item.Key())
	return ok && record.HasFilePaths()
}

// ListInstalled implements [MetadataService].
func (m *metadataService) ListInstalled() []models.ContentMetadata {
	return m.storage.ListAll()
}

// ImportFolder implements [MetadataService]. Custom properties of a
// previous import of the same map are kept.
func (m *metadataService) ImportFolder(ctx context.Context, sourceFolder string) models.Result {
	return m.importFolder(ctx, sourceFolder, sourceFolder, "")
}

// importFolder copies the map under sourceFolder into the content folder
// and saves its record with importPath and assetName.
func (m *metadataService) importFolder(ctx context.Context, sourceFolder, importPath, assetName string) models.Result {
	log := logger.FromContext(ctx)

	if content.Overlaps(sourceFolder, m.contentRoot) {
		log.Warn().
			Str("func", "metadataService.importFolder").
			Str("folder", sourceFolder).
			Msg("refusing to import a folder nested with the content folder")
		return models.Failed(fmt.Sprintf(app.MsgImportNoMapFmt, ErrImportOverlapsContent, sourceFolder))
	}

	record, ok := m.CreateFromFolder(sourceFolder, true)
	if !ok {
		return models.Failed(fmt.Sprintf(app.MsgImportNoMapFmt, ErrNoValidMap, sourceFolder))
	}

	if _, err := content.CopyTree(sourceFolder, m.contentRoot); err != nil {
		log.Err(err).
			Str("func", "metadataService.importFolder").
			Str("folder", sourceFolder).
			Msg("failed to copy map files")
		return models.Failed(fmt.Sprintf(app.MsgImportCopyFailedFmt, err))
	}

	if existing, found := m.storage.Load(record.Key()); found {
		record.CustomName = existing.CustomName
		record.IsHiddenByUser = existing.IsHiddenByUser
	}
	record.OriginalImportPath = importPath
	record.AssetName = assetName

	if err := m.storage.Save(record); err != nil {
		return models.Failed(fmt.Sprintf(app.MsgImportSaveFailedFmt, record.ItemName, err))
	}

	return models.Succeeded(fmt.Sprintf(app.MsgImportedFmt, record.ItemName))
}
