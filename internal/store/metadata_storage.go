package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/go-mod-manager/internal/content"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/models"
)

// InstalledTexturesFileName is the registry file of installed texture packs
// inside the metadata folder.
const InstalledTexturesFileName = "installed_textures.json"

// metadataFileStorage is the default [MetadataStorage]: one indented json
// file per record in metaDir plus the texture registry file next to them.
type metadataFileStorage struct {
	metaDir     string
	contentRoot string
	logger      *logger.Logger
}

// NewMetadataFileStorage constructs a file-backed [MetadataStorage].
//
// Parameters:
//   - contentRoot: the Content tree. Emptied folders below it are removed
//     after deletions; contentRoot itself is never removed.
//   - metaDir: the folder holding the json records.
//   - log: logger for read failures that are not propagated.
func NewMetadataFileStorage(contentRoot, metaDir string, log *logger.Logger) MetadataStorage {
	return &metadataFileStorage{
		metaDir:     metaDir,
		contentRoot: contentRoot,
		logger:      log,
	}
}

func (s *metadataFileStorage) recordPath(key models.MetadataKey) string {
	return filepath.Join(s.metaDir, key.FileName())
}

// Load returns the record stored under key.
func (s *metadataFileStorage) Load(key models.MetadataKey) (models.ContentMetadata, bool) {
	return s.LoadFile(s.recordPath(key))
}

// LoadFile reads and decodes the record at path. A missing file is reported
// at debug level, a malformed one at error level; both yield not found.
func (s *metadataFileStorage) LoadFile(path string) (models.ContentMetadata, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		ev := s.logger.Err(err)
		if errors.Is(err, fs.ErrNotExist) {
			ev = s.logger.Debug().Err(err)
		}
		ev.Str("func", "metadataFileStorage.LoadFile").
			Str("path", path).
			Msg("metadata file could not be read")
		return models.ContentMetadata{}, false
	}

	var record models.ContentMetadata
	if err = json.Unmarshal(data, &record); err != nil {
		s.logger.Err(err).
			Str("func", "metadataFileStorage.LoadFile").
			Str("path", path).
			Msg("malformed metadata file")
		return models.ContentMetadata{}, false
	}

	return record, true
}

// Save writes record, replacing any record with the same identity.
func (s *metadataFileStorage) Save(record models.ContentMetadata) error {
	if record.ItemName == "" {
		return ErrEmptyItemName
	}
	return s.writeJSON(s.recordPath(record.Key()), record)
}

func (s *metadataFileStorage) writeJSON(path string, v any) error {
	if err := os.MkdirAll(s.metaDir, 0o755); err != nil {
		s.logger.Err(err).Str("func", "metadataFileStorage.writeJSON").Msg("failed to create metadata folder")
		return fmt.Errorf("%w: %w", ErrCreatingMetadataFolder, err)
	}

	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingMetadata, err)
	}

	if err = os.WriteFile(path, payload, 0o644); err != nil {
		s.logger.Err(err).
			Str("func", "metadataFileStorage.writeJSON").
			Str("path", path).
			Msg("failed to write metadata file")
		return fmt.Errorf("%w: %w", ErrWritingMetadata, err)
	}

	return nil
}

// ListAll returns every readable record in the metadata folder, ordered by
// file name. Unreadable files are skipped.
func (s *metadataFileStorage) ListAll() []models.ContentMetadata {
	paths, err := filepath.Glob(filepath.Join(s.metaDir, "*"+models.MetadataFileSuffix))
	if err != nil {
		s.logger.Err(err).Str("func", "metadataFileStorage.ListAll").Msg("failed to list metadata files")
		return nil
	}
	sort.Strings(paths)

	records := make([]models.ContentMetadata, 0, len(paths))
	for _, p := range paths {
		if record, ok := s.LoadFile(p); ok {
			records = append(records, record)
		}
	}

	return records
}

// FindByAsset returns the record installed from the catalog entry assetName.
func (s *metadataFileStorage) FindByAsset(assetName string) (models.ContentMetadata, bool) {
	if assetName == "" {
		return models.ContentMetadata{}, false
	}
	for _, record := range s.ListAll() {
		if record.AssetName == assetName {
			return record, true
		}
	}
	return models.ContentMetadata{}, false
}

// DeleteItem removes the files listed in record and then the record itself.
// Nothing is touched when the file list is unknown.
func (s *metadataFileStorage) DeleteItem(record models.ContentMetadata) models.Result {
	if !record.HasFilePaths() {
		return models.Failed(fmt.Sprintf(
			"List of files to delete is unknown for %s. You must manually delete the map files from the following folder: %s",
			record.ItemName, record.ContentDirectory))
	}

	if err := content.DeleteFiles(record.FilePaths); err != nil {
		s.logger.Err(err).
			Str("func", "metadataFileStorage.DeleteItem").
			Str("item", record.ItemName).
			Msg("failed to delete item files")
		return models.Failed(fmt.Sprintf("Failed to delete files: %v", err))
	}
	content.RemoveEmptyParents(record.FilePaths, s.contentRoot)

	if err := os.Remove(s.recordPath(record.Key())); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Err(err).
			Str("func", "metadataFileStorage.DeleteItem").
			Str("item", record.ItemName).
			Msg("failed to delete metadata file")
		return models.Failed(fmt.Sprintf("Failed to delete files: %v", fmt.Errorf("%w: %w", ErrRemovingMetadata, err)))
	}

	return models.Succeeded(fmt.Sprintf("%s has been deleted!", record.ItemName))
}
