package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-mod-manager/internal/content"
	"github.com/MKhiriev/go-mod-manager/models"
)

func (s *metadataFileStorage) texturesPath() string {
	return filepath.Join(s.metaDir, InstalledTexturesFileName)
}

// LoadTextures reads the registry. An absent or malformed file yields an
// empty registry.
func (s *metadataFileStorage) LoadTextures() models.InstalledTextures {
	var registry models.InstalledTextures

	data, err := os.ReadFile(s.texturesPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Err(err).Str("func", "metadataFileStorage.LoadTextures").Msg("failed to read texture registry")
		}
		return registry
	}

	if err = json.Unmarshal(data, &registry); err != nil {
		s.logger.Err(err).Str("func", "metadataFileStorage.LoadTextures").Msg("malformed texture registry")
		return models.InstalledTextures{}
	}

	return registry
}

// UpsertTexture adds entry or replaces the one with the same asset name.
func (s *metadataFileStorage) UpsertTexture(entry models.TextureMetadata) error {
	registry := s.LoadTextures()
	registry.Replace(entry)
	if err := s.writeJSON(s.texturesPath(), registry); err != nil {
		return fmt.Errorf("failed to save texture %s: %w", entry.AssetName, err)
	}
	return nil
}

// DeleteTexture removes entry from the registry without touching files.
func (s *metadataFileStorage) DeleteTexture(entry models.TextureMetadata) error {
	registry := s.LoadTextures()
	registry.Remove(entry)
	if err := s.writeJSON(s.texturesPath(), registry); err != nil {
		return fmt.Errorf("failed to remove texture %s: %w", entry.AssetName, err)
	}
	return nil
}

// DeleteTextureFiles removes the files of entry and then its registry entry.
// Nothing is touched when the file list is unknown.
func (s *metadataFileStorage) DeleteTextureFiles(entry models.TextureMetadata) models.Result {
	if !entry.HasFilePaths() {
		return models.Failed(fmt.Sprintf("List of files to delete is unknown for %s.", entry.Name))
	}

	if err := content.DeleteFiles(entry.FilePaths); err != nil {
		s.logger.Err(err).
			Str("func", "metadataFileStorage.DeleteTextureFiles").
			Str("asset", entry.AssetName).
			Msg("failed to delete texture files")
		return models.Failed(fmt.Sprintf("Failed to delete files: %v", err))
	}
	content.RemoveEmptyParents(entry.FilePaths, s.contentRoot)

	if err := s.DeleteTexture(entry); err != nil {
		return models.Failed(fmt.Sprintf("Failed to delete files: %v", err))
	}

	return models.Succeeded(fmt.Sprintf("%s has been deleted!", entry.Name))
}

// FindTexture returns the registry entry for assetName.
func (s *metadataFileStorage) FindTexture(assetName string) (models.TextureMetadata, bool) {
	return s.LoadTextures().Find(assetName)
}
