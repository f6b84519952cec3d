package content

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/models"
)

// MapFileExtension is the extension of a map's primary content file.
const MapFileExtension = ".umap"

// Validator decides whether a discovered content item is usable.
type Validator interface {
	Validate(item models.ContentItem) bool
}

// ValidatorFunc adapts a function to [Validator].
type ValidatorFunc func(item models.ContentItem) bool

// Validate implements [Validator].
func (f ValidatorFunc) Validate(item models.ContentItem) bool {
	return f(item)
}

// BuiltDataSuffix names the lighting data file that accompanies a map.
const BuiltDataSuffix = "_BuiltData.uasset"

// MapValidator accepts a map whose primary file is a non-empty regular file
// or that has a "<name>_BuiltData.uasset" sibling. File contents are not
// inspected.
var MapValidator = ValidatorFunc(func(item models.ContentItem) bool {
	info, err := os.Stat(item.FullPath)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if info.Size() > 0 {
		return true
	}
	_, err = os.Stat(filepath.Join(item.DirectoryPath(), item.Name+BuiltDataSuffix))
	return err == nil
})

// Scanner searches folder trees for primary content files.
type Scanner struct {
	extension string
	validator Validator
	logger    *logger.Logger
}

// NewScanner creates a Scanner matching files with extension (for example
// ".umap") and judging them with validator.
func NewScanner(extension string, validator Validator, log *logger.Logger) *Scanner {
	return &Scanner{
		extension: strings.ToLower(extension),
		validator: validator,
		logger:    log,
	}
}

// NewMapScanner creates a Scanner for map files.
func NewMapScanner(log *logger.Logger) *Scanner {
	return NewScanner(MapFileExtension, MapValidator, log)
}

// FindFirst walks folder depth-first in pre-order and returns the first item
// whose validity equals wantValid. Primary files of a directory are checked
// before its subdirectories; both are visited in name order.
func (s *Scanner) FindFirst(folder string, wantValid bool) (models.ContentItem, bool) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "Scanner.FindFirst").
			Str("folder", folder).
			Msg("failed to read folder")
		return models.ContentItem{}, false
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), s.extension) {
			continue
		}

		item := models.NewContentItem(filepath.Join(folder, entry.Name()))
		item.IsValid = s.validator.Validate(item)
		if item.IsValid == wantValid {
			return item, true
		}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if item, ok := s.FindFirst(filepath.Join(folder, entry.Name()), wantValid); ok {
			return item, true
		}
	}

	return models.ContentItem{}, false
}

// HasValid reports whether any valid item exists under folder.
func (s *Scanner) HasValid(folder string) bool {
	_, ok := s.FindFirst(folder, true)
	return ok
}
