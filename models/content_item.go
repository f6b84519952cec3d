package models

import (
	"path/filepath"
	"strings"
)

// ContentItem is a primary content file found on disk (a .umap for maps)
// together with the user-editable properties shown for it.
type ContentItem struct {
	// FullPath is the absolute path to the primary file.
	FullPath string
	// Name is the file name without extension.
	Name string
	// IsValid is set by a validator.
	IsValid bool

	CustomName     string
	IsHiddenByUser bool
}

// NewContentItem builds an item from the path of its primary file.
func NewContentItem(fullPath string) ContentItem {
	base := filepath.Base(fullPath)
	return ContentItem{
		FullPath: fullPath,
		Name:     strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// DirectoryPath returns the directory holding the primary file.
func (c ContentItem) DirectoryPath() string {
	return filepath.Dir(c.FullPath)
}

// Key returns the identity of the metadata record describing the item.
func (c ContentItem) Key() MetadataKey {
	return MetadataKey{
		DirectoryName: filepath.Base(c.DirectoryPath()),
		ItemName:      c.Name,
	}
}

// DisplayName returns CustomName when set, otherwise Name.
func (c ContentItem) DisplayName() string {
	if c.CustomName != "" {
		return c.CustomName
	}
	return c.Name
}
