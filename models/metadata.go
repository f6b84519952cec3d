// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"path/filepath"
)

// MetadataFileSuffix is the suffix shared by every per-item metadata file.
const MetadataFileSuffix = "_meta.json"

// ContentMetadata is the persisted record of one installed content item
// (a map imported into the Content tree).
type ContentMetadata struct {
	// ItemName is the stable identity of the item, derived from the name of
	// its primary content file without extension.
	ItemName string `json:"itemName"`

	// AssetName links the record to the catalog entry it was installed
	// from. Empty for items imported from disk.
	AssetName string `json:"assetName,omitempty"`

	// CustomName is the user-editable display name.
	CustomName string `json:"customName"`

	// IsHiddenByUser hides the item from the in-game map list.
	IsHiddenByUser bool `json:"isHiddenByUser"`

	// OriginalImportPath is the folder the item was imported from, used for
	// re-import. Empty if unknown.
	OriginalImportPath string `json:"originalImportPath"`

	// ContentDirectory is the absolute path of the directory, inside the
	// Content tree, that holds the primary content file.
	ContentDirectory string `json:"contentDirectory"`

	// FilePaths lists every absolute Content-tree path that belongs to the
	// item. An empty list means the file set is unknown and blocks deletion.
	FilePaths []string `json:"filePaths"`
}

// MetadataKey identifies a metadata record on disk.
type MetadataKey struct {
	// DirectoryName is the leaf folder name of ContentDirectory.
	DirectoryName string
	ItemName      string
}

// FileName returns the metadata file name for the key.
func (k MetadataKey) FileName() string {
	return fmt.Sprintf("%s_%s%s", k.DirectoryName, k.ItemName, MetadataFileSuffix)
}

// Key returns the on-disk identity of the record.
func (m ContentMetadata) Key() MetadataKey {
	return MetadataKey{
		DirectoryName: filepath.Base(filepath.Clean(m.ContentDirectory)),
		ItemName:      m.ItemName,
	}
}

// FileName returns the name of the json file the record is saved as.
func (m ContentMetadata) FileName() string {
	return m.Key().FileName()
}

// HasFilePaths reports whether the file set of the item is known.
func (m ContentMetadata) HasFilePaths() bool {
	return len(m.FilePaths) > 0
}

// DisplayName returns CustomName when set, otherwise ItemName.
func (m ContentMetadata) DisplayName() string {
	if m.CustomName != "" {
		return m.CustomName
	}
	return m.ItemName
}
