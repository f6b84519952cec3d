// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TextureMetadata describes one installed texture or cosmetic pack.
type TextureMetadata struct {
	// AssetName is the identity of the entry inside the registry.
	AssetName string   `json:"assetName"`
	Name      string   `json:"name"`
	Category  Category `json:"category,omitempty"`
	FilePaths []string `json:"filePaths"`
}

// HasFilePaths reports whether the file set of the pack is known.
func (t TextureMetadata) HasFilePaths() bool {
	return len(t.FilePaths) > 0
}

// InstalledTextures is the singleton registry of installed texture packs.
// It holds at most one entry per AssetName.
type InstalledTextures struct {
	InstalledTextures []TextureMetadata `json:"installedTextures"`
}

// Replace upserts entry by AssetName.
func (r *InstalledTextures) Replace(entry TextureMetadata) {
	for i := range r.InstalledTextures {
		if r.InstalledTextures[i].AssetName == entry.AssetName {
			r.InstalledTextures[i] = entry
			return
		}
	}
	r.InstalledTextures = append(r.InstalledTextures, entry)
}

// Remove deletes the entry with the same AssetName, if present.
func (r *InstalledTextures) Remove(entry TextureMetadata) {
	kept := r.InstalledTextures[:0]
	for _, t := range r.InstalledTextures {
		if t.AssetName != entry.AssetName {
			kept = append(kept, t)
		}
	}
	r.InstalledTextures = kept
}

// Find returns the entry registered for assetName.
func (r InstalledTextures) Find(assetName string) (TextureMetadata, bool) {
	for _, t := range r.InstalledTextures {
		if t.AssetName == assetName {
			return t, true
		}
	}
	return TextureMetadata{}, false
}
