// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Asset is a catalog entry fetched from the remote asset store.
// It is never mutated after it has been fetched.
type Asset struct {
	// AssetName is the name of the payload file in the store. It doubles
	// as the download reference and as the identity of the entry.
	AssetName   string   `json:"assetName"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Thumbnail   string   `json:"thumbnail"`
	Category    Category `json:"category"`
}

// InstallLabel is the caption for the install action of the asset.
func (a Asset) InstallLabel() string {
	return "Install " + a.Category.Label()
}

// RemoveLabel is the caption for the remove action of the asset.
func (a Asset) RemoveLabel() string {
	return "Remove " + a.Category.Label()
}

// UploadRequest holds the user input of an asset upload.
type UploadRequest struct {
	Name            string
	Author          string
	Description     string
	Category        string
	PathToFile      string
	PathToThumbnail string
}
