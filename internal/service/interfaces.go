// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the install, remove, catalog and upload
// pipelines on top of the store and adapter layers.
package service

import (
	"context"

	"github.com/MKhiriev/go-mod-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Installer installs a downloaded package of one content kind.
type Installer interface {
	// InstallFromDownloadedPackage installs the package at sourcePath that was
	// downloaded for asset. Running it again for the same source must leave a
	// consistent install behind.
	InstallFromDownloadedPackage(ctx context.Context, sourcePath string, asset models.Asset) models.Result
}

// InstallService drives "download → install → clean up" and removal of
// installed assets. At most one install or remove runs at a time.
type InstallService interface {
	// Install starts the pipeline for asset in the background. The returned
	// channel receives exactly one result and is then closed. Returns
	// [ErrPipelineBusy] if another install or remove is in flight.
	Install(ctx context.Context, asset models.Asset) (<-chan models.Result, error)

	// Remove deletes the files and metadata of an installed asset. Returns
	// [ErrPipelineBusy] if another install or remove is in flight.
	Remove(ctx context.Context, asset models.Asset) (models.Result, error)

	// IsInstalled reports whether metadata exists for asset.
	IsInstalled(asset models.Asset) bool

	// State returns the current pipeline state.
	State() models.InstallState

	// Busy reports whether an install or remove is in flight.
	Busy() bool

	// Subscribe registers listener and returns a function removing it.
	Subscribe(listener models.StatusListener) (unsubscribe func())
}

// CatalogService keeps the category selection and the catalog entries
// fetched from the asset store.
type CatalogService interface {
	// Select toggles one category and refreshes the filtered view.
	Select(ctx context.Context, category models.Category, selected bool) error

	// SelectAll toggles every category and refreshes the filtered view.
	SelectAll(ctx context.Context, selected bool) error

	// Selected returns the selected categories in enumeration order.
	Selected() []models.Category

	// RefreshFiltered rebuilds the filtered view from the selected
	// categories, fetching any selected category that is not cached yet.
	RefreshFiltered(ctx context.Context) error

	// Filtered returns a copy of the filtered view.
	Filtered() []models.Asset

	// Find looks up a cached entry by asset name.
	Find(assetName string) (models.Asset, bool)

	// FetchManifests fetches every category in the background. Unless force
	// is set this happens only once; later calls complete immediately.
	FetchManifests(ctx context.Context, force bool) <-chan models.Result

	// Thumbnail returns the local path of the preview image of asset,
	// downloading it on first use.
	Thumbnail(ctx context.Context, asset models.Asset) (string, error)

	// Subscribe registers listener and returns a function removing it.
	Subscribe(listener models.StatusListener) (unsubscribe func())
}

// UploadService validates and uploads new assets to the store.
type UploadService interface {
	// Upload validates req and starts the upload in the background.
	// Validation failures are returned as *[models.ValidationError] before
	// anything is touched.
	Upload(ctx context.Context, req models.UploadRequest) (<-chan models.Result, error)

	// Authenticate logs in with the credentials file at credentialsPath, or
	// with the remembered path when it is empty.
	Authenticate(ctx context.Context, credentialsPath string) models.Result

	// DefaultAuthor returns the remembered author of the last upload.
	DefaultAuthor(ctx context.Context) string

	// Subscribe registers listener and returns a function removing it.
	Subscribe(listener models.StatusListener) (unsubscribe func())
}

// MetadataService builds metadata records and keeps user-editable
// properties of installed maps in sync with them.
type MetadataService interface {
	// CreateFromFolder builds a record for the first valid map found under
	// sourceFolder, with paths re-rooted into the content folder. With
	// findFiles the record lists every file of sourceFolder.
	CreateFromFolder(sourceFolder string, findFiles bool) (models.ContentMetadata, bool)

	// CreateFromItem builds a record for an item already in the content
	// folder. Its file list is unknown.
	CreateFromItem(item models.ContentItem) models.ContentMetadata

	// ApplyCustomProperties copies the saved custom name and hidden flag
	// into items. With createIfMissing a record is created for items
	// without one.
	ApplyCustomProperties(items []models.ContentItem, createIfMissing bool) []models.ContentItem

	// WriteCustomProperties stores the custom name and hidden flag of items
	// into their existing records. Items without a record are skipped.
	WriteCustomProperties(items []models.ContentItem) error

	// OriginalImportLocation returns the folder item was imported from.
	OriginalImportLocation(item models.ContentItem) string

	// IsImportLocationStored reports whether the import folder is known.
	IsImportLocationStored(item models.ContentItem) bool

	// HasFilePathsStored reports whether item can be deleted automatically.
	HasFilePathsStored(item models.ContentItem) bool

	// ListInstalled returns every saved record.
	ListInstalled() []models.ContentMetadata

	// ImportFolder copies the map found under sourceFolder into the content
	// folder and saves its record.
	ImportFolder(ctx context.Context, sourceFolder string) models.Result
}
