// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote asset store.
//
// The primary abstraction is [AssetStoreAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAssetStoreAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mod-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AssetStoreAdapter talks to the remote asset store. Implementations do not
// retry; a failed transfer is reported to the caller as is.
type AssetStoreAdapter interface {
	// Authenticate exchanges the uploader credentials stored in the json file
	// at credentialsPath for a bearer token used by UploadAsset.
	Authenticate(ctx context.Context, credentialsPath string) error

	// IsAuthenticated reports whether a bearer token is held and has not
	// expired.
	IsAuthenticated() bool

	// ListAssets returns the catalog entries of one category.
	ListAssets(ctx context.Context, category models.Category) ([]models.Asset, error)

	// DownloadAsset streams the package of asset into the file dest,
	// reporting progress along the way. A partially written file is removed
	// on failure.
	DownloadAsset(ctx context.Context, asset models.Asset, dest string, onProgress models.ProgressFunc) error

	// DownloadThumbnail stores the preview image of asset at dest.
	DownloadThumbnail(ctx context.Context, asset models.Asset, dest string, onProgress models.ProgressFunc) error

	// UploadAsset uploads the manifest, the thumbnail and the payload file in
	// that order, each with its own progress callback taken from progress by
	// position. Missing callbacks are ignored.
	UploadAsset(ctx context.Context, manifestPath, thumbnailPath, payloadPath string, progress []models.ProgressFunc) error
}
