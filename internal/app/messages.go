// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// services, the validators and the terminal UI.
//
// Msg* constants are shown verbatim in the status line or in the result of
// an operation. Constants ending in Fmt are fmt format strings; their verbs
// are documented next to each one.
package app

// Install and remove pipeline.
const (
	// MsgDownloadingFmt takes the asset name.
	MsgDownloadingFmt = "Downloading asset: %s ..."
	// MsgDownloadProgressFmt takes the asset name and megabytes received.
	MsgDownloadProgressFmt = "Downloading asset: %s %.2f MB..."
	MsgDownloadFailed      = "Failed to install asset ..."
	// MsgInstallingFmt takes the asset name.
	MsgInstallingFmt = "Installing asset: %s ... "
	// MsgInstallFailedFmt takes the asset name and the failure reason.
	MsgInstallFailedFmt = "Failed to install %s: %v"
	// MsgInstalledFmt takes the asset name.
	MsgInstalledFmt = "Successfully installed %s!"
	// MsgRemovingFmt takes the asset name.
	MsgRemovingFmt         = "Removing %s ..."
	MsgMapMetadataNotFound = "Failed to find meta data to delete map files ..."
	// MsgTextureMetadataNotFoundFmt takes the category label.
	MsgTextureMetadataNotFoundFmt = "Failed to find meta data to delete %s files ..."
)

// Local import.
const (
	// MsgImportNoMapFmt takes the failure reason and the source folder.
	MsgImportNoMapFmt = "Failed to import map: %v in %s"
	// MsgImportCopyFailedFmt takes the copy error.
	MsgImportCopyFailedFmt = "Failed to copy map files: %v"
	// MsgImportSaveFailedFmt takes the item name and the store error.
	MsgImportSaveFailedFmt = "Failed to save meta data for %s: %v"
	// MsgImportedFmt takes the item name.
	MsgImportedFmt = "%s has been imported!"
)

// Catalog browsing.
const (
	MsgFetchingManifests = "Fetching latest asset manifests ..."
	MsgManifestsFailed   = "An error occurred fetching manifests ..."
	MsgManifestsFetched  = "Manifests downloaded ..."
	MsgNoCategory        = "Check categories to view the list of downloadable assets ..."
	MsgPreviewFailed     = "Failed to get preview image."
	// MsgPreviewProgressFmt takes the thumbnail name and kilobytes received.
	MsgPreviewProgressFmt = "fetching preview image: %s %.2f KB..."
)

// Upload and authentication.
const (
	MsgUploading = "Uploading asset ..."
	// MsgUploadManifestFmt takes the manifest name and bytes sent.
	MsgUploadManifestFmt = "Uploading manifest: %s %d Bytes ..."
	// MsgUploadThumbnailFmt takes the thumbnail name and kilobytes sent.
	MsgUploadThumbnailFmt = "Uploading thumbnail: %s %.2f KB ..."
	// MsgUploadFileFmt takes the file name and megabytes sent.
	MsgUploadFileFmt = "Uploading file: %s %.2f MB ..."
	// MsgUploadedFmt takes the asset name.
	MsgUploadedFmt = "The asset %s has been uploaded successfully! " +
		"You can close this window or leave it open to upload another asset."
	// MsgUploadFailedFmt takes the upload error.
	MsgUploadFailedFmt = "An error occurred while uploading the files: %v"
	// MsgCredentialsMissingFmt takes the credentials path.
	MsgCredentialsMissingFmt = "Failed to authenticate to asset store: %s does not exist."
	// MsgAuthenticationFailedFmt takes the adapter error.
	MsgAuthenticationFailedFmt = "Failed to authenticate to asset store: %v"
	MsgAuthenticated           = "Authenticated to asset store."
)

// Upload request validation.
const (
	// MsgFileNotFoundFmt takes the asset file path.
	MsgFileNotFoundFmt = "File does not exist at %s."
	// MsgThumbnailNotFoundFmt takes the thumbnail path.
	MsgThumbnailNotFoundFmt = "Thumbnail does not exist at %s."
	MsgCategoryRequired     = "Please select an Asset Category first."
	// MsgUnknownCategoryFmt takes the category as entered.
	MsgUnknownCategoryFmt = "Unknown asset category %q."
	MsgNameRequired       = "Please provide a Name for the asset."
	MsgAuthorRequired     = "Please provide an Author for the asset."
)
