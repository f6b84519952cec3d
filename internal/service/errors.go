package service

import "errors"

var (
	// ErrPipelineBusy is returned when an operation is requested while the
	// pipeline is still running another one.
	ErrPipelineBusy = errors.New("another operation is in progress")

	// ErrInvalidAssetName is returned when a catalog entry names its payload
	// with anything but a plain file name.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrNoValidMap is returned when a package or folder holds no valid map.
	ErrNoValidMap = errors.New("no valid map found")

	// ErrImportOverlapsContent is returned when a folder to import is the
	// content folder itself or nested with it.
	ErrImportOverlapsContent = errors.New("folder overlaps the content folder")

	// ErrThumbnailUnavailable is returned when a preview image cannot be
	// fetched.
	ErrThumbnailUnavailable = errors.New("failed to get preview image")
)
