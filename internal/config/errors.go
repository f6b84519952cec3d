package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPathConfigs indicates missing or relative folder settings
	// (for example, an empty content root).
	ErrInvalidPathConfigs = errors.New("invalid paths configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing asset store address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative pool size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
