// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// source-independent invariants.
//
// Currently a no-op placeholder; client-specific rules live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Paths.ContentRoot == "" || !filepath.IsAbs(cfg.Paths.ContentRoot) {
		return ErrInvalidPathConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PoolSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
