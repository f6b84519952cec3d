package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mod-manager/internal/config"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
)

// Storages groups every client storage into a single value passed to the
// service layer.
type Storages struct {
	Metadata MetadataStorage
	Settings SettingsRepository

	db *DB
}

// NewStorages opens the settings database, runs migrations and wires the
// file-backed metadata storage.
func NewStorages(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Metadata: NewMetadataFileStorage(cfg.Paths.ContentRoot, cfg.Paths.MetadataDir, logger),
		Settings: NewSettingsRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
