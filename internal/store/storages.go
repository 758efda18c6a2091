package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-app-info/internal/config"
	"github.com/MKhiriev/go-app-info/internal/logger"
)

type Storages struct {
	SettingsRepository SettingsRepository

	db *DB
}

// NewStorages connects to the database named by cfg, applies pending
// migrations and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting settings database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		SettingsRepository: NewSettingsRepository(db, log),
		db:                 db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
