package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-csv-keeper/internal/config"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
)

type Storages struct {
	ChannelRepository ChannelRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// wires the repositories. Close releases the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &Storages{
		ChannelRepository: NewChannelRepository(db, log),
		db:                db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
