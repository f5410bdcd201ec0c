package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
)

// ClientStorages groups the client-side storage handles that are passed
// around the service layer.
type ClientStorages struct {
	// KV is the namespaced key-value store every local slot lives in.
	KV KeyValueStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN with cfg.DB.Driver,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the [KeyValueStore] over that connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KV: NewKeyValueStore(db, logger),
	}, nil
}

// Close releases every storage handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.KV == nil {
		return nil
	}
	return s.KV.Close()
}
