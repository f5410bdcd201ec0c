package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
)

var sqlitePragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA foreign_keys=ON",
	"PRAGMA busy_timeout=5000",
}

// NewConnectSQLite opens the local database named by cfg.DSN with
// cfg.Driver ("sqlite" is the pure Go driver, "sqlite3" the cgo one).
// The parent directory of a file DSN is created when missing. The pool is
// pinned to a single connection so in-memory databases keep their schema.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverModernc
	}

	if err := createLocalDBDir(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("driver", driver).Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	for _, pragma := range sqlitePragmas {
		if _, err = conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			log.Err(err).Str("func", "NewConnectSQLite").Str("pragma", pragma).Msg("error applying pragma")
			return nil, fmt.Errorf("error applying %q: %w", pragma, err)
		}
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("driver", driver).Msg("connected to database successfully")

	return NewDB(conn, log), nil
}

func createLocalDBDir(dsn string) error {
	if dsn == "" || strings.Contains(dsn, ":memory:") || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
