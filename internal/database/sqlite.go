package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteMemory = ":memory:"

// OpenSQLite opens the database file at path, creating its directory when
// needed. Pass ":memory:" for a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := "file::memory:?_pragma=foreign_keys(1)"
	if path != sqliteMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite serializes writers; one connection also keeps ":memory:" alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	slog.Info("database connected", "provider", ProviderSQLite, "path", path)
	return db, nil
}
