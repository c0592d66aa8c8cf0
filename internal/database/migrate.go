package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

// Migrate applies every pending postgres migration.
func (db *DB) Migrate() error {
	if db == nil || db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	sqlDB := db.SQL()
	defer sqlDB.Close()

	driver, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("create postgres migration driver: %w", err)
	}

	return runMigrations(postgresMigrations, "migrations/postgres", ProviderPostgres, driver)
}

// MigrateSQLite applies every pending sqlite migration to db. The handle
// stays open afterwards.
func MigrateSQLite(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("sqlite handle is not initialized")
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite migration driver: %w", err)
	}

	return runMigrations(sqliteMigrations, "migrations/sqlite", ProviderSQLite, driver)
}

func runMigrations(files embed.FS, dir string, provider string, driver migratedb.Driver) error {
	source, err := iofs.New(files, dir)
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, provider, driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := instance.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}

	slog.Info("database schema ensured", "provider", provider, "version", version, "dirty", dirty)
	return nil
}
