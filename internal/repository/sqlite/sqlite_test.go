package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"go-vehicle-api/internal/database"
	"go-vehicle-api/internal/repository"
	"go-vehicle-api/internal/repository/repotest"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.MigrateSQLite(db))
	return db
}

func TestAccountRepository(t *testing.T) {
	repotest.AccountRepository(t, func(t *testing.T) repository.AccountRepository {
		return NewAccountRepository(setupDB(t))
	})
}

func TestVehicleRepository(t *testing.T) {
	repotest.VehicleRepository(t, func(t *testing.T) repository.VehicleRepository {
		return NewVehicleRepository(setupDB(t))
	})
}
