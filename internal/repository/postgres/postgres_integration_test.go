//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"go-vehicle-api/internal/database"
	"go-vehicle-api/internal/repository"
	"go-vehicle-api/internal/repository/repotest"
)

// setupPostgres starts a disposable postgres container, migrates it and
// returns the pool. Tables are truncated by reset between subtests.
func setupPostgres(t *testing.T) (*database.DB, func(t *testing.T)) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "vehicles",
			"POSTGRES_PASSWORD": "vehicles",
			"POSTGRES_DB":       "vehicles",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://vehicles:vehicles@%s:%s/vehicles?sslmode=disable", host, mappedPort.Port())
	db, err := database.New(ctx, url, 4, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())

	reset := func(t *testing.T) {
		t.Helper()
		_, err := db.Pool.Exec(ctx, `TRUNCATE accounts, vehicles RESTART IDENTITY`)
		require.NoError(t, err)
	}

	return db, reset
}

func TestPostgresRepositories(t *testing.T) {
	db, reset := setupPostgres(t)

	t.Run("accounts", func(t *testing.T) {
		repotest.AccountRepository(t, func(t *testing.T) repository.AccountRepository {
			reset(t)
			return NewAccountRepository(db.Pool)
		})
	})

	t.Run("vehicles", func(t *testing.T) {
		repotest.VehicleRepository(t, func(t *testing.T) repository.VehicleRepository {
			reset(t)
			return NewVehicleRepository(db.Pool)
		})
	})
}
