package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository/memory"
	"go-vehicle-api/internal/security"
)

func TestSeeder_Seed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	accounts := memory.NewAccountRepository()
	vehicles := memory.NewVehicleRepository()
	seeder := NewSeeder(accounts, vehicles, security.SHA256Hasher{})

	seeded, err := seeder.Seed(ctx, DefaultSeed())
	require.NoError(t, err)
	require.True(t, seeded)

	admin, err := accounts.FindByEmail(ctx, "admin@minimalapi.com")
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, admin.Role)
	require.Equal(t, "jZae727K08KaOmKSgOaGzww/XVqGr/PKEgIMkjrcbJI=", admin.PasswordHash)

	count, err := vehicles.Count(ctx, model.VehicleFilter{})
	require.NoError(t, err)
	require.Equal(t, 3, count)

	t.Run("does nothing when accounts exist", func(t *testing.T) {
		seeded, err := seeder.Seed(ctx, DefaultSeed())
		require.NoError(t, err)
		require.False(t, seeded)

		count, err := vehicles.Count(ctx, model.VehicleFilter{})
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})
}

func TestSeeder_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	seeder := NewSeeder(memory.NewAccountRepository(), memory.NewVehicleRepository(), security.SHA256Hasher{})
	_, err := seeder.Seed(context.Background(), SeedData{Accounts: []SeedAccount{{Email: "x@example.com", Password: "p", Role: "root"}}})
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestLoadSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `accounts:
  - email: owner@example.com
    password: Secret1
    role: admin
vehicles:
  - name: Fusca
    brand: Volkswagen
    year: 1975
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Equal(t, []SeedAccount{{Email: "owner@example.com", Password: "Secret1", Role: "admin"}}, data.Accounts)
	require.Equal(t, []SeedVehicle{{Name: "Fusca", Brand: "Volkswagen", Year: 1975}}, data.Vehicles)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
