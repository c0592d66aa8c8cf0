package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository"
	"go-vehicle-api/internal/security"
)

type SeedAccount struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type SeedVehicle struct {
	Name  string `yaml:"name"`
	Brand string `yaml:"brand"`
	Year  int    `yaml:"year"`
}

type SeedData struct {
	Accounts []SeedAccount `yaml:"accounts"`
	Vehicles []SeedVehicle `yaml:"vehicles"`
}

// DefaultSeed is loaded into an empty store when no seed file is set.
func DefaultSeed() SeedData {
	return SeedData{
		Accounts: []SeedAccount{
			{Email: "admin@minimalapi.com", Password: "123456", Role: model.RoleAdmin.String()},
		},
		Vehicles: []SeedVehicle{
			{Name: "Civic", Brand: "Honda", Year: 2022},
			{Name: "Corolla", Brand: "Toyota", Year: 2023},
			{Name: "Onix", Brand: "Chevrolet", Year: 2021},
		},
	}
}

func LoadSeedFile(path string) (SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("read seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("parse seed file: %w", err)
	}
	return data, nil
}

type Seeder struct {
	accounts repository.AccountRepository
	vehicles repository.VehicleRepository
	hasher   security.Hasher
}

func NewSeeder(accounts repository.AccountRepository, vehicles repository.VehicleRepository, hasher security.Hasher) *Seeder {
	return &Seeder{accounts: accounts, vehicles: vehicles, hasher: hasher}
}

// Seed loads data only when the account store is empty and reports whether
// anything was written.
func (s *Seeder) Seed(ctx context.Context, data SeedData) (bool, error) {
	count, err := s.accounts.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		slog.Debug("seed skipped", "accounts", count)
		return false, nil
	}

	for _, seed := range data.Accounts {
		role, ok := model.ParseRole(seed.Role)
		if !ok {
			return false, fmt.Errorf("seed account %q: %w: unknown role %q", seed.Email, model.ErrInvalidInput, seed.Role)
		}

		digest, err := s.hasher.Hash(seed.Password)
		if err != nil {
			return false, fmt.Errorf("seed account %q: %w", seed.Email, err)
		}

		if _, err := s.accounts.Create(ctx, model.Account{Email: seed.Email, PasswordHash: digest, Role: role}); err != nil {
			return false, fmt.Errorf("seed account %q: %w", seed.Email, err)
		}
	}

	for _, seed := range data.Vehicles {
		vehicle := model.Vehicle{Name: seed.Name, Brand: seed.Brand, Year: seed.Year}
		if _, err := s.vehicles.Create(ctx, vehicle); err != nil {
			return false, fmt.Errorf("seed vehicle %q: %w", seed.Name, err)
		}
	}

	slog.Info("store seeded", "accounts", len(data.Accounts), "vehicles", len(data.Vehicles))
	return true, nil
}
