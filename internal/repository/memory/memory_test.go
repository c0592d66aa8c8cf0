package memory

import (
	"testing"

	"go-vehicle-api/internal/repository"
	"go-vehicle-api/internal/repository/repotest"
)

func TestAccountRepository(t *testing.T) {
	repotest.AccountRepository(t, func(*testing.T) repository.AccountRepository {
		return NewAccountRepository()
	})
}

func TestVehicleRepository(t *testing.T) {
	repotest.VehicleRepository(t, func(*testing.T) repository.VehicleRepository {
		return NewVehicleRepository()
	})
}
