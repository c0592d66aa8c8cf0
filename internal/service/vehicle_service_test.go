package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository"
	"go-vehicle-api/internal/repository/memory"
)

func TestVehicleService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewVehicleService(memory.NewVehicleRepository())

	civic, err := service.Create(ctx, model.VehicleRequest{Name: " Civic ", Brand: "Honda", Year: 2022})
	require.NoError(t, err)
	require.Equal(t, "Civic", civic.Name)

	_, err = service.Create(ctx, model.VehicleRequest{Name: "Corolla", Brand: "Toyota", Year: 2023})
	require.NoError(t, err)

	t.Run("lists with filter and total", func(t *testing.T) {
		vehicles, total, err := service.List(ctx, model.VehicleFilter{Brand: " honda "}, model.Page{})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, []model.Vehicle{civic}, vehicles)
	})

	t.Run("updates in place", func(t *testing.T) {
		updated, err := service.Update(ctx, civic.ID, model.VehicleRequest{Name: "Civic Si", Brand: "Honda", Year: 2023})
		require.NoError(t, err)

		stored, err := service.Get(ctx, civic.ID)
		require.NoError(t, err)
		require.Equal(t, updated, stored)
	})

	t.Run("rejects non positive ids", func(t *testing.T) {
		_, err := service.Get(ctx, 0)
		require.ErrorIs(t, err, model.ErrInvalidInput)
		_, err = service.Update(ctx, -3, model.VehicleRequest{})
		require.ErrorIs(t, err, model.ErrInvalidInput)
		require.ErrorIs(t, service.Delete(ctx, 0), model.ErrInvalidInput)
	})

	t.Run("missing vehicles", func(t *testing.T) {
		_, err := service.Get(ctx, 99)
		require.ErrorIs(t, err, model.ErrVehicleNotFound)
		require.ErrorIs(t, service.Delete(ctx, 99), model.ErrVehicleNotFound)
	})
}

func TestVehicleService_CountFailure(t *testing.T) {
	t.Parallel()

	repo := &repository.MockVehicleRepository{}
	repo.On("List", mock.Anything, model.VehicleFilter{}, model.Page{}).Return([]model.Vehicle{}, nil)
	repo.On("Count", mock.Anything, model.VehicleFilter{}).Return(0, errors.New("boom"))

	_, _, err := NewVehicleService(repo).List(context.Background(), model.VehicleFilter{}, model.Page{})
	require.EqualError(t, err, "boom")
	repo.AssertExpectations(t)
}
