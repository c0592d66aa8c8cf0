package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-vehicle-api/internal/model"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (model.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context, page model.Page) ([]model.Account, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id int64) (model.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, filter model.VehicleFilter, page model.Page) ([]model.Vehicle, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Count(ctx context.Context, filter model.VehicleFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	return args.Get(0).(model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
