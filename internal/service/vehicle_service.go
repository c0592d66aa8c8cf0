package service

import (
	"context"
	"log/slog"
	"strings"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository"
)

type VehicleService struct {
	vehicles repository.VehicleRepository
}

func NewVehicleService(vehicles repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

func (s *VehicleService) List(ctx context.Context, filter model.VehicleFilter, page model.Page) ([]model.Vehicle, int, error) {
	filter.Name = strings.TrimSpace(filter.Name)
	filter.Brand = strings.TrimSpace(filter.Brand)

	vehicles, err := s.vehicles.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.vehicles.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

func (s *VehicleService) Get(ctx context.Context, id int64) (model.Vehicle, error) {
	if id <= 0 {
		return model.Vehicle{}, model.ErrInvalidInput
	}
	return s.vehicles.FindByID(ctx, id)
}

func (s *VehicleService) Create(ctx context.Context, req model.VehicleRequest) (model.Vehicle, error) {
	vehicle, err := s.vehicles.Create(ctx, vehicleFromRequest(req))
	if err != nil {
		return model.Vehicle{}, err
	}

	slog.Info("vehicle created", "vehicle_id", vehicle.ID)
	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, id int64, req model.VehicleRequest) (model.Vehicle, error) {
	if id <= 0 {
		return model.Vehicle{}, model.ErrInvalidInput
	}

	vehicle := vehicleFromRequest(req)
	vehicle.ID = id
	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return model.Vehicle{}, err
	}

	slog.Info("vehicle updated", "vehicle_id", id)
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidInput
	}

	if err := s.vehicles.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("vehicle deleted", "vehicle_id", id)
	return nil
}

func vehicleFromRequest(req model.VehicleRequest) model.Vehicle {
	return model.Vehicle{
		Name:  strings.TrimSpace(req.Name),
		Brand: strings.TrimSpace(req.Brand),
		Year:  req.Year,
	}
}
