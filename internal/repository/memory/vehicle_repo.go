package memory

import (
	"context"
	"strings"
	"sync"

	"go-vehicle-api/internal/model"
)

type VehicleRepository struct {
	mu       sync.RWMutex
	nextID   int64
	vehicles map[int64]model.Vehicle
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{nextID: 1, vehicles: make(map[int64]model.Vehicle)}
}

func (r *VehicleRepository) FindByID(_ context.Context, id int64) (model.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicle, ok := r.vehicles[id]
	if !ok {
		return model.Vehicle{}, model.ErrVehicleNotFound
	}
	return vehicle, nil
}

func (r *VehicleRepository) List(_ context.Context, filter model.VehicleFilter, page model.Page) ([]model.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return paginate(r.matching(filter), page), nil
}

func (r *VehicleRepository) Count(_ context.Context, filter model.VehicleFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.matching(filter)), nil
}

func (r *VehicleRepository) Create(_ context.Context, vehicle model.Vehicle) (model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicle.ID = r.nextID
	r.nextID++
	r.vehicles[vehicle.ID] = vehicle
	return vehicle, nil
}

func (r *VehicleRepository) Update(_ context.Context, vehicle model.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return model.ErrVehicleNotFound
	}
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *VehicleRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[id]; !ok {
		return model.ErrVehicleNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *VehicleRepository) matching(filter model.VehicleFilter) []model.Vehicle {
	name := strings.ToLower(filter.Name)
	brand := strings.ToLower(filter.Brand)

	vehicles := make([]model.Vehicle, 0, len(r.vehicles))
	for _, vehicle := range sortedValues(r.vehicles) {
		if name != "" && !strings.Contains(strings.ToLower(vehicle.Name), name) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(vehicle.Brand), brand) {
			continue
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles
}
