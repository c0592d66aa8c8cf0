package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-vehicle-api/internal/model"
)

const vehicleFilterClause = `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	  AND ($2 = '' OR brand ILIKE '%' || $2 || '%')`

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (model.Vehicle, error) {
	var v model.Vehicle
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, brand, year FROM vehicles WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Brand, &v.Year)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Vehicle{}, model.ErrVehicleNotFound
	}
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("find vehicle by id: %w", err)
	}
	return v, nil
}

func (r *VehicleRepository) List(ctx context.Context, filter model.VehicleFilter, page model.Page) ([]model.Vehicle, error) {
	limit, pageArgs := pageClause(page, 2)
	args := append([]any{filter.Name, filter.Brand}, pageArgs...)

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, brand, year FROM vehicles `+vehicleFilterClause+` ORDER BY id`+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]model.Vehicle, 0)
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Year); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *VehicleRepository) Count(ctx context.Context, filter model.VehicleFilter) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM vehicles `+vehicleFilterClause, filter.Name, filter.Brand).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count vehicles: %w", err)
	}
	return count, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO vehicles (name, brand, year) VALUES ($1, $2, $3) RETURNING id`,
		vehicle.Name, vehicle.Brand, vehicle.Year).
		Scan(&vehicle.ID)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle model.Vehicle) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE vehicles SET name = $2, brand = $3, year = $4, updated_at = now() WHERE id = $1`,
		vehicle.ID, vehicle.Name, vehicle.Brand, vehicle.Year)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrVehicleNotFound
	}
	return nil
}
