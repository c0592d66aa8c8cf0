package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-vehicle-api/internal/model"
)

// LIKE is case-insensitive for ASCII in SQLite.
const vehicleFilterClause = `WHERE (?1 = '' OR name LIKE '%' || ?1 || '%')
	  AND (?2 = '' OR brand LIKE '%' || ?2 || '%')`

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, brand, year FROM vehicles WHERE id = ?`, id).
		Scan(&v.ID, &v.Name, &v.Brand, &v.Year)

	if errors.Is(err, sql.ErrNoRows) {
		return model.Vehicle{}, model.ErrVehicleNotFound
	}
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("find vehicle by id: %w", err)
	}
	return v, nil
}

func (r *VehicleRepository) List(ctx context.Context, filter model.VehicleFilter, page model.Page) ([]model.Vehicle, error) {
	query := `SELECT id, name, brand, year FROM vehicles ` + vehicleFilterClause + ` ORDER BY id`
	args := []any{filter.Name, filter.Brand}
	if page.Enabled() {
		query += ` LIMIT ?3 OFFSET ?4`
		args = append(args, page.Size, page.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
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
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vehicles `+vehicleFilterClause, filter.Name, filter.Brand).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count vehicles: %w", err)
	}
	return count, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicles (name, brand, year) VALUES (?, ?, ?)`,
		vehicle.Name, vehicle.Brand, vehicle.Year)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("create vehicle: %w", err)
	}

	vehicle.ID, err = res.LastInsertId()
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("read vehicle id: %w", err)
	}
	return vehicle, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle model.Vehicle) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET name = ?, brand = ?, year = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		vehicle.Name, vehicle.Brand, vehicle.Year, vehicle.ID)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return requireAffected(res, model.ErrVehicleNotFound)
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return requireAffected(res, model.ErrVehicleNotFound)
}
