package repository

import (
	"context"

	"go-vehicle-api/internal/model"
)

// AccountRepository is the identity store. Lookups of a missing account
// return model.ErrAccountNotFound; email collisions return
// model.ErrAccountExists. Emails compare case-insensitively.
type AccountRepository interface {
	FindByID(ctx context.Context, id int64) (model.Account, error)
	FindByEmail(ctx context.Context, email string) (model.Account, error)
	List(ctx context.Context, page model.Page) ([]model.Account, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, account model.Account) (model.Account, error)
	Update(ctx context.Context, account model.Account) error
	Delete(ctx context.Context, id int64) error
}

// VehicleRepository stores inventory. Filters match case-insensitive
// substrings; empty filter fields match everything.
type VehicleRepository interface {
	FindByID(ctx context.Context, id int64) (model.Vehicle, error)
	List(ctx context.Context, filter model.VehicleFilter, page model.Page) ([]model.Vehicle, error)
	Count(ctx context.Context, filter model.VehicleFilter) (int, error)
	Create(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, error)
	Update(ctx context.Context, vehicle model.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
