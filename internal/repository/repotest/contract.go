// Package repotest holds behaviour every repository driver must share.
package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository"
)

// AccountRepository runs the account contract against a fresh, empty
// repository produced by factory for each subtest.
func AccountRepository(t *testing.T, factory func(t *testing.T) repository.AccountRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("create assigns ids and find returns the account", func(t *testing.T) {
		repo := factory(t)

		created, err := repo.Create(ctx, model.Account{Email: "admin@example.com", PasswordHash: "digest", Role: model.RoleAdmin})
		require.NoError(t, err)
		require.Positive(t, created.ID)

		byID, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created, byID)

		byEmail, err := repo.FindByEmail(ctx, "ADMIN@example.com")
		require.NoError(t, err)
		require.Equal(t, created.ID, byEmail.ID)
		require.Equal(t, "digest", byEmail.PasswordHash)
	})

	t.Run("missing accounts are not found", func(t *testing.T) {
		repo := factory(t)

		_, err := repo.FindByID(ctx, 999)
		require.ErrorIs(t, err, model.ErrAccountNotFound)
		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, model.ErrAccountNotFound)
		require.ErrorIs(t, repo.Update(ctx, model.Account{ID: 999, Email: "x@example.com", PasswordHash: "d", Role: model.RoleEditor}), model.ErrAccountNotFound)
		require.ErrorIs(t, repo.Delete(ctx, 999), model.ErrAccountNotFound)
	})

	t.Run("duplicate emails conflict", func(t *testing.T) {
		repo := factory(t)

		first, err := repo.Create(ctx, model.Account{Email: "one@example.com", PasswordHash: "d", Role: model.RoleAdmin})
		require.NoError(t, err)
		_, err = repo.Create(ctx, model.Account{Email: "One@Example.com", PasswordHash: "d", Role: model.RoleEditor})
		require.ErrorIs(t, err, model.ErrAccountExists)

		second, err := repo.Create(ctx, model.Account{Email: "two@example.com", PasswordHash: "d", Role: model.RoleEditor})
		require.NoError(t, err)
		second.Email = first.Email
		require.ErrorIs(t, repo.Update(ctx, second), model.ErrAccountExists)
	})

	t.Run("update overwrites and delete removes", func(t *testing.T) {
		repo := factory(t)

		account, err := repo.Create(ctx, model.Account{Email: "editor@example.com", PasswordHash: "old", Role: model.RoleEditor})
		require.NoError(t, err)

		account.Email = "renamed@example.com"
		account.PasswordHash = "new"
		account.Role = model.RoleAdmin
		require.NoError(t, repo.Update(ctx, account))

		stored, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, account, stored)

		require.NoError(t, repo.Delete(ctx, account.ID))
		_, err = repo.FindByID(ctx, account.ID)
		require.ErrorIs(t, err, model.ErrAccountNotFound)
	})

	t.Run("list pages in id order", func(t *testing.T) {
		repo := factory(t)

		for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
			_, err := repo.Create(ctx, model.Account{Email: email, PasswordHash: "d", Role: model.RoleEditor})
			require.NoError(t, err)
		}

		all, err := repo.List(ctx, model.Page{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, "a@example.com", all[0].Email)

		second, err := repo.List(ctx, model.Page{Number: 2, Size: 2})
		require.NoError(t, err)
		require.Len(t, second, 1)
		require.Equal(t, "c@example.com", second[0].Email)

		beyond, err := repo.List(ctx, model.Page{Number: 5, Size: 2})
		require.NoError(t, err)
		require.Empty(t, beyond)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})
}

// VehicleRepository runs the vehicle contract the same way.
func VehicleRepository(t *testing.T, factory func(t *testing.T) repository.VehicleRepository) {
	t.Helper()
	ctx := context.Background()

	seed := func(t *testing.T, repo repository.VehicleRepository) []model.Vehicle {
		t.Helper()
		created := make([]model.Vehicle, 0, 3)
		for _, v := range []model.Vehicle{
			{Name: "Civic", Brand: "Honda", Year: 2022},
			{Name: "Corolla", Brand: "Toyota", Year: 2023},
			{Name: "City", Brand: "Honda", Year: 2020},
		} {
			stored, err := repo.Create(ctx, v)
			require.NoError(t, err)
			created = append(created, stored)
		}
		return created
	}

	t.Run("crud round trip", func(t *testing.T) {
		repo := factory(t)

		created, err := repo.Create(ctx, model.Vehicle{Name: "Onix", Brand: "Chevrolet", Year: 2021})
		require.NoError(t, err)
		require.Positive(t, created.ID)

		created.Year = 2022
		require.NoError(t, repo.Update(ctx, created))

		stored, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created, stored)

		require.NoError(t, repo.Delete(ctx, created.ID))
		_, err = repo.FindByID(ctx, created.ID)
		require.ErrorIs(t, err, model.ErrVehicleNotFound)
		require.ErrorIs(t, repo.Update(ctx, created), model.ErrVehicleNotFound)
		require.ErrorIs(t, repo.Delete(ctx, created.ID), model.ErrVehicleNotFound)
	})

	t.Run("filters by name and brand substrings", func(t *testing.T) {
		repo := factory(t)
		seed(t, repo)

		hondas, err := repo.List(ctx, model.VehicleFilter{Brand: "hon"}, model.Page{})
		require.NoError(t, err)
		require.Len(t, hondas, 2)

		count, err := repo.Count(ctx, model.VehicleFilter{Brand: "hon"})
		require.NoError(t, err)
		require.Equal(t, 2, count)

		civic, err := repo.List(ctx, model.VehicleFilter{Name: "CIV", Brand: "honda"}, model.Page{})
		require.NoError(t, err)
		require.Len(t, civic, 1)
		require.Equal(t, "Civic", civic[0].Name)

		none, err := repo.List(ctx, model.VehicleFilter{Name: "Fusca"}, model.Page{})
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("pages filtered results", func(t *testing.T) {
		repo := factory(t)
		created := seed(t, repo)

		page, err := repo.List(ctx, model.VehicleFilter{}, model.Page{Number: 2, Size: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Equal(t, created[1].ID, page[0].ID)

		count, err := repo.Count(ctx, model.VehicleFilter{})
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})
}
