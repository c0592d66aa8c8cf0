package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository/memory"
	"go-vehicle-api/internal/security"
	"go-vehicle-api/internal/validation"
	"go-vehicle-api/pkg/apierror"
)

func TestAccountService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewAccountRepository()
	service := NewAccountService(repo, security.SHA256Hasher{})

	view, err := service.Create(ctx, model.AccountRequest{Email: " editor@example.com ", Password: "Secret1", Role: "Editor"})
	require.NoError(t, err)
	require.Equal(t, "editor@example.com", view.Email)
	require.Equal(t, model.RoleEditor, view.Role)

	stored, err := repo.FindByID(ctx, view.ID)
	require.NoError(t, err)
	require.Equal(t, "ZDQFBhQrDhurywLDQtdqhURp1dYe30vWyxwkmsAJcm4=", stored.PasswordHash)

	_, err = service.Create(ctx, model.AccountRequest{Email: "EDITOR@example.com", Password: "Secret1", Role: "admin"})
	require.ErrorIs(t, err, model.ErrAccountExists)

	_, err = service.Create(ctx, model.AccountRequest{Email: "other@example.com", Password: "Secret1", Role: "owner"})
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestAccountService_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("same secret keeps the digest", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		account := createAccount(t, repo, "editor@example.com", "Secret1", model.RoleEditor)
		service := NewAccountService(repo, security.SHA256Hasher{})

		view, err := service.Update(ctx, account.ID, model.AccountRequest{Email: "editor2@example.com", Password: "Secret1", Role: "admin"})
		require.NoError(t, err)
		require.Equal(t, model.RoleAdmin, view.Role)

		stored, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, account.PasswordHash, stored.PasswordHash)
		require.Equal(t, "editor2@example.com", stored.Email)
	})

	t.Run("same secret keeps a bcrypt digest byte for byte", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		hasher := security.BcryptHasher{Cost: 4}
		digest, err := hasher.Hash("Secret1")
		require.NoError(t, err)
		account, err := repo.Create(ctx, model.Account{Email: "b@example.com", PasswordHash: digest, Role: model.RoleEditor})
		require.NoError(t, err)

		_, err = NewAccountService(repo, hasher).Update(ctx, account.ID, model.AccountRequest{Email: "b@example.com", Password: "Secret1", Role: "editor"})
		require.NoError(t, err)

		stored, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, digest, stored.PasswordHash)
	})

	t.Run("new secret is re-hashed", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		account := createAccount(t, repo, "editor@example.com", "Secret1", model.RoleEditor)
		service := NewAccountService(repo, security.SHA256Hasher{})

		_, err := service.Update(ctx, account.ID, model.AccountRequest{Email: "editor@example.com", Password: "Secret2", Role: "editor"})
		require.NoError(t, err)

		stored, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotEqual(t, account.PasswordHash, stored.PasswordHash)
		require.True(t, security.SHA256Hasher{}.Verify("Secret2", stored.PasswordHash))
	})

	t.Run("missing account and bad ids", func(t *testing.T) {
		service := NewAccountService(memory.NewAccountRepository(), security.SHA256Hasher{})
		req := model.AccountRequest{Email: "x@example.com", Password: "Secret1", Role: "editor"}

		_, err := service.Update(ctx, 42, req)
		require.ErrorIs(t, err, model.ErrAccountNotFound)
		_, err = service.Update(ctx, 0, req)
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("password policy applies to changed secrets only", func(t *testing.T) {
		repo := memory.NewAccountRepository()
		account := createAccount(t, repo, "admin@minimalapi.com", "123456", model.RoleAdmin)
		service := NewAccountService(repo, security.SHA256Hasher{}, WithPasswordPolicy(validation.Default()))

		_, err := service.Update(ctx, account.ID, model.AccountRequest{Email: account.Email, Password: "123456", Role: "admin"})
		require.NoError(t, err)

		_, err = service.Update(ctx, account.ID, model.AccountRequest{Email: account.Email, Password: "abcdef", Role: "admin"})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, apierror.CodeValidationFailed, apiErr.Code)
		require.Equal(t, []string{"password must contain a lowercase letter, an uppercase letter and a digit"}, apiErr.Messages)

		stored, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, account.PasswordHash, stored.PasswordHash)
	})
}

func TestAccountService_ListGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewAccountRepository()
	first := createAccount(t, repo, "a@example.com", "Secret1", model.RoleAdmin)
	createAccount(t, repo, "b@example.com", "Secret1", model.RoleEditor)
	createAccount(t, repo, "c@example.com", "Secret1", model.RoleEditor)
	service := NewAccountService(repo, security.SHA256Hasher{})

	views, total, err := service.List(ctx, model.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, 3, total)

	view, err := service.Get(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first.View(), view)

	_, err = service.Get(ctx, -1)
	require.ErrorIs(t, err, model.ErrInvalidInput)

	require.NoError(t, service.Delete(ctx, first.ID))
	require.ErrorIs(t, service.Delete(ctx, first.ID), model.ErrAccountNotFound)
	require.ErrorIs(t, service.Delete(ctx, 0), model.ErrInvalidInput)
}
