package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository"
	"go-vehicle-api/internal/security"
)

type tokenIssuer interface {
	Issue(account model.Account) string
}

type AuthService struct {
	accounts repository.AccountRepository
	hasher   security.Hasher
	tokens   tokenIssuer
}

func NewAuthService(accounts repository.AccountRepository, hasher security.Hasher, tokens tokenIssuer) *AuthService {
	return &AuthService{accounts: accounts, hasher: hasher, tokens: tokens}
}

// Login exchanges credentials for a signed token. Every rejection returns
// model.ErrInvalidCredentials so callers cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.LoginResult, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrAccountNotFound) {
		slog.Warn("login rejected", "reason", "unknown account")
		return model.LoginResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("load account: %w", err)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		slog.Warn("login rejected", "reason", "secret mismatch", "account_id", account.ID)
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	token := s.tokens.Issue(account)
	if token == "" {
		slog.Error("login rejected", "reason", "token not issued", "account_id", account.ID)
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	slog.Info("login succeeded", "account_id", account.ID, "role", account.Role)
	return model.LoginResult{Email: account.Email, Role: account.Role, Token: token}, nil
}

// Me resolves the account behind verified claims. A token for a deleted
// account is treated as unauthenticated.
func (s *AuthService) Me(ctx context.Context, claims model.AuthClaims) (model.AccountView, error) {
	account, err := s.accounts.FindByID(ctx, claims.AccountID)
	if errors.Is(err, model.ErrAccountNotFound) {
		return model.AccountView{}, model.ErrUnauthorized
	}
	if err != nil {
		return model.AccountView{}, fmt.Errorf("load account: %w", err)
	}
	return account.View(), nil
}
