package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository"
	"go-vehicle-api/internal/security"
)

type payloadValidator interface {
	Validate(v any) error
}

type AccountService struct {
	accounts repository.AccountRepository
	hasher   security.Hasher
	policy   payloadValidator
}

type AccountOption func(*AccountService)

// WithPasswordPolicy checks every new secret set through Update as a
// model.PasswordChange.
func WithPasswordPolicy(policy payloadValidator) AccountOption {
	return func(s *AccountService) {
		s.policy = policy
	}
}

func NewAccountService(accounts repository.AccountRepository, hasher security.Hasher, opts ...AccountOption) *AccountService {
	s := &AccountService{accounts: accounts, hasher: hasher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AccountService) List(ctx context.Context, page model.Page) ([]model.AccountView, int, error) {
	accounts, err := s.accounts.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	views := make([]model.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}
	return views, total, nil
}

func (s *AccountService) Get(ctx context.Context, id int64) (model.AccountView, error) {
	if id <= 0 {
		return model.AccountView{}, model.ErrInvalidInput
	}

	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return model.AccountView{}, err
	}
	return account.View(), nil
}

func (s *AccountService) Create(ctx context.Context, req model.AccountRequest) (model.AccountView, error) {
	role, ok := model.ParseRole(req.Role)
	if !ok {
		return model.AccountView{}, fmt.Errorf("%w: unknown role %q", model.ErrInvalidInput, req.Role)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.AccountView{}, err
	}

	account, err := s.accounts.Create(ctx, model.Account{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: digest,
		Role:         role,
	})
	if err != nil {
		return model.AccountView{}, err
	}

	slog.Info("account created", "account_id", account.ID, "role", account.Role)
	return account.View(), nil
}

// Update overwrites email and role. The stored digest is replaced only when
// the submitted secret differs from the current one, so resubmitting the
// same secret leaves the digest untouched. The password policy applies to
// changed secrets only.
func (s *AccountService) Update(ctx context.Context, id int64, req model.AccountRequest) (model.AccountView, error) {
	if id <= 0 {
		return model.AccountView{}, model.ErrInvalidInput
	}

	role, ok := model.ParseRole(req.Role)
	if !ok {
		return model.AccountView{}, fmt.Errorf("%w: unknown role %q", model.ErrInvalidInput, req.Role)
	}

	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return model.AccountView{}, err
	}

	if !s.hasher.Verify(req.Password, account.PasswordHash) {
		if s.policy != nil {
			if err := s.policy.Validate(model.PasswordChange{Password: req.Password}); err != nil {
				return model.AccountView{}, err
			}
		}

		digest, err := s.hasher.Hash(req.Password)
		if err != nil {
			return model.AccountView{}, err
		}
		account.PasswordHash = digest
	}

	account.Email = strings.TrimSpace(req.Email)
	account.Role = role

	if err := s.accounts.Update(ctx, account); err != nil {
		return model.AccountView{}, err
	}

	slog.Info("account updated", "account_id", account.ID, "role", account.Role)
	return account.View(), nil
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidInput
	}

	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("account deleted", "account_id", id)
	return nil
}
