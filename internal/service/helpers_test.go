package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/internal/repository/memory"
	"go-vehicle-api/internal/security"
)

type stubIssuer struct {
	token  string
	issued []model.Account
}

func (s *stubIssuer) Issue(account model.Account) string {
	s.issued = append(s.issued, account)
	return s.token
}

func createAccount(t *testing.T, repo *memory.AccountRepository, email string, password string, role model.Role) model.Account {
	t.Helper()

	digest, err := security.SHA256Hasher{}.Hash(password)
	require.NoError(t, err)

	account, err := repo.Create(context.Background(), model.Account{Email: email, PasswordHash: digest, Role: role})
	require.NoError(t, err)
	return account
}
