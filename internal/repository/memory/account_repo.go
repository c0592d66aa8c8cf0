package memory

import (
	"context"
	"strings"
	"sync"

	"go-vehicle-api/internal/model"
)

// AccountRepository keeps accounts in process memory. It backs tests and
// the "memory" database provider.
type AccountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]model.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{nextID: 1, accounts: make(map[int64]model.Account)}
}

func (r *AccountRepository) FindByID(_ context.Context, id int64) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return model.Account{}, model.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if account, ok := r.findByEmailLocked(email); ok {
		return account, nil
	}
	return model.Account{}, model.ErrAccountNotFound
}

func (r *AccountRepository) List(_ context.Context, page model.Page) ([]model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return paginate(sortedValues(r.accounts), page), nil
}

func (r *AccountRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accounts), nil
}

func (r *AccountRepository) Create(_ context.Context, account model.Account) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.Email = strings.TrimSpace(account.Email)
	if _, exists := r.findByEmailLocked(account.Email); exists {
		return model.Account{}, model.ErrAccountExists
	}

	account.ID = r.nextID
	r.nextID++
	r.accounts[account.ID] = account
	return account, nil
}

func (r *AccountRepository) Update(_ context.Context, account model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return model.ErrAccountNotFound
	}

	account.Email = strings.TrimSpace(account.Email)
	if other, exists := r.findByEmailLocked(account.Email); exists && other.ID != account.ID {
		return model.ErrAccountExists
	}

	r.accounts[account.ID] = account
	return nil
}

func (r *AccountRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return model.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *AccountRepository) findByEmailLocked(email string) (model.Account, bool) {
	email = strings.TrimSpace(email)
	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			return account, true
		}
	}
	return model.Account{}, false
}
