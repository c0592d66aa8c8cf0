package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-vehicle-api/internal/model"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role FROM accounts WHERE id = $1`, id).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by id: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role FROM accounts WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email)).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by email: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) List(ctx context.Context, page model.Page) ([]model.Account, error) {
	limit, args := pageClause(page, 0)
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, password_hash, role FROM accounts ORDER BY id`+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]model.Account, 0)
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return count, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id`,
		strings.TrimSpace(account.Email), account.PasswordHash, account.Role).
		Scan(&account.ID)
	if isUniqueViolation(err) {
		return model.Account{}, model.ErrAccountExists
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, account model.Account) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET email = $2, password_hash = $3, role = $4, updated_at = now() WHERE id = $1`,
		account.ID, strings.TrimSpace(account.Email), account.PasswordHash, account.Role)
	if isUniqueViolation(err) {
		return model.ErrAccountExists
	}
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}
