package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go-vehicle-api/internal/model"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (model.Account, error) {
	var a model.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role FROM accounts WHERE id = ?`, id).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role)

	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by id: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role FROM accounts WHERE email = ? COLLATE NOCASE`,
		strings.TrimSpace(email)).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role)

	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by email: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) List(ctx context.Context, page model.Page) ([]model.Account, error) {
	limit, args := pageClause(page)
	rows, err := r.db.QueryContext(ctx,
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
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return count, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	account.Email = strings.TrimSpace(account.Email)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password_hash, role) VALUES (?, ?, ?)`,
		account.Email, account.PasswordHash, string(account.Role))
	if isUniqueViolation(err) {
		return model.Account{}, model.ErrAccountExists
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("create account: %w", err)
	}

	account.ID, err = res.LastInsertId()
	if err != nil {
		return model.Account{}, fmt.Errorf("read account id: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, account model.Account) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET email = ?, password_hash = ?, role = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		strings.TrimSpace(account.Email), account.PasswordHash, string(account.Role), account.ID)
	if isUniqueViolation(err) {
		return model.ErrAccountExists
	}
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return requireAffected(res, model.ErrAccountNotFound)
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return requireAffected(res, model.ErrAccountNotFound)
}

func requireAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
