// Package repository contains data access logic separated from HTTP
// handlers. Each repository wraps a *sql.DB injected at startup; nothing in
// this package holds process-global state.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rocgym/job-board/internal/model"
	"github.com/rocgym/job-board/internal/utils"
)

// Sentinel errors surfaced by AccountRepo. Handlers translate
// ErrEmailExists into HTTP 409 and ErrAccountNotFound into 401/404
// depending on context.
var (
	ErrEmailExists     = errors.New("email already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepo encapsulates all queries against the `accounts` table.
// The email column uses a binary collation (utf8mb4_bin) so both the
// unique key and lookups match case-sensitively.
type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{db: db} }

// Create hashes the secret and inserts a new account, returning its ID.
// The raw secret is discarded after hashing. A duplicate email maps to
// ErrEmailExists via the MySQL 1062 duplicate-key error.
func (r *AccountRepo) Create(ctx context.Context, email, password, role string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO accounts (email, password_hash, role) VALUES (?,?,?)",
		email, hash, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an account by exact email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,created_at FROM accounts WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrAccountNotFound
	}
	return a, err
}

// GetByID fetches an account by id.
func (r *AccountRepo) GetByID(ctx context.Context, id uint64) (model.Account, error) {
	var a model.Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,created_at FROM accounts WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrAccountNotFound
	}
	return a, err
}
