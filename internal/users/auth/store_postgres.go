// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

// Unique constraints declared in data/migrations.
const (
	constraintUsername = "uq_account_username"
	constraintEmail    = "uq_account_email"
)

// accountColumns lists the columns scanned by [scanAccount], in order.
const accountColumns = `
	id, username, email, fullname, avatar, coverimage,
	passwordhash, COALESCE(refreshtokenhash, ''), createdat, updatedat`

// # Account Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.FullName,
		&account.Avatar,
		&account.CoverImage,
		&account.PasswordHash,
		&account.RefreshTokenHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

/*
Create persists a new row into users.account.

Description: The unique indexes are the final arbiter for concurrent
registrations; their violation is reported as Conflict.

Parameters:
  - context: context.Context
  - account: *Account

Returns:
  - error: Conflict or storage failures
*/
func (repository *PostgresRepository) Create(context context.Context, account *Account) error {
	const query = `
		INSERT INTO users.account (
			id, username, email, fullname, avatar, coverimage, passwordhash, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		account.ID,
		account.Username,
		account.Email,
		account.FullName,
		account.Avatar,
		account.CoverImage,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if dberr.IsUniqueViolation(err) {
		switch dberr.ConstraintName(err) {
		case constraintUsername:
			return apperr.Conflict("Username is already taken")
		case constraintEmail:
			return apperr.Conflict("Email is already registered")
		}
		return apperr.Conflict("User with this username or email already exists")
	}

	return dberr.Wrap(err, "insert_account")
}

// FindByID retrieves an account by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users.account WHERE id = $1`

	account, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_id")
	}
	return account, nil
}

// FindByUsername retrieves an account by its normalized username.
func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users.account WHERE username = $1`

	account, err := scanAccount(repository.pool.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_username")
	}
	return account, nil
}

// Exists checks both unique identities in a single round trip.
func (repository *PostgresRepository) Exists(context context.Context, username, email string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users.account WHERE username = $1 OR email = $2
		)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, username, email).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_account_exists")
	}
	return exists, nil
}

// SetRefreshToken overwrites (or clears, for "") the stored refresh token hash.
func (repository *PostgresRepository) SetRefreshToken(context context.Context, id, tokenHash string) error {
	const query = `
		UPDATE users.account
		SET refreshtokenhash = NULLIF($2, ''), updatedat = NOW()
		WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, id, tokenHash)
	if err != nil {
		return dberr.Wrap(err, "set_refresh_token")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

// RotateRefreshToken is a compare-and-swap on refreshtokenhash.
func (repository *PostgresRepository) RotateRefreshToken(context context.Context, id, previousHash, nextHash string) (bool, error) {
	const query = `
		UPDATE users.account
		SET refreshtokenhash = $3, updatedat = NOW()
		WHERE id = $1 AND refreshtokenhash = $2`

	tag, err := repository.pool.Exec(context, query, id, previousHash, nextHash)
	if err != nil {
		return false, dberr.Wrap(err, "rotate_refresh_token")
	}
	return tag.RowsAffected() == 1, nil
}

// UpdatePasswordHash is a compare-and-swap on passwordhash.
func (repository *PostgresRepository) UpdatePasswordHash(context context.Context, id, previousHash, nextHash string) (bool, error) {
	const query = `
		UPDATE users.account
		SET passwordhash = $3, updatedat = NOW()
		WHERE id = $1 AND passwordhash = $2`

	tag, err := repository.pool.Exec(context, query, id, previousHash, nextHash)
	if err != nil {
		return false, dberr.Wrap(err, "update_password_hash")
	}
	return tag.RowsAffected() == 1, nil
}
