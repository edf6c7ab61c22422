package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/domain/model"
)

type accountRepository struct {
	storage *Storage
}

func (r *accountRepository) Create(ctx context.Context, username, email, passwordHash string) (*model.Account, error) {
	const query = `INSERT INTO accounts (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, last_seen`
	acc := model.Account{Username: username, Email: email, PasswordHash: passwordHash}
	err := r.storage.pool.QueryRow(ctx, query, username, email, passwordHash).Scan(&acc.ID, &acc.LastSeen)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	const query = `SELECT id, username, email, password_hash, last_seen FROM accounts WHERE username=$1`
	return r.getOne(ctx, query, username)
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `SELECT id, username, email, password_hash, last_seen FROM accounts WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *accountRepository) getOne(ctx context.Context, query string, arg any) (*model.Account, error) {
	var acc model.Account
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.LastSeen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	const query = `UPDATE accounts SET username=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, username, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *accountRepository) TouchLastSeen(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE accounts SET last_seen=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, at, id)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
