package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/creditscore/internal/domain/repository"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var _ repository.Factory = (*Storage)(nil)

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) CreditRecords() repository.CreditRecordRepository {
	return &creditRecordRepository{storage: s}
}

func (s *Storage) Importer() repository.CreditImporter {
	return &creditImporter{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            id BIGSERIAL PRIMARY KEY,
            username VARCHAR(64) UNIQUE NOT NULL,
            email VARCHAR(120) UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            last_seen TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS credit_customers (
            id BIGSERIAL PRIMARY KEY,
            customer_id VARCHAR(64) UNIQUE NOT NULL,
            age DOUBLE PRECISION NOT NULL,
            occupation VARCHAR(64) NOT NULL,
            annual_income DOUBLE PRECISION NOT NULL,
            payment_behaviour VARCHAR(64) NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS monthly_credit_records (
            id BIGSERIAL PRIMARY KEY,
            customer_id VARCHAR(64) NOT NULL REFERENCES credit_customers(customer_id),
            month INTEGER,
            month_no INTEGER NOT NULL,
            num_bank_accounts DOUBLE PRECISION,
            num_credit_card INTEGER,
            interest_rate DOUBLE PRECISION,
            num_of_loan DOUBLE PRECISION,
            delay_from_due_date INTEGER,
            num_of_delayed_payment INTEGER,
            changed_credit_limit DOUBLE PRECISION,
            num_credit_inquiries INTEGER,
            outstanding_debt DOUBLE PRECISION,
            credit_utilization_ratio DOUBLE PRECISION,
            total_emi_per_month DOUBLE PRECISION,
            amount_invested_monthly DOUBLE PRECISION
        )`,
		`CREATE INDEX IF NOT EXISTS idx_monthly_credit_records_customer ON monthly_credit_records(customer_id, month_no)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
