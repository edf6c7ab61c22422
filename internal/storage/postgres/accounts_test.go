package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
)

var accountColumns = []string{"id", "username", "email", "password_hash", "last_seen"}

func TestAccountRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &accountRepository{storage: storage}

	seen := time.Now()
	mock.ExpectQuery("INSERT INTO accounts").WithArgs("alice", "alice@example.com", "hash").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "last_seen"}).AddRow(int64(1), seen),
	)
	acc, err := repo.Create(context.Background(), "alice", "alice@example.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.ID != 1 || acc.Username != "alice" || acc.Email != "alice@example.com" || !acc.LastSeen.Equal(seen) {
		t.Fatalf("unexpected account: %+v", acc)
	}

	mock.ExpectQuery("INSERT INTO accounts").WithArgs("alice", "alice@example.com", "hash").WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Create(context.Background(), "alice", "alice@example.com", "hash"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists error, got %v", err)
	}

	mock.ExpectQuery("INSERT INTO accounts").WithArgs("alice", "alice@example.com", "hash").WillReturnError(errors.New("other"))
	if _, err := repo.Create(context.Background(), "alice", "alice@example.com", "hash"); err == nil || errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected raw error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestAccountRepositoryLookups(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &accountRepository{storage: storage}

	seen := time.Now()
	mock.ExpectQuery("SELECT id, username, email, password_hash, last_seen FROM accounts WHERE username=").WithArgs("alice").WillReturnRows(
		pgxmockv3.NewRows(accountColumns).AddRow(int64(1), "alice", "alice@example.com", "hash", seen))
	acc, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil || acc.ID != 1 || acc.PasswordHash != "hash" {
		t.Fatalf("unexpected result: %+v err=%v", acc, err)
	}

	mock.ExpectQuery("SELECT id, username, email, password_hash, last_seen FROM accounts WHERE username=").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByUsername(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT id, username, email, password_hash, last_seen FROM accounts WHERE username=").WithArgs("err").WillReturnError(errors.New("fail"))
	if _, err := repo.GetByUsername(context.Background(), "err"); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("SELECT id, username, email, password_hash, last_seen FROM accounts WHERE id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(accountColumns).AddRow(int64(1), "alice", "alice@example.com", "hash", seen))
	if acc, err := repo.GetByID(context.Background(), 1); err != nil || acc.Username != "alice" {
		t.Fatalf("unexpected result: %+v err=%v", acc, err)
	}

	mock.ExpectQuery("SELECT id, username, email, password_hash, last_seen FROM accounts WHERE id=").WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT id, username, email, password_hash, last_seen FROM accounts WHERE id=").WithArgs(int64(3)).WillReturnError(errors.New("boom"))
	if _, err := repo.GetByID(context.Background(), 3); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestAccountRepositoryUpdateUsername(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &accountRepository{storage: storage}

	mock.ExpectExec("UPDATE accounts SET username=").WithArgs("bob", int64(1)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateUsername(context.Background(), 1, "bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE accounts SET username=").WithArgs("bob", int64(2)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateUsername(context.Background(), 2, "bob"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE accounts SET username=").WithArgs("taken", int64(1)).WillReturnError(&pgconn.PgError{Code: "23505"})
	if err := repo.UpdateUsername(context.Background(), 1, "taken"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	mock.ExpectExec("UPDATE accounts SET username=").WithArgs("err", int64(1)).WillReturnError(errors.New("update"))
	if err := repo.UpdateUsername(context.Background(), 1, "err"); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestAccountRepositoryTouchLastSeen(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &accountRepository{storage: storage}

	at := time.Now().UTC()
	mock.ExpectExec("UPDATE accounts SET last_seen=").WithArgs(at, int64(1)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.TouchLastSeen(context.Background(), 1, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE accounts SET last_seen=").WithArgs(pgxmockv3.AnyArg(), int64(2)).WillReturnError(errors.New("touch"))
	if err := repo.TouchLastSeen(context.Background(), 2, at); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
