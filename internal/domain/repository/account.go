package repository

import (
	"context"
	"time"

	"github.com/polkiloo/creditscore/internal/domain/model"
)

// AccountRepository describes persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	UpdateUsername(ctx context.Context, id int64, username string) error
	TouchLastSeen(ctx context.Context, id int64, at time.Time) error
}
