package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/creditscore/internal/domain/model"
	"github.com/polkiloo/creditscore/internal/domain/repository"
)

// ProfileUseCase reads and edits account profiles.
type ProfileUseCase struct {
	accounts repository.AccountRepository
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(accounts repository.AccountRepository) *ProfileUseCase {
	return &ProfileUseCase{accounts: accounts}
}

// ByUsername returns the public profile of an account.
func (u *ProfileUseCase) ByUsername(ctx context.Context, username string) (*model.Account, error) {
	return u.accounts.GetByUsername(ctx, strings.TrimSpace(username))
}

// Rename changes the username of an account.
func (u *ProfileUseCase) Rename(ctx context.Context, accountID int64, username string) error {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return err
	}
	return u.accounts.UpdateUsername(ctx, accountID, username)
}
