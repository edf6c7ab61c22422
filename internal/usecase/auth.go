package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/polkiloo/creditscore/internal/config"
	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/domain/model"
	"github.com/polkiloo/creditscore/internal/domain/repository"
	"github.com/polkiloo/creditscore/internal/metrics"
	pkgAuth "github.com/polkiloo/creditscore/internal/pkg/auth"
)

const (
	maxUsernameLen = 64
	maxEmailLen    = 120
)

// AuthUseCase handles account registration, login and session resolution.
type AuthUseCase struct {
	accounts    repository.AccountRepository
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
	sessionTTL  time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, cfg *config.Config) *AuthUseCase {
	return &AuthUseCase{
		accounts:    accounts,
		hasher:      hasher,
		tokens:      strategy,
		sessionTTL:  cfg.SessionTTL,
		rememberTTL: cfg.RememberTTL,
		now:         time.Now,
	}
}

// Register creates a new account. The caller logs in separately.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (*model.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if email == "" || len(email) > maxEmailLen || !strings.Contains(email, "@") || password == "" {
		return nil, domainErrors.ErrInvalidInput
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	acc, err := u.accounts.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return acc, nil
}

// Authenticate validates credentials, marks the account as seen and issues a session.
// A remembered session outlives the browser and uses the longer TTL.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string, remember bool) (*model.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		metrics.Scoring.LoginAttemptsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, domainErrors.ErrInvalidCredentials
	}

	acc, err := u.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			metrics.Scoring.LoginAttemptsTotal.WithLabelValues(metrics.ResultFailure).Inc()
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(acc.PasswordHash, password); err != nil {
		metrics.Scoring.LoginAttemptsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, domainErrors.ErrInvalidCredentials
	}

	ttl := u.sessionTTL
	if remember {
		ttl = u.rememberTTL
	}
	token, err := u.tokens.IssueToken(acc.ID, ttl)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	if err := u.accounts.TouchLastSeen(ctx, acc.ID, now); err != nil {
		return nil, err
	}
	acc.LastSeen = now

	metrics.Scoring.LoginAttemptsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return &model.Session{Account: acc, Token: token, TTL: ttl, Persistent: remember}, nil
}

// ParseToken extracts account ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// CurrentAccount resolves the account a session token belongs to.
// Tokens of deleted or unknown accounts are reported as invalid.
func (u *AuthUseCase) CurrentAccount(ctx context.Context, token string) (*model.Account, error) {
	id, err := u.ParseToken(token)
	if err != nil {
		return nil, err
	}
	acc, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, pkgAuth.ErrInvalidToken
		}
		return nil, err
	}
	return acc, nil
}

// Touch stores the current time as the account's last activity.
func (u *AuthUseCase) Touch(ctx context.Context, accountID int64) error {
	return u.accounts.TouchLastSeen(ctx, accountID, u.now().UTC())
}

func validateUsername(username string) error {
	if username == "" || len(username) > maxUsernameLen {
		return domainErrors.ErrInvalidInput
	}
	return nil
}
