package handlers

import (
	"context"
	"net/url"

	"github.com/polkiloo/creditscore/internal/domain/model"
	"github.com/polkiloo/creditscore/internal/server/http/middleware"
)

// AuthFacade describes registration and login capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string) error
	Authenticate(ctx context.Context, username, password string, remember bool) (*model.Session, error)
}

// ProfileFacade exposes account profiles.
type ProfileFacade interface {
	Profile(ctx context.Context, username string) (*model.Account, error)
	Rename(ctx context.Context, accountID int64, username string) error
}

// ReportFacade exposes credit history lookups.
type ReportFacade interface {
	Report(ctx context.Context, customerID string) (*model.CreditReport, error)
}

// PredictFacade exposes the scoring model.
type PredictFacade interface {
	PredictionForm(ctx context.Context) (*model.PredictionForm, error)
	Predict(ctx context.Context, form url.Values) (*model.PredictionResult, error)
}

// HealthChecker reports readiness of backing services.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CreditFacade aggregates the full set of operations used across handlers.
type CreditFacade interface {
	middleware.SessionFacade
	AuthFacade
	ProfileFacade
	ReportFacade
	PredictFacade
	HealthChecker
}
