package app

import (
	"context"
	"net/url"

	"github.com/polkiloo/creditscore/internal/domain/model"
	"github.com/polkiloo/creditscore/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CreditFacade exposes the use cases behind the HTTP layer.
type CreditFacade struct {
	auth        *usecase.AuthUseCase
	profiles    *usecase.ProfileUseCase
	reports     *usecase.ReportUseCase
	predictions *usecase.PredictUseCase
	health      HealthChecker
}

func NewCreditFacade(auth *usecase.AuthUseCase, profiles *usecase.ProfileUseCase, reports *usecase.ReportUseCase, predictions *usecase.PredictUseCase, health HealthChecker) *CreditFacade {
	return &CreditFacade{auth: auth, profiles: profiles, reports: reports, predictions: predictions, health: health}
}

func (f *CreditFacade) Register(ctx context.Context, username, email, password string) error {
	_, err := f.auth.Register(ctx, username, email, password)
	return err
}

func (f *CreditFacade) Authenticate(ctx context.Context, username, password string, remember bool) (*model.Session, error) {
	return f.auth.Authenticate(ctx, username, password, remember)
}

func (f *CreditFacade) CurrentAccount(ctx context.Context, token string) (*model.Account, error) {
	return f.auth.CurrentAccount(ctx, token)
}

func (f *CreditFacade) Touch(ctx context.Context, accountID int64) error {
	return f.auth.Touch(ctx, accountID)
}

func (f *CreditFacade) Profile(ctx context.Context, username string) (*model.Account, error) {
	return f.profiles.ByUsername(ctx, username)
}

func (f *CreditFacade) Rename(ctx context.Context, accountID int64, username string) error {
	return f.profiles.Rename(ctx, accountID, username)
}

func (f *CreditFacade) Report(ctx context.Context, customerID string) (*model.CreditReport, error) {
	return f.reports.Report(ctx, customerID)
}

func (f *CreditFacade) PredictionForm(ctx context.Context) (*model.PredictionForm, error) {
	return f.predictions.Form(ctx)
}

func (f *CreditFacade) Predict(ctx context.Context, form url.Values) (*model.PredictionResult, error) {
	return f.predictions.Predict(ctx, form)
}

func (f *CreditFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
