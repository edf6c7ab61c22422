package test

import (
	"context"
	"net/url"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/domain/model"
	pkgAuth "github.com/polkiloo/creditscore/internal/pkg/auth"
)

// SessionFacadeStub resolves session tokens for middleware tests.
type SessionFacadeStub struct {
	CurrentFn func(context.Context, string) (*model.Account, error)
	TouchFn   func(context.Context, int64) error
	Touched   []int64
}

// CurrentAccount maps the literal token "valid" to account 1.
func (s *SessionFacadeStub) CurrentAccount(ctx context.Context, token string) (*model.Account, error) {
	if s.CurrentFn != nil {
		return s.CurrentFn(ctx, token)
	}
	if token != "valid" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return &model.Account{ID: 1, Username: "alice", Email: "alice@example.com"}, nil
}

// Touch records the account identifier.
func (s *SessionFacadeStub) Touch(ctx context.Context, accountID int64) error {
	s.Touched = append(s.Touched, accountID)
	if s.TouchFn != nil {
		return s.TouchFn(ctx, accountID)
	}
	return nil
}

// AuthFacadeStub simulates registration and login.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) error
	AuthenticateFn func(context.Context, string, string, bool) (*model.Session, error)
}

// Register succeeds unless overridden.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	return nil
}

// Authenticate accepts alice/secret and rejects everything else.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string, remember bool) (*model.Session, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password, remember)
	}
	if username != "alice" || password != "secret" {
		return nil, domainErrors.ErrInvalidCredentials
	}
	return &model.Session{
		Account:    &model.Account{ID: 1, Username: "alice"},
		Token:      "valid",
		Persistent: remember,
	}, nil
}

// ProfileFacadeStub serves profiles and renames.
type ProfileFacadeStub struct {
	ProfileFn func(context.Context, string) (*model.Account, error)
	RenameFn  func(context.Context, int64, string) error
}

// Profile returns alice or not found.
func (s ProfileFacadeStub) Profile(ctx context.Context, username string) (*model.Account, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, username)
	}
	if username != "alice" {
		return nil, domainErrors.ErrNotFound
	}
	return &model.Account{ID: 1, Username: "alice", Email: "alice@example.com"}, nil
}

// Rename succeeds unless overridden.
func (s ProfileFacadeStub) Rename(ctx context.Context, accountID int64, username string) error {
	if s.RenameFn != nil {
		return s.RenameFn(ctx, accountID, username)
	}
	return nil
}

// ReportFacadeStub serves credit reports.
type ReportFacadeStub struct {
	ReportFn func(context.Context, string) (*model.CreditReport, error)
}

// Report returns a two month report for CUS_1 and not found otherwise.
func (s ReportFacadeStub) Report(ctx context.Context, customerID string) (*model.CreditReport, error) {
	if s.ReportFn != nil {
		return s.ReportFn(ctx, customerID)
	}
	if customerID != "CUS_1" {
		return nil, domainErrors.ErrNotFound
	}
	debt := 809.98
	return &model.CreditReport{
		Customer: model.Customer{CustomerID: "CUS_1", Occupation: "Scientist", Age: 23, AnnualIncome: 19114.12},
		Records: []model.CreditRecord{
			{ID: 1, CustomerID: "CUS_1", MonthNo: 1, OutstandingDebt: &debt},
			{ID: 2, CustomerID: "CUS_1", MonthNo: 2},
		},
	}, nil
}

// PredictFacadeStub serves the prediction form and results.
type PredictFacadeStub struct {
	FormFn    func(context.Context) (*model.PredictionForm, error)
	PredictFn func(context.Context, url.Values) (*model.PredictionResult, error)
}

// PredictionForm returns a small form definition.
func (s PredictFacadeStub) PredictionForm(ctx context.Context) (*model.PredictionForm, error) {
	if s.FormFn != nil {
		return s.FormFn(ctx)
	}
	return &model.PredictionForm{
		Numerical: []string{"Annual_Income"},
		Categories: []model.CategoryOptions{
			{Name: "Occupation", Values: []string{"Engineer", "Lawyer"}},
		},
	}, nil
}

// Predict returns a Good prediction.
func (s PredictFacadeStub) Predict(ctx context.Context, form url.Values) (*model.PredictionResult, error) {
	if s.PredictFn != nil {
		return s.PredictFn(ctx, form)
	}
	return &model.PredictionResult{
		Prediction: model.NewPrediction(model.CreditScoreGood),
		Numerical:  []string{"Annual_Income"},
	}, nil
}

// HealthCheckerStub reports configured health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// CreditFacadeStub aggregates facade dependencies for HTTP layer tests.
type CreditFacadeStub struct {
	*SessionFacadeStub
	AuthFacadeStub
	ProfileFacadeStub
	ReportFacadeStub
	PredictFacadeStub
	HealthCheckerStub
}

// NewCreditFacadeStub builds a stub with default behaviour everywhere.
func NewCreditFacadeStub() *CreditFacadeStub {
	return &CreditFacadeStub{SessionFacadeStub: &SessionFacadeStub{}}
}
