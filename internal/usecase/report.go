package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/domain/model"
	"github.com/polkiloo/creditscore/internal/domain/repository"
	"github.com/polkiloo/creditscore/internal/metrics"
)

// ReportUseCase assembles per-customer credit history.
type ReportUseCase struct {
	customers repository.CustomerRepository
	records   repository.CreditRecordRepository
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(customers repository.CustomerRepository, records repository.CreditRecordRepository) *ReportUseCase {
	return &ReportUseCase{customers: customers, records: records}
}

// Report returns the customer and its records ordered by month number.
// Unknown or empty identifiers yield ErrNotFound.
func (u *ReportUseCase) Report(ctx context.Context, customerID string) (*model.CreditReport, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		metrics.Scoring.ReportsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
		return nil, domainErrors.ErrNotFound
	}

	customer, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			metrics.Scoring.ReportsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
		}
		return nil, err
	}

	records, err := u.records.ListByCustomer(ctx, customer.CustomerID)
	if err != nil {
		return nil, err
	}

	metrics.Scoring.ReportsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return &model.CreditReport{Customer: *customer, Records: records}, nil
}
