package repository

import (
	"context"

	"github.com/polkiloo/creditscore/internal/domain/model"
)

// CustomerRepository gives read access to scored customers.
type CustomerRepository interface {
	GetByCustomerID(ctx context.Context, customerID string) (*model.Customer, error)
}

// CreditRecordRepository gives read access to monthly credit history.
type CreditRecordRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]model.CreditRecord, error)
}

// CreditImporter writes customers and their history in a single transaction.
type CreditImporter interface {
	Import(ctx context.Context, customers []model.Customer, records []model.CreditRecord) (model.ImportSummary, error)
}
