package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/polkiloo/creditscore/internal/adapter/dataset"
	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/domain/model"
	"github.com/polkiloo/creditscore/internal/domain/repository"
)

// ImportUseCase bulk loads customers and monthly records from CSV.
type ImportUseCase struct {
	importer repository.CreditImporter
	logger   *slog.Logger
}

// NewImportUseCase constructs ImportUseCase.
func NewImportUseCase(importer repository.CreditImporter, logger *slog.Logger) *ImportUseCase {
	return &ImportUseCase{importer: importer, logger: logger}
}

// Import parses both sources and writes them in one transaction.
// Records must reference a customer from the same batch.
func (u *ImportUseCase) Import(ctx context.Context, customersSrc, recordsSrc io.Reader) (model.ImportSummary, error) {
	customers, err := dataset.ReadCustomers(customersSrc)
	if err != nil {
		return model.ImportSummary{}, fmt.Errorf("read customers: %w", err)
	}
	records, err := dataset.ReadRecords(recordsSrc)
	if err != nil {
		return model.ImportSummary{}, fmt.Errorf("read records: %w", err)
	}

	known := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		if _, dup := known[c.CustomerID]; dup {
			return model.ImportSummary{}, fmt.Errorf("customer %s listed twice: %w", c.CustomerID, domainErrors.ErrInvalidInput)
		}
		known[c.CustomerID] = struct{}{}
	}
	for i, r := range records {
		if _, ok := known[r.CustomerID]; !ok {
			return model.ImportSummary{}, fmt.Errorf("record %d references unknown customer %s: %w", i+1, r.CustomerID, domainErrors.ErrInvalidInput)
		}
	}

	summary, err := u.importer.Import(ctx, customers, records)
	if err != nil {
		return model.ImportSummary{}, err
	}
	u.logger.Info("credit dataset loaded",
		slog.Int64("customers", summary.Customers),
		slog.Int64("records", summary.Records),
	)
	return summary, nil
}
