package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/domain/model"
)

var customerColumns = []string{"customer_id", "age", "occupation", "annual_income", "payment_behaviour"}

var recordColumns = []string{
	"customer_id", "month", "month_no",
	"num_bank_accounts", "num_credit_card", "interest_rate", "num_of_loan",
	"delay_from_due_date", "num_of_delayed_payment", "changed_credit_limit",
	"num_credit_inquiries", "outstanding_debt", "credit_utilization_ratio",
	"total_emi_per_month", "amount_invested_monthly",
}

type customerRepository struct {
	storage *Storage
}

type creditRecordRepository struct {
	storage *Storage
}

type creditImporter struct {
	storage *Storage
}

// --- CustomerRepository implementation ---

func (r *customerRepository) GetByCustomerID(ctx context.Context, customerID string) (*model.Customer, error) {
	const query = `SELECT id, customer_id, age, occupation, annual_income, payment_behaviour
                   FROM credit_customers WHERE customer_id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, customerID).Scan(&c.ID, &c.CustomerID, &c.Age, &c.Occupation, &c.AnnualIncome, &c.PaymentBehaviour)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- CreditRecordRepository implementation ---

func (r *creditRecordRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.CreditRecord, error) {
	const query = `SELECT id, customer_id, month, month_no,
                          num_bank_accounts, num_credit_card, interest_rate, num_of_loan,
                          delay_from_due_date, num_of_delayed_payment, changed_credit_limit,
                          num_credit_inquiries, outstanding_debt, credit_utilization_ratio,
                          total_emi_per_month, amount_invested_monthly
                   FROM monthly_credit_records WHERE customer_id=$1 ORDER BY month_no, id`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.CreditRecord, 0)
	for rows.Next() {
		var rec model.CreditRecord
		if err := rows.Scan(
			&rec.ID, &rec.CustomerID, &rec.Month, &rec.MonthNo,
			&rec.NumBankAccounts, &rec.NumCreditCard, &rec.InterestRate, &rec.NumOfLoan,
			&rec.DelayFromDueDate, &rec.NumOfDelayedPayment, &rec.ChangedCreditLimit,
			&rec.NumCreditInquiries, &rec.OutstandingDebt, &rec.CreditUtilizationRatio,
			&rec.TotalEMIPerMonth, &rec.AmountInvestedMonthly,
		); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- CreditImporter implementation ---

func (r *creditImporter) Import(ctx context.Context, customers []model.Customer, records []model.CreditRecord) (model.ImportSummary, error) {
	var summary model.ImportSummary
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if len(customers) > 0 {
			n, err := tx.CopyFrom(ctx, pgx.Identifier{"credit_customers"}, customerColumns,
				pgx.CopyFromSlice(len(customers), func(i int) ([]any, error) {
					c := customers[i]
					return []any{c.CustomerID, c.Age, c.Occupation, c.AnnualIncome, c.PaymentBehaviour}, nil
				}))
			if err != nil {
				if isUniqueViolation(err) {
					return domainErrors.ErrAlreadyExists
				}
				return fmt.Errorf("copy customers: %w", err)
			}
			summary.Customers = n
		}

		if len(records) > 0 {
			n, err := tx.CopyFrom(ctx, pgx.Identifier{"monthly_credit_records"}, recordColumns,
				pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
					rec := records[i]
					return []any{
						rec.CustomerID, rec.Month, rec.MonthNo,
						rec.NumBankAccounts, rec.NumCreditCard, rec.InterestRate, rec.NumOfLoan,
						rec.DelayFromDueDate, rec.NumOfDelayedPayment, rec.ChangedCreditLimit,
						rec.NumCreditInquiries, rec.OutstandingDebt, rec.CreditUtilizationRatio,
						rec.TotalEMIPerMonth, rec.AmountInvestedMonthly,
					}, nil
				}))
			if err != nil {
				return fmt.Errorf("copy credit records: %w", err)
			}
			summary.Records = n
		}
		return nil
	})
	if err != nil {
		return model.ImportSummary{}, err
	}

	if r.storage.logger != nil {
		r.storage.logger.Info("credit data imported",
			slog.Int64("customers", summary.Customers),
			slog.Int64("records", summary.Records),
		)
	}
	return summary, nil
}
