package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/polkiloo/creditscore/internal/domain/model"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing column")

var customerRequired = []string{"customer_id", "age", "occupation", "annual_income", "payment_behaviour"}

var recordRequired = []string{"customer_id", "month_no"}

// header maps normalized column names to their position.
type header map[string]int

func readHeader(r *csv.Reader, required []string) (header, error) {
	row, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	h := make(header, len(row))
	for i, name := range row {
		h[normalize(name)] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return h, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

func (h header) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(v string) bool {
	switch strings.ToLower(v) {
	case "", "na", "nan", "null", "none":
		return true
	}
	return false
}

func (h header) float(row []string, name string) (*float64, error) {
	v := h.get(row, name)
	if isBlank(v) {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", name, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("column %s: %q is not a finite number", name, v)
	}
	return &f, nil
}

// int accepts integral floats such as "3.0" as written by dataframe exports.
func (h header) int(row []string, name string) (*int64, error) {
	f, err := h.float(row, name)
	if err != nil || f == nil {
		return nil, err
	}
	n := int64(*f)
	if float64(n) != *f {
		return nil, fmt.Errorf("column %s: %v is not an integer", name, *f)
	}
	return &n, nil
}

func newReader(src io.Reader) *csv.Reader {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.ReuseRecord = true
	return r
}

// ReadCustomers parses a customers CSV with a header row.
func ReadCustomers(src io.Reader) ([]model.Customer, error) {
	r := newReader(src)
	h, err := readHeader(r, customerRequired)
	if err != nil {
		return nil, err
	}

	var customers []model.Customer
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		c := model.Customer{
			CustomerID:       h.get(row, "customer_id"),
			Occupation:       h.get(row, "occupation"),
			PaymentBehaviour: h.get(row, "payment_behaviour"),
		}
		if c.CustomerID == "" {
			return nil, fmt.Errorf("line %d: empty customer_id", line)
		}

		age, err := h.float(row, "age")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		income, err := h.float(row, "annual_income")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if age == nil || income == nil {
			return nil, fmt.Errorf("line %d: age and annual_income are required", line)
		}
		c.Age, c.AnnualIncome = *age, *income

		customers = append(customers, c)
	}
	return customers, nil
}

// ReadRecords parses a monthly credit records CSV with a header row.
// Empty and NA metric cells become nil.
func ReadRecords(src io.Reader) ([]model.CreditRecord, error) {
	r := newReader(src)
	h, err := readHeader(r, recordRequired)
	if err != nil {
		return nil, err
	}

	var records []model.CreditRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := h.record(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (h header) record(row []string) (model.CreditRecord, error) {
	rec := model.CreditRecord{CustomerID: h.get(row, "customer_id")}
	if rec.CustomerID == "" {
		return rec, errors.New("empty customer_id")
	}

	monthNo, err := h.int(row, "month_no")
	if err != nil {
		return rec, err
	}
	if monthNo == nil {
		return rec, errors.New("empty month_no")
	}
	rec.MonthNo = *monthNo

	ints := []struct {
		name string
		dst  **int64
	}{
		{"month", &rec.Month},
		{"num_credit_card", &rec.NumCreditCard},
		{"delay_from_due_date", &rec.DelayFromDueDate},
		{"num_of_delayed_payment", &rec.NumOfDelayedPayment},
		{"num_credit_inquiries", &rec.NumCreditInquiries},
	}
	for _, col := range ints {
		if *col.dst, err = h.int(row, col.name); err != nil {
			return rec, err
		}
	}

	floats := []struct {
		name string
		dst  **float64
	}{
		{"num_bank_accounts", &rec.NumBankAccounts},
		{"interest_rate", &rec.InterestRate},
		{"num_of_loan", &rec.NumOfLoan},
		{"changed_credit_limit", &rec.ChangedCreditLimit},
		{"outstanding_debt", &rec.OutstandingDebt},
		{"credit_utilization_ratio", &rec.CreditUtilizationRatio},
		{"total_emi_per_month", &rec.TotalEMIPerMonth},
		{"amount_invested_monthly", &rec.AmountInvestedMonthly},
	}
	for _, col := range floats {
		if *col.dst, err = h.float(row, col.name); err != nil {
			return rec, err
		}
	}

	return rec, nil
}
