package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests.
type AccountRepositoryStub struct {
	Accounts map[string]*model.Account
	ByID     map[int64]*model.Account
	Next     int64
	Err      error
	Touched  []int64

	TouchFn func(context.Context, int64, time.Time) error
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		Accounts: make(map[string]*model.Account),
		ByID:     make(map[int64]*model.Account),
		Next:     1,
	}
}

func (s *AccountRepositoryStub) init() {
	if s.Accounts == nil {
		s.Accounts = make(map[string]*model.Account)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Account)
	}
	if s.Next == 0 {
		s.Next = 1
	}
}

// Create registers account unless username or email is taken.
func (s *AccountRepositoryStub) Create(ctx context.Context, username, email, passwordHash string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.init()
	if _, exists := s.Accounts[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	for _, acc := range s.ByID {
		if acc.Email == email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	acc := &model.Account{ID: s.Next, Username: username, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Accounts[username] = acc
	s.ByID[acc.ID] = acc
	return acc, nil
}

// GetByUsername fetches account by username or returns not found.
func (s *AccountRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if acc, ok := s.Accounts[username]; ok {
		return acc, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches account by identifier or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if acc, ok := s.ByID[id]; ok {
		return acc, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateUsername renames an account keeping both indexes consistent.
func (s *AccountRepositoryStub) UpdateUsername(ctx context.Context, id int64, username string) error {
	if s.Err != nil {
		return s.Err
	}
	acc, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if other, exists := s.Accounts[username]; exists && other.ID != id {
		return domainErrors.ErrAlreadyExists
	}
	delete(s.Accounts, acc.Username)
	acc.Username = username
	s.Accounts[username] = acc
	return nil
}

// TouchLastSeen records the call and updates the stored timestamp.
func (s *AccountRepositoryStub) TouchLastSeen(ctx context.Context, id int64, at time.Time) error {
	if s.TouchFn != nil {
		return s.TouchFn(ctx, id, at)
	}
	if s.Err != nil {
		return s.Err
	}
	s.Touched = append(s.Touched, id)
	if acc, ok := s.ByID[id]; ok {
		acc.LastSeen = at
	}
	return nil
}

// CustomerRepositoryStub serves customers from a map keyed by customer_id.
type CustomerRepositoryStub struct {
	Customers map[string]model.Customer
	Err       error
}

// GetByCustomerID returns configured customer or not found.
func (s *CustomerRepositoryStub) GetByCustomerID(ctx context.Context, customerID string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.Customers[customerID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

// CreditRecordRepositoryStub serves records filtered and ordered like the database query.
type CreditRecordRepositoryStub struct {
	Records []model.CreditRecord
	Err     error
}

// ListByCustomer returns records of one customer ordered by month number then id.
func (s *CreditRecordRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.CreditRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.CreditRecord, 0)
	for _, r := range s.Records {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MonthNo != out[j].MonthNo {
			return out[i].MonthNo < out[j].MonthNo
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreditImporterStub records imported batches.
type CreditImporterStub struct {
	ImportFn  func(context.Context, []model.Customer, []model.CreditRecord) (model.ImportSummary, error)
	Customers []model.Customer
	Records   []model.CreditRecord
}

// Import stores the batch or delegates to override.
func (s *CreditImporterStub) Import(ctx context.Context, customers []model.Customer, records []model.CreditRecord) (model.ImportSummary, error) {
	if s.ImportFn != nil {
		return s.ImportFn(ctx, customers, records)
	}
	s.Customers = append(s.Customers, customers...)
	s.Records = append(s.Records, records...)
	return model.ImportSummary{Customers: int64(len(customers)), Records: int64(len(records))}, nil
}
