package service

import (
	"context"
	"sync"
	"time"

	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/repository"
)

// CustomerLedger maintains the one-record-per-email customer list.
// Every accepted booking or order flows through RecordActivity, which
// either creates a customer or bumps the counters on the existing one.
// The mutex serialises the find-then-write pair so two submissions for
// the same new email cannot race into duplicate records in-process.
type CustomerLedger struct {
	mu        sync.Mutex
	customers *repository.CustomerRepo
}

// NewCustomerLedger returns a ledger over the customer repository.
func NewCustomerLedger(customers *repository.CustomerRepo) *CustomerLedger {
	return &CustomerLedger{customers: customers}
}

// RecordActivity attributes one submission to the customer identified
// by email.  A new record starts with TotalOrders 1; an existing one
// is incremented, its LastOrder advanced, and its name refreshed to
// the latest submission.  An empty phone never overwrites a known one.
func (l *CustomerLedger) RecordActivity(ctx context.Context, name, email, phone string, at time.Time) (model.Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, err := l.customers.FindByEmail(ctx, email)
	if err == repository.ErrNotFound {
		return l.customers.Create(ctx, model.Customer{
			Name:        name,
			Email:       email,
			Phone:       phone,
			TotalOrders: 1,
			LastOrder:   &at,
			CreatedAt:   at,
		})
	}
	if err != nil {
		return model.Customer{}, err
	}

	existing.Name = name
	existing.TotalOrders++
	existing.LastOrder = &at
	if phone != "" {
		existing.Phone = phone
	}
	return l.customers.Update(ctx, existing.ID, existing)
}
