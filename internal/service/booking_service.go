package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joacia/laundry-service/internal/metrics"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/queue"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/utils"
	"github.com/joacia/laundry-service/internal/validate"
)

// ErrOrderNotFound is returned when a public booking references an
// order identifier that does not exist.
var ErrOrderNotFound = errors.New("referenced order not found")

// Submission sources, carried on published events so the activity log
// distinguishes walk-in traffic from operator entry.
const (
	SourcePublic = "public"
	SourceAdmin  = "admin"
)

// BookingService runs the booking intake workflow: validation, the
// order-reference gate, persistence, customer attribution and event
// publishing.
type BookingService struct {
	bookings *repository.BookingRepo
	orders   *repository.OrderRepo
	ledger   *CustomerLedger
}

// NewBookingService wires a BookingService.
func NewBookingService(bookings *repository.BookingRepo, orders *repository.OrderRepo, ledger *CustomerLedger) *BookingService {
	return &BookingService{bookings: bookings, orders: orders, ledger: ledger}
}

// Submit validates and stores a booking.  On validation failure the
// field errors are returned and nothing is written.  When the booking
// references an order, the order must exist and its contact details
// take precedence over the caller's: only the pickup fields are
// accepted from the form.  A successful submission also updates the
// customer ledger and publishes a record.created event; failures in
// either are logged via their own paths and never fail the
// submission.
func (s *BookingService) Submit(ctx context.Context, b model.Booking, source string) (model.Booking, validate.FieldErrors, error) {
	now := time.Now()

	if b.OrderID != "" {
		order, err := s.orders.Get(ctx, b.OrderID)
		if err != nil {
			if err == repository.ErrNotFound {
				return model.Booking{}, nil, ErrOrderNotFound
			}
			return model.Booking{}, nil, err
		}
		b.FullName = order.CustomerName
		b.Email = order.CustomerEmail
		if order.CustomerPhone != "" {
			b.Phone = order.CustomerPhone
		}
	}

	if fe := validate.Booking(b, now); !fe.OK() {
		metrics.IncValidationFailure("booking")
		return model.Booking{}, fe, nil
	}

	if b.Status == "" {
		b.Status = model.BookingPending
	}
	b.CreatedAt = now

	created, err := s.bookings.Create(ctx, b)
	if err != nil {
		return model.Booking{}, nil, err
	}
	metrics.IncSubmission("booking")

	if _, err := s.ledger.RecordActivity(ctx, created.FullName, created.Email, created.Phone, now); err != nil {
		// The booking itself is already saved; customer attribution can
		// catch up on the next submission.
		metrics.IncGatewayError()
	}

	publishAsync(queue.RecordCreatedEvent{
		Entity:      "booking",
		RecordID:    created.ID,
		Title:       "New Booking",
		Description: fmt.Sprintf("%s scheduled a pickup for %s at %s", created.FullName, utils.FormatDate(created.PickupDate), created.PickupTime),
		Source:      source,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	})

	return created, nil, nil
}

// publishAsync fires the event without blocking the request; the
// publisher logs its own failures.
func publishAsync(ev queue.RecordCreatedEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = PublishRecordCreated(ctx, ev)
	}()
}
