package service

import (
	"context"
	"fmt"
	"time"

	"github.com/joacia/laundry-service/internal/intake"
	"github.com/joacia/laundry-service/internal/metrics"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/pricing"
	"github.com/joacia/laundry-service/internal/queue"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/validate"
)

// OrderService runs the order intake workflow: validation, attachment
// screening and upload, price derivation, persistence, customer
// attribution and event publishing.
type OrderService struct {
	orders      *repository.OrderRepo
	files       *intake.Pipeline
	ledger      *CustomerLedger
	adminRates  pricing.Table
	publicRates pricing.Table
}

// NewOrderService wires an OrderService with the two price lists.
func NewOrderService(orders *repository.OrderRepo, files *intake.Pipeline, ledger *CustomerLedger, adminRates, publicRates pricing.Table) *OrderService {
	return &OrderService{
		orders:      orders,
		files:       files,
		ledger:      ledger,
		adminRates:  adminRates,
		publicRates: publicRates,
	}
}

// Quote prices a prospective public order without storing anything.
func (s *OrderService) Quote(serviceType string, quantity float64) float64 {
	return s.publicRates.Total(serviceType, quantity)
}

// Submit validates and stores an order.  The total is always derived
// here from the price list for the submitting surface; any total on
// the input is discarded.  Attachments are screened by MIME type:
// rejected files produce warnings but never fail the submission.
// Public submissions upload the first accepted file to blob storage;
// admin submissions keep all accepted files inline as data URLs.
func (s *OrderService) Submit(ctx context.Context, o model.Order, files []intake.File, source string) (model.Order, []string, validate.FieldErrors, error) {
	if fe := validate.Order(o); !fe.OK() {
		metrics.IncValidationFailure("order")
		return model.Order{}, nil, fe, nil
	}

	screened := intake.Screen(files)
	warnings := screened.Warnings()
	metrics.AddFilesRejected(len(screened.Rejected))

	if source == SourcePublic {
		o.Total = s.publicRates.Total(o.ServiceType, o.Quantity)
		id, err := s.files.UploadFirst(ctx, screened.Accepted)
		if err != nil {
			// Keep the order; the photo is best-effort context for the
			// cleaners, not part of the contract.
			metrics.IncGatewayError()
			warnings = append(warnings, "Image upload failed; order saved without it")
		} else if id != "" {
			o.FileIDs = []string{id}
		}
	} else {
		o.Total = s.adminRates.Total(o.ServiceType, o.Quantity)
		o.Attachments = intake.DataURLs(screened.Accepted)
	}

	if o.Status == "" {
		o.Status = model.OrderPending
	}
	now := time.Now()
	o.CreatedAt = now

	created, err := s.orders.Create(ctx, o)
	if err != nil {
		return model.Order{}, warnings, nil, err
	}
	metrics.IncSubmission("order")

	if _, err := s.ledger.RecordActivity(ctx, created.CustomerName, created.CustomerEmail, created.CustomerPhone, now); err != nil {
		metrics.IncGatewayError()
	}

	publishAsync(queue.RecordCreatedEvent{
		Entity:      "order",
		RecordID:    created.ID,
		Title:       "New Order",
		Description: fmt.Sprintf("%s ordered %s ×%g (₦%.2f)", created.CustomerName, created.ServiceType, created.Quantity, created.Total),
		Source:      source,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	})

	return created, warnings, nil, nil
}

// Reprice recomputes the total for an edited order using the admin
// price list; edits only happen on the dashboard.
func (s *OrderService) Reprice(o *model.Order) {
	o.Total = s.adminRates.Total(o.ServiceType, o.Quantity)
}
