// Package repository provides CRUD access to the application's
// record collections.  Each repository writes through the remote
// record gateway when one is configured and falls back to the local
// draft store otherwise, so the same handlers serve both the hosted
// and the standalone deployment.
package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/joacia/laundry-service/internal/gateway"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/store"
)

// newDraftID issues an identifier for records created in the draft
// store.  Millisecond timestamps keep draft IDs unique enough for a
// single operator and sort in creation order.
func newDraftID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// BookingRepo provides CRUD operations for bookings.
type BookingRepo struct {
	gw         *gateway.Client
	database   string
	collection string
	drafts     *store.Store
}

// NewBookingRepo returns a BookingRepo bound to the given backend
// collection and draft store.
func NewBookingRepo(gw *gateway.Client, databaseID, collectionID string, drafts *store.Store) *BookingRepo {
	return &BookingRepo{gw: gw, database: databaseID, collection: collectionID, drafts: drafts}
}

func (r *BookingRepo) remote() bool { return r.gw.Configured() }

// List returns all bookings.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	if !r.remote() {
		return r.drafts.Bookings()
	}
	docs, err := r.gw.ListDocuments(ctx, r.database, r.collection)
	if err != nil {
		return nil, err
	}
	out := make([]model.Booking, 0, len(docs))
	for _, d := range docs {
		out = append(out, model.BookingFromDocument(d.ID, d.Data))
	}
	return out, nil
}

// Get returns the booking with the given identifier.
func (r *BookingRepo) Get(ctx context.Context, id string) (model.Booking, error) {
	if !r.remote() {
		bookings, err := r.drafts.Bookings()
		if err != nil {
			return model.Booking{}, err
		}
		for _, b := range bookings {
			if b.ID == id {
				return b, nil
			}
		}
		return model.Booking{}, ErrNotFound
	}
	doc, err := r.gw.GetDocument(ctx, r.database, r.collection, id)
	if err != nil {
		if gateway.IsNotFound(err) {
			return model.Booking{}, ErrNotFound
		}
		return model.Booking{}, err
	}
	return model.BookingFromDocument(doc.ID, doc.Data), nil
}

// Create stores a new booking and returns it with its identifier
// assigned.
func (r *BookingRepo) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
	if !r.remote() {
		bookings, err := r.drafts.Bookings()
		if err != nil {
			return model.Booking{}, err
		}
		b.ID = newDraftID()
		bookings = append(bookings, b)
		return b, r.drafts.SaveBookings(bookings)
	}
	doc, err := r.gw.CreateDocument(ctx, r.database, r.collection, b.Document())
	if err != nil {
		return model.Booking{}, err
	}
	b.ID = doc.ID
	return b, nil
}

// Update replaces the stored booking fields for id.
func (r *BookingRepo) Update(ctx context.Context, id string, b model.Booking) (model.Booking, error) {
	b.ID = id
	if !r.remote() {
		bookings, err := r.drafts.Bookings()
		if err != nil {
			return model.Booking{}, err
		}
		found := false
		for i := range bookings {
			if bookings[i].ID == id {
				bookings[i] = b
				found = true
				break
			}
		}
		if !found {
			return model.Booking{}, ErrNotFound
		}
		return b, r.drafts.SaveBookings(bookings)
	}
	doc, err := r.gw.UpdateDocument(ctx, r.database, r.collection, id, b.Document())
	if err != nil {
		if gateway.IsNotFound(err) {
			return model.Booking{}, ErrNotFound
		}
		return model.Booking{}, err
	}
	return model.BookingFromDocument(doc.ID, doc.Data), nil
}

// Delete removes the booking with the given identifier.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	if !r.remote() {
		bookings, err := r.drafts.Bookings()
		if err != nil {
			return err
		}
		kept := bookings[:0]
		for _, b := range bookings {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(bookings) {
			return ErrNotFound
		}
		return r.drafts.SaveBookings(kept)
	}
	if err := r.gw.DeleteDocument(ctx, r.database, r.collection, id); err != nil {
		if gateway.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
