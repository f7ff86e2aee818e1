package repository

import (
	"context"
	"strings"

	"github.com/joacia/laundry-service/internal/gateway"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/store"
)

// CustomerRepo provides CRUD operations for customers.  The email
// address acts as the natural key: FindByEmail supports the
// upsert-by-email performed on every booking/order submission.
type CustomerRepo struct {
	gw         *gateway.Client
	database   string
	collection string
	drafts     *store.Store
}

// NewCustomerRepo returns a CustomerRepo bound to the given backend
// collection and draft store.
func NewCustomerRepo(gw *gateway.Client, databaseID, collectionID string, drafts *store.Store) *CustomerRepo {
	return &CustomerRepo{gw: gw, database: databaseID, collection: collectionID, drafts: drafts}
}

func (r *CustomerRepo) remote() bool { return r.gw.Configured() }

// List returns all customers.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	if !r.remote() {
		return r.drafts.Customers()
	}
	docs, err := r.gw.ListDocuments(ctx, r.database, r.collection)
	if err != nil {
		return nil, err
	}
	out := make([]model.Customer, 0, len(docs))
	for _, d := range docs {
		out = append(out, model.CustomerFromDocument(d.ID, d.Data))
	}
	return out, nil
}

// FindByEmail returns the customer whose email matches, ignoring
// case.  Returns ErrNotFound when no record matches.
func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	customers, err := r.List(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	for _, c := range customers {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return model.Customer{}, ErrNotFound
}

// Create stores a new customer and returns it with its identifier
// assigned.
func (r *CustomerRepo) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if !r.remote() {
		customers, err := r.drafts.Customers()
		if err != nil {
			return model.Customer{}, err
		}
		c.ID = newDraftID()
		customers = append(customers, c)
		return c, r.drafts.SaveCustomers(customers)
	}
	doc, err := r.gw.CreateDocument(ctx, r.database, r.collection, c.Document())
	if err != nil {
		return model.Customer{}, err
	}
	c.ID = doc.ID
	return c, nil
}

// Update replaces the stored customer fields for id.
func (r *CustomerRepo) Update(ctx context.Context, id string, c model.Customer) (model.Customer, error) {
	c.ID = id
	if !r.remote() {
		customers, err := r.drafts.Customers()
		if err != nil {
			return model.Customer{}, err
		}
		found := false
		for i := range customers {
			if customers[i].ID == id {
				customers[i] = c
				found = true
				break
			}
		}
		if !found {
			return model.Customer{}, ErrNotFound
		}
		return c, r.drafts.SaveCustomers(customers)
	}
	doc, err := r.gw.UpdateDocument(ctx, r.database, r.collection, id, c.Document())
	if err != nil {
		if gateway.IsNotFound(err) {
			return model.Customer{}, ErrNotFound
		}
		return model.Customer{}, err
	}
	return model.CustomerFromDocument(doc.ID, doc.Data), nil
}

// Delete removes the customer with the given identifier.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	if !r.remote() {
		customers, err := r.drafts.Customers()
		if err != nil {
			return err
		}
		kept := customers[:0]
		for _, c := range customers {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(customers) {
			return ErrNotFound
		}
		return r.drafts.SaveCustomers(kept)
	}
	if err := r.gw.DeleteDocument(ctx, r.database, r.collection, id); err != nil {
		if gateway.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
