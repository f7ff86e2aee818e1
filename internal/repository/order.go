package repository

import (
	"context"

	"github.com/joacia/laundry-service/internal/gateway"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/store"
)

// OrderRepo provides CRUD operations for orders.
type OrderRepo struct {
	gw         *gateway.Client
	database   string
	collection string
	drafts     *store.Store
}

// NewOrderRepo returns an OrderRepo bound to the given backend
// collection and draft store.
func NewOrderRepo(gw *gateway.Client, databaseID, collectionID string, drafts *store.Store) *OrderRepo {
	return &OrderRepo{gw: gw, database: databaseID, collection: collectionID, drafts: drafts}
}

func (r *OrderRepo) remote() bool { return r.gw.Configured() }

// List returns all orders.
func (r *OrderRepo) List(ctx context.Context) ([]model.Order, error) {
	if !r.remote() {
		return r.drafts.Orders()
	}
	docs, err := r.gw.ListDocuments(ctx, r.database, r.collection)
	if err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, model.OrderFromDocument(d.ID, d.Data))
	}
	return out, nil
}

// Get returns the order with the given identifier.  It backs the
// public order-lookup gate as well as the admin edit form.
func (r *OrderRepo) Get(ctx context.Context, id string) (model.Order, error) {
	if !r.remote() {
		orders, err := r.drafts.Orders()
		if err != nil {
			return model.Order{}, err
		}
		for _, o := range orders {
			if o.ID == id {
				return o, nil
			}
		}
		return model.Order{}, ErrNotFound
	}
	doc, err := r.gw.GetDocument(ctx, r.database, r.collection, id)
	if err != nil {
		if gateway.IsNotFound(err) {
			return model.Order{}, ErrNotFound
		}
		return model.Order{}, err
	}
	return model.OrderFromDocument(doc.ID, doc.Data), nil
}

// Create stores a new order and returns it with its identifier
// assigned.
func (r *OrderRepo) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if !r.remote() {
		orders, err := r.drafts.Orders()
		if err != nil {
			return model.Order{}, err
		}
		o.ID = newDraftID()
		orders = append(orders, o)
		return o, r.drafts.SaveOrders(orders)
	}
	doc, err := r.gw.CreateDocument(ctx, r.database, r.collection, o.Document())
	if err != nil {
		return model.Order{}, err
	}
	o.ID = doc.ID
	return o, nil
}

// Update replaces the stored order fields for id.
func (r *OrderRepo) Update(ctx context.Context, id string, o model.Order) (model.Order, error) {
	o.ID = id
	if !r.remote() {
		orders, err := r.drafts.Orders()
		if err != nil {
			return model.Order{}, err
		}
		found := false
		for i := range orders {
			if orders[i].ID == id {
				orders[i] = o
				found = true
				break
			}
		}
		if !found {
			return model.Order{}, ErrNotFound
		}
		return o, r.drafts.SaveOrders(orders)
	}
	doc, err := r.gw.UpdateDocument(ctx, r.database, r.collection, id, o.Document())
	if err != nil {
		if gateway.IsNotFound(err) {
			return model.Order{}, ErrNotFound
		}
		return model.Order{}, err
	}
	return model.OrderFromDocument(doc.ID, doc.Data), nil
}

// Delete removes the order with the given identifier.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	if !r.remote() {
		orders, err := r.drafts.Orders()
		if err != nil {
			return err
		}
		kept := orders[:0]
		for _, o := range orders {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		if len(kept) == len(orders) {
			return ErrNotFound
		}
		return r.drafts.SaveOrders(kept)
	}
	if err := r.gw.DeleteDocument(ctx, r.database, r.collection, id); err != nil {
		if gateway.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
