package repository

import (
	"context"

	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/store"
)

// InventoryRepo provides CRUD operations for inventory items.
// Inventory was never migrated to the hosted backend; it lives
// entirely in the local draft store.  Context is accepted for
// interface symmetry with the other repositories.
type InventoryRepo struct {
	drafts *store.Store
}

// NewInventoryRepo returns an InventoryRepo over the draft store.
func NewInventoryRepo(drafts *store.Store) *InventoryRepo {
	return &InventoryRepo{drafts: drafts}
}

// List returns all inventory items.
func (r *InventoryRepo) List(_ context.Context) ([]model.InventoryItem, error) {
	return r.drafts.Inventory()
}

// Get returns the item with the given identifier.
func (r *InventoryRepo) Get(_ context.Context, id string) (model.InventoryItem, error) {
	items, err := r.drafts.Inventory()
	if err != nil {
		return model.InventoryItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.InventoryItem{}, ErrNotFound
}

// Create stores a new item with a freshly generated identifier.
func (r *InventoryRepo) Create(_ context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	items, err := r.drafts.Inventory()
	if err != nil {
		return model.InventoryItem{}, err
	}
	item.ID = newDraftID()
	items = append(items, item)
	return item, r.drafts.SaveInventory(items)
}

// Update replaces the stored item fields for id.
func (r *InventoryRepo) Update(_ context.Context, id string, item model.InventoryItem) (model.InventoryItem, error) {
	items, err := r.drafts.Inventory()
	if err != nil {
		return model.InventoryItem{}, err
	}
	item.ID = id
	found := false
	for i := range items {
		if items[i].ID == id {
			items[i] = item
			found = true
			break
		}
	}
	if !found {
		return model.InventoryItem{}, ErrNotFound
	}
	return item, r.drafts.SaveInventory(items)
}

// Delete removes the item with the given identifier.
func (r *InventoryRepo) Delete(_ context.Context, id string) error {
	items, err := r.drafts.Inventory()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return ErrNotFound
	}
	return r.drafts.SaveInventory(kept)
}

// ByCategory groups items for the inventory grid, keyed by category.
func ByCategory(items []model.InventoryItem) map[string][]model.InventoryItem {
	grouped := make(map[string][]model.InventoryItem)
	for _, it := range items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	return grouped
}
