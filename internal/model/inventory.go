package model

import "time"

// InventoryItem is a stocked supply (detergent, softener, bags, …)
// tracked on the admin dashboard.
//
// Fields:
//  ID        – record identifier.
//  Name      – display name.
//  Category  – grouping key for the inventory grid.
//  Quantity  – units on hand.
//  MinStock  – threshold below which the item is flagged low.
//  Image     – optional inline image (data URL) or image path.
//  CreatedAt – creation timestamp; preserved on edits.
type InventoryItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	MinStock  int       `json:"minStock"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LowStock reports whether the quantity on hand has reached the
// minimum-stock threshold.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStock
}
