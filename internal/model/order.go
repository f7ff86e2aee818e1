package model

import "time"

// Order statuses.
const (
	OrderPending    = "pending"
	OrderInProgress = "in-progress"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Service types driving price lookup.
const (
	ServiceWashFold    = "wash-fold"
	ServiceDryCleaning = "dry-cleaning"
	ServiceIroning     = "ironing"
)

// Order represents a laundry service order placed from the public
// order form or the admin dashboard.  Total is always derived from
// (ServiceType, Quantity) through the price table and is never edited
// independently.
//
// Fields:
//  ID            – record identifier (server-issued or draft-generated).
//  CustomerName  – customer name.
//  CustomerEmail – contact email; customer natural key.
//  CustomerPhone – contact number (public form only; optional).
//  ServiceType   – one of the Service* constants.
//  Quantity      – units of service; minimum 0.5.
//  Total         – ServiceType price × Quantity.
//  Instructions  – optional special instructions.
//  Status        – one of the Order* constants.
//  Attachments   – inline data-URL images (admin multi-file variant).
//  FileIDs       – remote blob identifiers (public single-upload variant).
//  CreatedAt     – creation timestamp; preserved on edits.
type Order struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	ServiceType   string    `json:"serviceType"`
	Quantity      float64   `json:"quantity"`
	Total         float64   `json:"total"`
	Instructions  string    `json:"instructions,omitempty"`
	Status        string    `json:"status"`
	Attachments   []string  `json:"attachments,omitempty"`
	FileIDs       []string  `json:"fileIds,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ActiveOrder reports whether the order still requires work, i.e. it
// is neither completed nor cancelled.
func (o Order) ActiveOrder() bool {
	return o.Status != OrderCompleted && o.Status != OrderCancelled
}
