package model

import "time"

// Booking statuses as they move through the pickup lifecycle.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingPickedUp  = "picked-up"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking represents a scheduled laundry pickup.  A booking is
// created either from the public booking page (optionally bound to a
// previously placed order via OrderID) or from the admin dashboard.
// Status transitions are driven by the admin.
//
// Fields:
//  ID             – record identifier; issued by the document store on
//                   create, or generated locally for draft records.
//  FullName       – customer name.
//  Email          – contact email; also the customer natural key.
//  Phone          – primary contact number.
//  Whatsapp       – optional secondary contact number.
//  PickupDate     – calendar date of the pickup (YYYY-MM-DD).
//  PickupTime     – time-of-day slot (HH:MM) from the fixed slot set.
//  Address        – free-text pickup address.
//  AdditionalNote – optional note from the customer.
//  Status         – one of the Booking* constants above.
//  OrderID        – order this booking completes, if any.
//  CreatedAt      – creation timestamp; preserved on edits.
type Booking struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Whatsapp       string    `json:"whatsapp,omitempty"`
	PickupDate     string    `json:"pickupDate"`
	PickupTime     string    `json:"pickupTime"`
	Address        string    `json:"address"`
	AdditionalNote string    `json:"additionalNote,omitempty"`
	Status         string    `json:"status"`
	OrderID        string    `json:"orderId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
