// Package queue defines message payloads exchanged over the message broker.
package queue

// RecordCreatedEvent is published whenever a booking or order is
// accepted, from either the public forms or the admin dashboard.  It
// carries enough for downstream consumers to log or notify without
// querying the record store.
type RecordCreatedEvent struct {
	Entity      string `json:"entity"`      // "booking" or "order"
	RecordID    string `json:"record_id"`   // identifier of the new record
	Title       string `json:"title"`       // activity headline, e.g. "New Booking"
	Description string `json:"description"` // one-line summary for the activity feed
	Source      string `json:"source"`      // "public" or "admin"
	CreatedAt   string `json:"created_at"`  // RFC3339 creation time
}
