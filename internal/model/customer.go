package model

import "time"

// Customer aggregates activity for a single contact email.  At most
// one customer record exists per email; submissions with a matching
// email increment TotalOrders and advance LastOrder instead of
// creating a second record.
//
// Fields:
//  ID          – record identifier.
//  Name        – customer name as last submitted.
//  Email       – natural key for de-duplication.
//  Phone       – contact number; filled in later if first seen empty.
//  TotalOrders – number of bookings/orders attributed to this email.
//  LastOrder   – timestamp of the most recent attributed submission.
//  CreatedAt   – when the record was first created.
type Customer struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	TotalOrders int        `json:"totalOrders"`
	LastOrder   *time.Time `json:"lastOrder,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
