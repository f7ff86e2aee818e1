package model

import (
	"testing"
	"time"
)

func TestBookingFromDocumentLegacyAliases(t *testing.T) {
	doc := Document{
		"Customer": "Alice Wonderland",
		"email":    "alice@example.com",
		"date":     "2025-08-10",
		"time":     "10:00",
		"address":  "123 Rabbit Hole",
	}
	b := BookingFromDocument("abc", doc)
	if b.FullName != "Alice Wonderland" {
		t.Errorf("FullName = %q", b.FullName)
	}
	if b.PickupDate != "2025-08-10" || b.PickupTime != "10:00" {
		t.Errorf("pickup fields = %q %q", b.PickupDate, b.PickupTime)
	}
	if b.Status != BookingPending {
		t.Errorf("missing status should default to pending, got %q", b.Status)
	}
}

func TestBookingFromDocumentPrefersCanonicalNames(t *testing.T) {
	doc := Document{
		"fullName":   "Canonical Name",
		"customers":  "Legacy Name",
		"pickupDate": "2025-09-01",
		"date":       "2020-01-01",
	}
	b := BookingFromDocument("abc", doc)
	if b.FullName != "Canonical Name" {
		t.Errorf("canonical name should win, got %q", b.FullName)
	}
	if b.PickupDate != "2025-09-01" {
		t.Errorf("canonical date should win, got %q", b.PickupDate)
	}
}

func TestOrderFromDocumentLegacyFileID(t *testing.T) {
	doc := Document{
		"customers":   "John Doe",
		"email":       "john@example.com",
		"items":       "wash-fold",
		"quantity":    float64(5),
		"total":       12.5,
		"fileId":      "file-123",
		"createdDate": "2025-08-01T09:00:00Z",
	}
	o := OrderFromDocument("1001", doc)
	if o.CustomerName != "John Doe" || o.ServiceType != "wash-fold" {
		t.Errorf("legacy aliases not decoded: %+v", o)
	}
	if len(o.FileIDs) != 1 || o.FileIDs[0] != "file-123" {
		t.Errorf("single legacy fileId should wrap into a slice, got %v", o.FileIDs)
	}
	want := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	if !o.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v", o.CreatedAt)
	}
}

func TestBookingDocumentRoundTrip(t *testing.T) {
	in := Booking{
		ID:         "2001",
		FullName:   "Bob The Builder",
		Email:      "bob@example.com",
		Phone:      "0801234567",
		PickupDate: "2025-08-20",
		PickupTime: "14:30",
		Address:    "456 Construction Site",
		Status:     BookingConfirmed,
		CreatedAt:  time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC),
	}
	out := BookingFromDocument(in.ID, in.Document())
	if out != in {
		t.Errorf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestCustomerFromDocumentOptionalLastOrder(t *testing.T) {
	c := CustomerFromDocument("1", Document{"name": "Jane", "email": "jane@example.com"})
	if c.LastOrder != nil {
		t.Errorf("absent lastOrder should decode as nil, got %v", c.LastOrder)
	}
	c = CustomerFromDocument("1", Document{"lastOrder": "2025-08-01T09:00:00Z"})
	if c.LastOrder == nil || !c.LastOrder.Equal(time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("lastOrder not decoded: %v", c.LastOrder)
	}
}
