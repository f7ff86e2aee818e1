package validate

import (
	"testing"
	"time"

	"github.com/joacia/laundry-service/internal/model"
)

func TestEmail(t *testing.T) {
	valid := []string{"alice@x.com", "a.b@mail.example.org", "x+tag@y.co"}
	invalid := []string{"", "alice", "alice@", "@x.com", "a b@x.com", "a@x"}
	for _, e := range valid {
		if !Email(e) {
			t.Errorf("Email(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if Email(e) {
			t.Errorf("Email(%q) = true, want false", e)
		}
	}
}

func TestPhone(t *testing.T) {
	valid := []string{"08012345678", "+2348012345678", "0801 234 5678", "0801-234-5678"}
	invalid := []string{"", "8012345678", "0801234567", "080123456789", "+1 555 123 4567"}
	for _, p := range valid {
		if !Phone(p) {
			t.Errorf("Phone(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if Phone(p) {
			t.Errorf("Phone(%q) = true, want false", p)
		}
	}
}

func TestPastDate(t *testing.T) {
	now := time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)
	if PastDate("2025-08-20", now) {
		t.Error("today must not count as past")
	}
	if PastDate("2025-08-21", now) {
		t.Error("tomorrow must not count as past")
	}
	if !PastDate("2025-08-19", now) {
		t.Error("yesterday must count as past")
	}
	if !PastDate("not-a-date", now) {
		t.Error("unparseable date must fail validation")
	}
}

func validBooking(date string) model.Booking {
	return model.Booking{
		FullName:   "Alice",
		Email:      "alice@x.com",
		Phone:      "08012345678",
		PickupDate: date,
		PickupTime: "10:00",
		Address:    "123 Rd",
	}
}

func TestBooking(t *testing.T) {
	now := time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)

	if fe := Booking(validBooking("2025-08-21"), now); !fe.OK() {
		t.Fatalf("expected valid booking, got %v", fe)
	}

	fe := Booking(validBooking("2025-08-19"), now)
	if fe.OK() {
		t.Fatal("expected past pickup date to fail")
	}
	if fe["pickupDate"] != "Pickup date cannot be in the past" {
		t.Errorf("unexpected pickupDate message: %q", fe["pickupDate"])
	}

	b := validBooking("2025-08-21")
	b.Email = "nope"
	b.Address = ""
	fe = Booking(b, now)
	if fe["email"] == "" || fe["address"] == "" {
		t.Errorf("expected email and address errors, got %v", fe)
	}
}

func TestOrderQuantityBound(t *testing.T) {
	o := model.Order{
		CustomerName:  "Jane",
		CustomerEmail: "jane@x.com",
		ServiceType:   "dry-cleaning",
	}
	for _, q := range []float64{0, 0.25, 0.49} {
		o.Quantity = q
		if fe := Order(o); fe["quantity"] == "" {
			t.Errorf("quantity %v should be rejected", q)
		}
	}
	for _, q := range []float64{0.5, 1, 3.5} {
		o.Quantity = q
		if fe := Order(o); !fe.OK() {
			t.Errorf("quantity %v should be accepted, got %v", q, fe)
		}
	}
}
