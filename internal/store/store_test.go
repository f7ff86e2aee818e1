package store

import (
	"testing"
	"time"

	"github.com/joacia/laundry-service/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", "joacia")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedOnFirstLoad(t *testing.T) {
	s := openTestStore(t)

	bookings, err := s.Bookings()
	if err != nil {
		t.Fatalf("load bookings: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("expected 3 seeded bookings, got %d", len(bookings))
	}
	if bookings[0].FullName != "Alice Wonderland" || bookings[0].Status != model.BookingPending {
		t.Errorf("unexpected first seed booking: %+v", bookings[0])
	}

	inv, err := s.Inventory()
	if err != nil {
		t.Fatalf("load inventory: %v", err)
	}
	if len(inv) != 6 {
		t.Fatalf("expected 6 seeded inventory items, got %d", len(inv))
	}
	// Hangers: 8 on hand against a minimum of 20.
	if !inv[5].LowStock() {
		t.Error("expected Hangers to be flagged low stock")
	}
	if inv[0].LowStock() {
		t.Error("Premium Detergent should not be low stock")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Orders()
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := s.Orders()
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("seed duplicated: %d then %d records", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("record %d changed between loads: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	s := openTestStore(t)

	created := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	in := []model.Order{
		{ID: "9001", CustomerName: "Zed", CustomerEmail: "zed@x.com", ServiceType: model.ServiceIroning,
			Quantity: 1.5, Total: 5.25, Status: model.OrderPending, CreatedAt: created},
		{ID: "9000", CustomerName: "Amy", CustomerEmail: "amy@x.com", ServiceType: model.ServiceWashFold,
			Quantity: 3, Total: 7.5, Status: model.OrderCompleted, Attachments: []string{"data:image/png;base64,AAAA"},
			CreatedAt: created.Add(time.Hour)},
	}
	if err := s.SaveOrders(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.Orders()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d records, got %d", len(in), len(out))
	}
	// Order and field values must survive unchanged.
	for i := range in {
		if out[i].ID != in[i].ID || out[i].CustomerName != in[i].CustomerName ||
			out[i].Quantity != in[i].Quantity || out[i].Total != in[i].Total ||
			!out[i].CreatedAt.Equal(in[i].CreatedAt) {
			t.Errorf("record %d mismatch: got %+v want %+v", i, out[i], in[i])
		}
	}
	if len(out[1].Attachments) != 1 || out[1].Attachments[0] != in[1].Attachments[0] {
		t.Errorf("attachments lost in round trip: %+v", out[1].Attachments)
	}
}

func TestLastWriteWins(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveCustomers([]model.Customer{{ID: "a", Name: "A", Email: "a@x.com"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveCustomers([]model.Customer{{ID: "b", Name: "B", Email: "b@x.com"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.Customers()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("expected only the second write to survive, got %+v", out)
	}
}

func TestSettings(t *testing.T) {
	s := openTestStore(t)

	type settings struct {
		BusinessName string  `json:"businessName"`
		WashFold     float64 `json:"washFold"`
	}

	var empty settings
	if err := s.Settings(&empty); err != nil {
		t.Fatalf("load absent settings: %v", err)
	}
	if empty.BusinessName != "" {
		t.Errorf("absent settings should decode as zero value, got %+v", empty)
	}

	if err := s.SaveSettings(settings{BusinessName: "Joacia", WashFold: 2.75}); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	var got settings
	if err := s.Settings(&got); err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got.BusinessName != "Joacia" || got.WashFold != 2.75 {
		t.Errorf("settings round trip mismatch: %+v", got)
	}
}
