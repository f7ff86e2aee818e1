package service

import (
	"context"
	"testing"
	"time"

	"github.com/joacia/laundry-service/internal/intake"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/pricing"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/store"
)

type env struct {
	bookings  *repository.BookingRepo
	orders    *repository.OrderRepo
	customers *repository.CustomerRepo
	ledger    *CustomerLedger
}

// newEnv builds the full service wiring over an in-memory draft store
// with no remote backend, so each test starts from the seed fixtures.
func newEnv(t *testing.T) env {
	t.Helper()
	drafts, err := store.Open(":memory:", "joacia")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { drafts.Close() })
	customers := repository.NewCustomerRepo(nil, "db", "customers", drafts)
	return env{
		bookings:  repository.NewBookingRepo(nil, "db", "bookings", drafts),
		orders:    repository.NewOrderRepo(nil, "db", "orders", drafts),
		customers: customers,
		ledger:    NewCustomerLedger(customers),
	}
}

func validBooking() model.Booking {
	return model.Booking{
		FullName:   "Grace Hopper",
		Email:      "grace@example.com",
		Phone:      "+2348012345678",
		PickupDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		PickupTime: "10:00",
		Address:    "1 Navy Way",
	}
}

func TestLedgerCreatesThenIncrements(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	now := time.Now()

	c, err := e.ledger.RecordActivity(ctx, "Grace Hopper", "grace@example.com", "", now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if c.TotalOrders != 1 {
		t.Errorf("new customer should start at 1 order, got %d", c.TotalOrders)
	}

	later := now.Add(time.Hour)
	c, err = e.ledger.RecordActivity(ctx, "Grace B. Hopper", "GRACE@example.com", "+2348012345678", later)
	if err != nil {
		t.Fatalf("record again: %v", err)
	}
	if c.TotalOrders != 2 {
		t.Errorf("repeat email should increment, got %d", c.TotalOrders)
	}
	if c.Name != "Grace B. Hopper" {
		t.Errorf("name should follow the latest submission, got %q", c.Name)
	}
	if c.Phone != "+2348012345678" {
		t.Errorf("phone should be filled in, got %q", c.Phone)
	}

	all, err := e.customers.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 { // 3 seeds + Grace
		t.Errorf("expected one new customer record, got %d total", len(all))
	}
}

func TestBookingSubmitValidates(t *testing.T) {
	e := newEnv(t)
	svc := NewBookingService(e.bookings, e.orders, e.ledger)

	_, fe, err := svc.Submit(context.Background(), model.Booking{Email: "not-an-email"}, SourcePublic)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if fe.OK() {
		t.Fatal("expected field errors")
	}
	if fe["email"] != "Please enter a valid email address" {
		t.Errorf("unexpected email error: %q", fe["email"])
	}

	before, _ := e.bookings.List(context.Background())
	if len(before) != 3 {
		t.Errorf("rejected submission must not persist, got %d bookings", len(before))
	}
}

func TestBookingSubmitGatesOnOrder(t *testing.T) {
	e := newEnv(t)
	svc := NewBookingService(e.bookings, e.orders, e.ledger)
	ctx := context.Background()

	b := validBooking()
	b.OrderID = "9999"
	if _, _, err := svc.Submit(ctx, b, SourcePublic); err != ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	b.OrderID = "1001" // seeded order
	created, fe, err := svc.Submit(ctx, b, SourcePublic)
	if err != nil || !fe.OK() {
		t.Fatalf("submit with valid order: err=%v fe=%v", err, fe)
	}
	if created.ID == "" || created.Status != model.BookingPending {
		t.Errorf("created booking not normalised: %+v", created)
	}
}

func TestBookingSubmitFeedsLedger(t *testing.T) {
	e := newEnv(t)
	svc := NewBookingService(e.bookings, e.orders, e.ledger)
	ctx := context.Background()

	if _, fe, err := svc.Submit(ctx, validBooking(), SourcePublic); err != nil || !fe.OK() {
		t.Fatalf("submit: err=%v fe=%v", err, fe)
	}
	c, err := e.customers.FindByEmail(ctx, "grace@example.com")
	if err != nil {
		t.Fatalf("customer should exist after booking: %v", err)
	}
	if c.TotalOrders != 1 {
		t.Errorf("TotalOrders = %d", c.TotalOrders)
	}
}

func TestOrderSubmitPricesPerSource(t *testing.T) {
	e := newEnv(t)
	svc := NewOrderService(e.orders, intake.NewPipeline(nil, "bkt"), e.ledger,
		pricing.AdminRates, pricing.PublicRates)
	ctx := context.Background()

	o := model.Order{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		ServiceType:   model.ServiceWashFold,
		Quantity:      4,
		Total:         999, // must be discarded
	}

	pub, _, fe, err := svc.Submit(ctx, o, nil, SourcePublic)
	if err != nil || !fe.OK() {
		t.Fatalf("public submit: err=%v fe=%v", err, fe)
	}
	if pub.Total != 20 { // 5.00 × 4 on the public list
		t.Errorf("public total = %v, want 20", pub.Total)
	}

	adm, _, fe, err := svc.Submit(ctx, o, nil, SourceAdmin)
	if err != nil || !fe.OK() {
		t.Fatalf("admin submit: err=%v fe=%v", err, fe)
	}
	if adm.Total != 10 { // 2.50 × 4 on the admin list
		t.Errorf("admin total = %v, want 10", adm.Total)
	}
}

func TestOrderSubmitScreensFiles(t *testing.T) {
	e := newEnv(t)
	svc := NewOrderService(e.orders, intake.NewPipeline(nil, "bkt"), e.ledger,
		pricing.AdminRates, pricing.PublicRates)

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	files := []intake.File{
		{Name: "shirt.png", ContentType: "image/png", Data: png},
		{Name: "notes.txt", ContentType: "text/plain", Data: []byte("hi")},
	}
	o := model.Order{
		CustomerName:  "Jane Smith",
		CustomerEmail: "jane@example.com",
		ServiceType:   model.ServiceIroning,
		Quantity:      2,
	}

	created, warnings, fe, err := svc.Submit(context.Background(), o, files, SourceAdmin)
	if err != nil || !fe.OK() {
		t.Fatalf("submit: err=%v fe=%v", err, fe)
	}
	if len(warnings) != 1 || warnings[0] != "File type not supported: notes.txt" {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(created.Attachments) != 1 {
		t.Errorf("admin submit should inline accepted files, got %d", len(created.Attachments))
	}
}

func TestDashboardStats(t *testing.T) {
	e := newEnv(t)
	d := NewDashboard(e.bookings, e.orders, e.customers)

	s, err := d.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	// Seed fixtures: pickups are all in the future, two orders are
	// still active, one completed order carries 17.98 revenue.
	if s.TodaysBookings != 0 {
		t.Errorf("TodaysBookings = %d, want 0", s.TodaysBookings)
	}
	if s.ActiveOrders != 2 {
		t.Errorf("ActiveOrders = %d, want 2", s.ActiveOrders)
	}
	if s.TotalCustomers != 3 {
		t.Errorf("TotalCustomers = %d, want 3", s.TotalCustomers)
	}
	if s.Revenue != 17.98 {
		t.Errorf("Revenue = %v, want 17.98", s.Revenue)
	}
}

func TestDashboardStatsCountTodayPickup(t *testing.T) {
	e := newEnv(t)
	svc := NewBookingService(e.bookings, e.orders, e.ledger)
	b := validBooking()
	b.PickupDate = time.Now().Format("2006-01-02")
	if _, fe, err := svc.Submit(context.Background(), b, SourceAdmin); err != nil || !fe.OK() {
		t.Fatalf("submit: err=%v fe=%v", err, fe)
	}

	s, err := NewDashboard(e.bookings, e.orders, e.customers).Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if s.TodaysBookings != 1 {
		t.Errorf("TodaysBookings = %d, want 1", s.TodaysBookings)
	}
}

func TestDashboardActivity(t *testing.T) {
	e := newEnv(t)
	d := NewDashboard(e.bookings, e.orders, e.customers)

	items, err := d.Activity(context.Background())
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if len(items) != ActivityLimit {
		t.Fatalf("feed length = %d, want %d", len(items), ActivityLimit)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Timestamp.After(items[i-1].Timestamp) {
			t.Fatal("feed not sorted newest first")
		}
	}
	// Newest seed record is Alice's booking, created an hour ago.
	if items[0].Title != "New Booking" || items[0].TimeAgo != "1 hour ago" {
		t.Errorf("unexpected head of feed: %+v", items[0])
	}
}

func TestAvailableSlots(t *testing.T) {
	now := time.Date(2025, 8, 20, 11, 30, 0, 0, time.UTC)

	slots := AvailableSlots("2025-08-21", now)
	if len(slots) != len(PickupSlots) {
		t.Errorf("future date should offer every slot, got %v", slots)
	}

	slots = AvailableSlots("2025-08-20", now)
	// 11:30 now: slots up to and including 13:00 need more lead time.
	if len(slots) == 0 || slots[0] != "14:00" {
		t.Errorf("same-day slots = %v, want first 14:00", slots)
	}
}

func TestBookingSubmitLocksContactToOrder(t *testing.T) {
	e := newEnv(t)
	svc := NewBookingService(e.bookings, e.orders, e.ledger)

	b := validBooking()
	b.OrderID = "1002" // seeded: Jane Smith
	created, fe, err := svc.Submit(context.Background(), b, SourcePublic)
	if err != nil || !fe.OK() {
		t.Fatalf("submit: err=%v fe=%v", err, fe)
	}
	if created.FullName != "Jane Smith" || created.Email != "jane@example.com" {
		t.Errorf("contact fields should come from the order, got %q %q", created.FullName, created.Email)
	}
}

func TestDashboardSearch(t *testing.T) {
	e := newEnv(t)
	d := NewDashboard(e.bookings, e.orders, e.customers)
	ctx := context.Background()

	res, err := d.Search(ctx, "jane")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Orders) != 1 || len(res.Customers) != 1 || len(res.Bookings) != 0 {
		t.Errorf("unexpected matches for %q: %+v", "jane", res)
	}

	res, err = d.Search(ctx, "")
	if err != nil {
		t.Fatalf("empty search: %v", err)
	}
	if len(res.Bookings)+len(res.Orders)+len(res.Customers) != 0 {
		t.Error("empty query should match nothing")
	}
}
