package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/joacia/laundry-service/internal/metrics"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/utils"
)

// Stats is the headline block at the top of the admin dashboard.
type Stats struct {
	TodaysBookings int     `json:"todaysBookings"`
	ActiveOrders   int     `json:"activeOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	Revenue        float64 `json:"revenue"`
}

// ActivityItem is one row of the recent-activity feed.
type ActivityItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TimeAgo     string    `json:"timeAgo"`
	Timestamp   time.Time `json:"timestamp"`
}

// SearchResults groups cross-entity matches for a dashboard search.
type SearchResults struct {
	Bookings  []model.Booking  `json:"bookings"`
	Orders    []model.Order    `json:"orders"`
	Customers []model.Customer `json:"customers"`
}

// ActivityLimit caps the recent-activity feed length.
const ActivityLimit = 5

// Dashboard aggregates the record collections into the stats,
// activity feed and search results served to the admin UI.
type Dashboard struct {
	bookings  *repository.BookingRepo
	orders    *repository.OrderRepo
	customers *repository.CustomerRepo
}

// NewDashboard wires a Dashboard over the three record repositories.
func NewDashboard(bookings *repository.BookingRepo, orders *repository.OrderRepo, customers *repository.CustomerRepo) *Dashboard {
	return &Dashboard{bookings: bookings, orders: orders, customers: customers}
}

// Stats recomputes the four headline numbers from the live record
// collections: bookings picked up today, orders still in play,
// customer count, and revenue summed over completed orders only.
func (d *Dashboard) Stats(ctx context.Context) (Stats, error) {
	bookings, err := d.bookings.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	orders, err := d.orders.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	customers, err := d.customers.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := time.Now()
	var s Stats
	for _, b := range bookings {
		if utils.IsToday(b.PickupDate, now) {
			s.TodaysBookings++
		}
	}
	for _, o := range orders {
		if o.ActiveOrder() {
			s.ActiveOrders++
		}
		if o.Status == model.OrderCompleted {
			s.Revenue += o.Total
		}
	}
	s.TotalCustomers = len(customers)

	metrics.IncDashboardRefresh()
	return s, nil
}

// Activity merges bookings and orders into a single feed sorted by
// creation time, newest first, capped at ActivityLimit entries.
func (d *Dashboard) Activity(ctx context.Context) ([]ActivityItem, error) {
	bookings, err := d.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := d.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]ActivityItem, 0, len(bookings)+len(orders))
	for _, b := range bookings {
		items = append(items, ActivityItem{
			Title:       "New Booking",
			Description: fmt.Sprintf("%s — pickup %s", b.FullName, utils.FormatDate(b.PickupDate)),
			TimeAgo:     utils.TimeAgo(b.CreatedAt, now),
			Timestamp:   b.CreatedAt,
		})
	}
	for _, o := range orders {
		items = append(items, ActivityItem{
			Title:       "New Order",
			Description: fmt.Sprintf("%s — %s ×%g", o.CustomerName, o.ServiceType, o.Quantity),
			TimeAgo:     utils.TimeAgo(o.CreatedAt, now),
			Timestamp:   o.CreatedAt,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Timestamp.After(items[j].Timestamp) })
	if len(items) > ActivityLimit {
		items = items[:ActivityLimit]
	}
	return items, nil
}

// Search matches q case-insensitively against names, emails, service
// types and statuses across all three collections.  An empty query
// returns empty results rather than everything.
func (d *Dashboard) Search(ctx context.Context, q string) (SearchResults, error) {
	res := SearchResults{
		Bookings:  []model.Booking{},
		Orders:    []model.Order{},
		Customers: []model.Customer{},
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return res, nil
	}

	bookings, err := d.bookings.List(ctx)
	if err != nil {
		return res, err
	}
	orders, err := d.orders.List(ctx)
	if err != nil {
		return res, err
	}
	customers, err := d.customers.List(ctx)
	if err != nil {
		return res, err
	}

	for _, b := range bookings {
		if matches(q, b.FullName, b.Email, b.Phone, b.Status, b.PickupDate) {
			res.Bookings = append(res.Bookings, b)
		}
	}
	for _, o := range orders {
		if matches(q, o.CustomerName, o.CustomerEmail, o.ServiceType, o.Status, o.ID) {
			res.Orders = append(res.Orders, o)
		}
	}
	for _, c := range customers {
		if matches(q, c.Name, c.Email, c.Phone) {
			res.Customers = append(res.Customers, c)
		}
	}
	return res, nil
}

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// StartRefresher recomputes the stats every interval until ctx is
// cancelled.  The dashboard endpoints read live data anyway; the
// refresher keeps the recompute counter moving and surfaces backend
// trouble in the logs between page loads.
func (d *Dashboard) StartRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.Stats(ctx); err != nil {
				log.Printf("dashboard: scheduled refresh failed: %v", err)
			}
		}
	}
}
