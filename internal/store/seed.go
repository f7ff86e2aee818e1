package store

import (
	"time"

	"github.com/joacia/laundry-service/internal/model"
)

// Seed fixtures shown on a fresh dashboard.  Timestamps are offsets
// from seed time so the activity feed has plausible recent entries.

func seedBookings() []model.Booking {
	now := time.Now().UTC()
	return []model.Booking{
		{
			ID:             "2001",
			FullName:       "Alice Wonderland",
			Email:          "alice@example.com",
			Phone:          "(555) 111-2222",
			PickupDate:     now.AddDate(0, 0, 1).Format("2006-01-02"),
			PickupTime:     "10:00",
			Address:        "123 Rabbit Hole, Wonderland",
			AdditionalNote: "Please use hypoallergenic detergent.",
			Status:         model.BookingPending,
			CreatedAt:      now.Add(-1 * time.Hour),
		},
		{
			ID:             "2002",
			FullName:       "Bob The Builder",
			Email:          "bob@example.com",
			Phone:          "(555) 333-4444",
			Whatsapp:       "(555) 333-4444",
			PickupDate:     now.AddDate(0, 0, 2).Format("2006-01-02"),
			PickupTime:     "14:30",
			Address:        "456 Construction Site, Builderville",
			AdditionalNote: "Heavy duty work clothes.",
			Status:         model.BookingConfirmed,
			CreatedAt:      now.Add(-2 * time.Hour),
		},
		{
			ID:             "2003",
			FullName:       "Charlie Chaplin",
			Email:          "charlie@example.com",
			Phone:          "(555) 555-6666",
			PickupDate:     now.AddDate(0, 0, 3).Format("2006-01-02"),
			PickupTime:     "09:00",
			Address:        "789 Silent Film Studio, Hollywood",
			AdditionalNote: "Handle with care, vintage items.",
			Status:         model.BookingPickedUp,
			CreatedAt:      now.Add(-3 * time.Hour),
		},
	}
}

func seedOrders() []model.Order {
	now := time.Now().UTC()
	return []model.Order{
		{
			ID:            "1001",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			ServiceType:   model.ServiceWashFold,
			Quantity:      5,
			Total:         12.5,
			Status:        model.OrderInProgress,
			CreatedAt:     now.Add(-48 * time.Hour),
		},
		{
			ID:            "1002",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			ServiceType:   model.ServiceDryCleaning,
			Quantity:      2,
			Total:         17.98,
			Status:        model.OrderCompleted,
			CreatedAt:     now.Add(-120 * time.Hour),
		},
		{
			ID:            "1003",
			CustomerName:  "Mike Johnson",
			CustomerEmail: "mike@example.com",
			ServiceType:   model.ServiceIroning,
			Quantity:      8,
			Total:         28.0,
			Status:        model.OrderPending,
			CreatedAt:     now.Add(-24 * time.Hour),
		},
	}
}

func seedCustomers() []model.Customer {
	now := time.Now().UTC()
	last1 := now.Add(-48 * time.Hour)
	last2 := now.Add(-120 * time.Hour)
	last3 := now.Add(-24 * time.Hour)
	return []model.Customer{
		{
			ID:          "1",
			Name:        "John Doe",
			Email:       "john@example.com",
			Phone:       "(555) 123-4567",
			TotalOrders: 12,
			LastOrder:   &last1,
			CreatedAt:   now.AddDate(0, -1, 0),
		},
		{
			ID:          "2",
			Name:        "Jane Smith",
			Email:       "jane@example.com",
			Phone:       "(555) 987-6543",
			TotalOrders: 8,
			LastOrder:   &last2,
			CreatedAt:   now.AddDate(0, 0, -20),
		},
		{
			ID:          "3",
			Name:        "Mike Johnson",
			Email:       "mike@example.com",
			Phone:       "(555) 456-7890",
			TotalOrders: 15,
			LastOrder:   &last3,
			CreatedAt:   now.AddDate(0, -2, 0),
		},
	}
}

func seedInventory() []model.InventoryItem {
	now := time.Now().UTC()
	return []model.InventoryItem{
		{ID: "1", Name: "Premium Detergent", Category: "detergents", Quantity: 45, MinStock: 10, CreatedAt: now},
		{ID: "2", Name: "Eco-Friendly Detergent", Category: "detergents", Quantity: 12, MinStock: 15, CreatedAt: now},
		{ID: "3", Name: "Spring Fresh", Category: "softeners", Quantity: 28, MinStock: 5, CreatedAt: now},
		{ID: "4", Name: "Lavender Scent", Category: "softeners", Quantity: 33, MinStock: 5, CreatedAt: now},
		{ID: "5", Name: "Laundry Bags", Category: "supplies", Quantity: 156, MinStock: 50, CreatedAt: now},
		{ID: "6", Name: "Hangers", Category: "supplies", Quantity: 8, MinStock: 20, CreatedAt: now},
	}
}
