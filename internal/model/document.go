package model

import "time"

// This file is the validation boundary between the untyped documents
// held by the remote record store and the typed entities above.  The
// store has accumulated several generations of field names (the
// public forms wrote "customers"/"items"/"date", the dashboard wrote
// "fullName"/"serviceType"/"pickupDate"), so each decoder accepts the
// known aliases and falls back to zero-value defaults for anything
// missing.

// Document is an untyped field mapping as returned by the remote
// record gateway.  The record identifier travels outside the mapping.
type Document = map[string]any

// BookingFromDocument decodes a booking document, tolerating legacy
// field aliases and missing optionals.
func BookingFromDocument(id string, doc Document) Booking {
	return Booking{
		ID:             id,
		FullName:       docString(doc, "fullName", "Customer", "customers"),
		Email:          docString(doc, "email"),
		Phone:          docString(doc, "phone"),
		Whatsapp:       docString(doc, "whatsapp"),
		PickupDate:     docString(doc, "pickupDate", "date"),
		PickupTime:     docString(doc, "pickupTime", "time"),
		Address:        docString(doc, "address"),
		AdditionalNote: docString(doc, "additionalNote"),
		Status:         docStringDefault(doc, BookingPending, "status"),
		OrderID:        docString(doc, "orderId"),
		CreatedAt:      docTime(doc, "createdAt", "timestamp", "$createdAt"),
	}
}

// Document encodes the booking for the remote store using the
// canonical (dashboard-era) field names.
func (b Booking) Document() Document {
	return Document{
		"fullName":       b.FullName,
		"email":          b.Email,
		"phone":          b.Phone,
		"whatsapp":       b.Whatsapp,
		"pickupDate":     b.PickupDate,
		"pickupTime":     b.PickupTime,
		"address":        b.Address,
		"additionalNote": b.AdditionalNote,
		"status":         b.Status,
		"orderId":        b.OrderID,
		"createdAt":      b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// OrderFromDocument decodes an order document.
func OrderFromDocument(id string, doc Document) Order {
	return Order{
		ID:            id,
		CustomerName:  docString(doc, "customerName", "customers", "Customer"),
		CustomerEmail: docString(doc, "customerEmail", "email"),
		CustomerPhone: docString(doc, "customerPhone", "phone"),
		ServiceType:   docString(doc, "serviceType", "items"),
		Quantity:      docFloat(doc, "quantity"),
		Total:         docFloat(doc, "total"),
		Instructions:  docString(doc, "instructions"),
		Status:        docStringDefault(doc, OrderPending, "status"),
		Attachments:   docStrings(doc, "attachments"),
		FileIDs:       docStrings(doc, "fileIds", "fileId"),
		CreatedAt:     docTime(doc, "createdAt", "createdDate", "$createdAt"),
	}
}

func (o Order) Document() Document {
	return Document{
		"customerName":  o.CustomerName,
		"customerEmail": o.CustomerEmail,
		"customerPhone": o.CustomerPhone,
		"serviceType":   o.ServiceType,
		"quantity":      o.Quantity,
		"total":         o.Total,
		"instructions":  o.Instructions,
		"status":        o.Status,
		"attachments":   o.Attachments,
		"fileIds":       o.FileIDs,
		"createdAt":     o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// CustomerFromDocument decodes a customer document.
func CustomerFromDocument(id string, doc Document) Customer {
	c := Customer{
		ID:          id,
		Name:        docString(doc, "name"),
		Email:       docString(doc, "email"),
		Phone:       docString(doc, "phone"),
		TotalOrders: int(docFloat(doc, "totalOrders")),
		CreatedAt:   docTime(doc, "createdAt", "createdDate", "$createdAt"),
	}
	if t := docTime(doc, "lastOrder"); !t.IsZero() {
		c.LastOrder = &t
	}
	return c
}

func (c Customer) Document() Document {
	doc := Document{
		"name":        c.Name,
		"email":       c.Email,
		"phone":       c.Phone,
		"totalOrders": c.TotalOrders,
		"createdAt":   c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if c.LastOrder != nil {
		doc["lastOrder"] = c.LastOrder.UTC().Format(time.RFC3339)
	}
	return doc
}

// InventoryFromDocument decodes an inventory document.
func InventoryFromDocument(id string, doc Document) InventoryItem {
	return InventoryItem{
		ID:        id,
		Name:      docString(doc, "name"),
		Category:  docString(doc, "category"),
		Quantity:  int(docFloat(doc, "quantity")),
		MinStock:  int(docFloat(doc, "minStock")),
		Image:     docString(doc, "image"),
		CreatedAt: docTime(doc, "createdAt", "createdDate", "$createdAt"),
	}
}

func (i InventoryItem) Document() Document {
	return Document{
		"name":      i.Name,
		"category":  i.Category,
		"quantity":  i.Quantity,
		"minStock":  i.MinStock,
		"image":     i.Image,
		"createdAt": i.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// docString returns the first non-empty string value among keys.
func docString(doc Document, keys ...string) string {
	for _, k := range keys {
		if s, ok := doc[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func docStringDefault(doc Document, def string, keys ...string) string {
	if s := docString(doc, keys...); s != "" {
		return s
	}
	return def
}

// docFloat returns the first numeric value among keys.  JSON decoding
// yields float64 for every number, but int is accepted for documents
// built in-process.
func docFloat(doc Document, keys ...string) float64 {
	for _, k := range keys {
		switch v := doc[k].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}

// docTime parses the first RFC 3339 value among keys, or zero time.
func docTime(doc Document, keys ...string) time.Time {
	for _, k := range keys {
		if s, ok := doc[k].(string); ok && s != "" {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return t
			}
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return t
			}
		}
		if t, ok := doc[k].(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

// docStrings returns a string slice value; single strings are wrapped
// into a one-element slice for the legacy fileId field.
func docStrings(doc Document, keys ...string) []string {
	for _, k := range keys {
		switch v := doc[k].(type) {
		case []string:
			return v
		case []any:
			out := make([]string, 0, len(v))
			for _, e := range v {
				if s, ok := e.(string); ok {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if v != "" {
				return []string{v}
			}
		}
	}
	return nil
}
