// Package pricing computes order totals from the fixed price tables.
// Two tables are in circulation: the dashboard and admin order form
// price per unit differs from what the public order page quotes.
// Both are kept as-is; callers pick the table matching their surface.
package pricing

// Table maps a service type to its price per unit quantity.
type Table map[string]float64

// AdminRates is the table used by the dashboard and the admin order
// form.
var AdminRates = Table{
	"wash-fold":    2.5,
	"dry-cleaning": 8.99,
	"ironing":      3.5,
}

// PublicRates is the table quoted on the public order page.
var PublicRates = Table{
	"dry-cleaning": 10,
	"wash-fold":    5,
	"ironing":      2,
}

// Total returns the price for quantity units of the given service.
// Unknown service types price at zero; no error is raised.
func (t Table) Total(serviceType string, quantity float64) float64 {
	return t[serviceType] * quantity
}
