package pricing

import "testing"

func TestAdminRates(t *testing.T) {
	cases := []struct {
		service  string
		quantity float64
		want     float64
	}{
		{"wash-fold", 5, 12.5},
		{"dry-cleaning", 2, 17.98},
		{"ironing", 8, 28.0},
		{"wash-fold", 0, 0},
		{"shoe-shine", 3, 0}, // unknown service prices at zero
		{"", 10, 0},
	}
	for _, c := range cases {
		if got := AdminRates.Total(c.service, c.quantity); got != c.want {
			t.Errorf("AdminRates.Total(%q, %v) = %v, want %v", c.service, c.quantity, got, c.want)
		}
	}
}

func TestPublicRates(t *testing.T) {
	if got := PublicRates.Total("dry-cleaning", 3); got != 30.0 {
		t.Errorf("PublicRates.Total(dry-cleaning, 3) = %v, want 30", got)
	}
	if got := PublicRates.Total("ironing", 1.5); got != 3.0 {
		t.Errorf("PublicRates.Total(ironing, 1.5) = %v, want 3", got)
	}
	if got := PublicRates.Total("unknown", 4); got != 0 {
		t.Errorf("PublicRates.Total(unknown, 4) = %v, want 0", got)
	}
}

func TestTablesDiverge(t *testing.T) {
	// The two surfaces intentionally quote different unit prices.
	for _, service := range []string{"wash-fold", "dry-cleaning", "ironing"} {
		if AdminRates[service] == PublicRates[service] {
			t.Errorf("expected diverging rates for %s", service)
		}
	}
}
