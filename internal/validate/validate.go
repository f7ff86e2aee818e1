// Package validate implements field-level form validation for the
// booking and order intake surfaces.  Failures are reported per field
// so the caller can annotate each offending input; any failure aborts
// the submission as a whole.
package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/joacia/laundry-service/internal/model"
)

// MinQuantity is the smallest accepted order quantity, in units.
const MinQuantity = 0.5

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Two accepted national formats: +234 followed by ten digits, or a
	// leading zero followed by ten digits.
	phoneRe = regexp.MustCompile(`^(?:\+234\d{10}|0\d{10})$`)
)

// FieldErrors maps a field name to its validation message.  An empty
// map means the form passed.
type FieldErrors map[string]string

// OK reports whether no field failed.
func (fe FieldErrors) OK() bool { return len(fe) == 0 }

// Email reports whether the address is well formed.
func Email(email string) bool {
	return emailRe.MatchString(email)
}

// Phone reports whether the number matches one of the two accepted
// national formats.  Spaces and dashes are stripped before matching.
func Phone(phone string) bool {
	clean := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phoneRe.MatchString(clean)
}

// PastDate reports whether the YYYY-MM-DD date falls before today.
// An unparseable date is treated as past so it fails validation.
func PastDate(date string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}

// Booking validates a booking submission against the rules of the
// booking form: required contact and pickup fields, email and phone
// format, and a pickup date not in the past.
func Booking(b model.Booking, now time.Time) FieldErrors {
	fe := FieldErrors{}
	required(fe, "fullName", b.FullName, "Full name is required")
	required(fe, "email", b.Email, "Email is required")
	required(fe, "phone", b.Phone, "Phone number is required")
	required(fe, "pickupDate", b.PickupDate, "Pickup date is required")
	required(fe, "pickupTime", b.PickupTime, "Pickup time is required")
	required(fe, "address", b.Address, "Address is required")
	if b.Email != "" && !Email(b.Email) {
		fe["email"] = "Please enter a valid email address"
	}
	if b.Phone != "" && !Phone(b.Phone) {
		fe["phone"] = "Please enter a valid phone number"
	}
	if b.PickupDate != "" && PastDate(b.PickupDate, now) {
		fe["pickupDate"] = "Pickup date cannot be in the past"
	}
	return fe
}

// Order validates an order submission: required customer and service
// fields, email format and the minimum quantity.
func Order(o model.Order) FieldErrors {
	fe := FieldErrors{}
	required(fe, "customerName", o.CustomerName, "Customer name is required")
	required(fe, "customerEmail", o.CustomerEmail, "Email is required")
	required(fe, "serviceType", o.ServiceType, "Service type is required")
	if o.CustomerEmail != "" && !Email(o.CustomerEmail) {
		fe["customerEmail"] = "Please enter a valid email address"
	}
	if o.CustomerPhone != "" && !Phone(o.CustomerPhone) {
		fe["customerPhone"] = "Please enter a valid phone number"
	}
	if o.Quantity < MinQuantity {
		fe["quantity"] = "Quantity must be at least 0.5 kg"
	}
	return fe
}

func required(fe FieldErrors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = message
	}
}
