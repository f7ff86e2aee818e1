package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/joacia/laundry-service/internal/utils"
)

// PickupSlots is the fixed set of pickup times offered on the booking
// form.
var PickupSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// AvailableSlots returns the pickup times selectable for the given
// date.  For the current day, slots starting within two hours of now
// are excluded so the driver has lead time; other days offer the full
// set.
func AvailableSlots(date string, now time.Time) []string {
	if !utils.IsToday(date, now) {
		return append([]string(nil), PickupSlots...)
	}
	out := make([]string, 0, len(PickupSlots))
	for _, slot := range PickupSlots {
		hour, err := strconv.Atoi(strings.SplitN(slot, ":", 2)[0])
		if err != nil {
			continue
		}
		if hour > now.Hour()+2 {
			out = append(out, slot)
		}
	}
	return out
}
