package calendar

import (
	"time"

	"lodgekeeper/internal/domain/booking"
)

// GuestStay is the slice of a booking the day-use availability computation
// needs: which dates it covers and how many guest slots it commits.
type GuestStay struct {
	Dates  booking.DateRange
	Guests int
}

// DaySpots holds remaining per-guest capacity for one date.
type DaySpots struct {
	Date           time.Time
	SpotsAvailable int
}

// SpotsByDay computes remaining day-use capacity for every date in the
// window. Clear Lake bills per guest rather than per room, so availability
// is guest slots against a fixed daily total, independent of the room
// ledger. Negative remainders clamp to zero (overbooking shows as full, not
// as debt).
func SpotsByDay(windowStart time.Time, windowDays, totalCapacity int, stays []GuestStay) []DaySpots {
	out := make([]DaySpots, windowDays)
	for i := 0; i < windowDays; i++ {
		date := windowStart.AddDate(0, 0, i)
		committed := 0
		for _, s := range stays {
			if s.Dates.CoversDate(date) {
				committed += s.Guests
			}
		}
		spots := totalCapacity - committed
		if spots < 0 {
			spots = 0
		}
		out[i] = DaySpots{Date: date, SpotsAvailable: spots}
	}
	return out
}
