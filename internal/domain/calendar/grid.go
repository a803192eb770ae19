// Package calendar maps date ranges onto the occupancy grid used by the
// admin calendar view. The grid has two columns per day so that a departure
// and an arrival can share a date visually: bookings start mid-day on
// arrival and end mid-day on checkout. Mapping is display-only and carries
// no booking-validity semantics.
package calendar

import (
	"time"

	"lodgekeeper/internal/domain/booking"
)

// Span is a half-day-resolution column range inside a window of N days.
// Columns are 1-based; day d owns columns 2d+1 and 2d+2. Clipped flags mark
// ranges continuing off-screen.
type Span struct {
	StartCol     int
	EndCol       int
	ClippedStart bool
	ClippedEnd   bool
}

func dayIndex(windowStart, date time.Time) int {
	return int(date.Sub(windowStart) / (24 * time.Hour))
}

// BookingSpan places a stay on the grid: second half of the check-in day
// through the first half of the checkout day. The second return value is
// false when the stay misses the window entirely.
func BookingSpan(windowStart time.Time, windowDays int, dates booking.DateRange) (Span, bool) {
	start := 2*dayIndex(windowStart, dates.Checkin()) + 2
	end := 2 * dayIndex(windowStart, dates.Checkout())
	return clampSpan(start, end, windowDays)
}

// BlackoutSpan places a full-day-inclusive blackout range on the grid. A
// blackout covers whole days, spilling half a day past its end date so the
// block visually closes out the final day.
func BlackoutSpan(windowStart time.Time, windowDays int, start, end time.Time) (Span, bool) {
	startCol := 2*dayIndex(windowStart, start) + 1
	endCol := 2*dayIndex(windowStart, end) + 3
	return clampSpan(startCol, endCol, windowDays)
}

func clampSpan(startCol, endCol, windowDays int) (Span, bool) {
	lastCol := 2 * windowDays
	if endCol < 1 || startCol > lastCol || endCol < startCol {
		return Span{}, false
	}

	s := Span{StartCol: startCol, EndCol: endCol}
	if s.StartCol < 1 {
		s.StartCol = 1
		s.ClippedStart = true
	}
	if s.EndCol > lastCol {
		s.EndCol = lastCol
		s.ClippedEnd = true
	}
	return s, true
}
