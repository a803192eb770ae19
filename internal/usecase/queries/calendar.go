package queries

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/calendar"
	"lodgekeeper/internal/domain/property"
)

// CalendarReadStore lists only rows intersecting the window; the filter runs
// in SQL so the view never loads full history.
type CalendarReadStore interface {
	RoomsByProperty(ctx context.Context, prop property.Property) ([]RoomView, error)
	BlockingBookingsIntersecting(ctx context.Context, prop property.Property, start, end time.Time) ([]BookingView, error)
	BlackoutsIntersecting(ctx context.Context, prop property.Property, start, end time.Time) ([]BlackoutView, error)
}

// GridEntry is one rendered bar on the occupancy grid.
type GridEntry struct {
	ID        string
	Reference string
	Span      calendar.Span
}

type RoomLane struct {
	RoomID   string
	RoomName string
	Entries  []GridEntry
}

type CalendarView struct {
	Property    string
	WindowStart time.Time
	WindowDays  int
	Rooms       []RoomLane
	Buyouts     []GridEntry
	Blackouts   []GridEntry
	// DaySpots is populated for Clear Lake only: remaining per-guest
	// day-use capacity per date.
	DaySpots []calendar.DaySpots
}

type CalendarQueries interface {
	PropertyCalendar(ctx context.Context, prop property.Property, windowStart time.Time, windowDays int) (*CalendarView, error)
}

type calendarQueriesImpl struct {
	store CalendarReadStore
}

func NewCalendarQueries(store CalendarReadStore) CalendarQueries {
	return &calendarQueriesImpl{store: store}
}

func (q *calendarQueriesImpl) PropertyCalendar(ctx context.Context, prop property.Property, windowStart time.Time, windowDays int) (*CalendarView, error) {
	windowEnd := windowStart.AddDate(0, 0, windowDays)

	rooms, err := q.store.RoomsByProperty(ctx, prop)
	if err != nil {
		return nil, err
	}
	bookings, err := q.store.BlockingBookingsIntersecting(ctx, prop, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	blackouts, err := q.store.BlackoutsIntersecting(ctx, prop, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	view := &CalendarView{
		Property:    prop.String(),
		WindowStart: windowStart,
		WindowDays:  windowDays,
	}

	for _, r := range rooms {
		view.Rooms = append(view.Rooms, RoomLane{RoomID: r.ID.String(), RoomName: r.Name})
	}

	var dayStays []calendar.GuestStay
	for _, b := range bookings {
		dates, err := booking.NewDateRange(b.Checkin, b.Checkout)
		if err != nil {
			continue
		}
		span, visible := calendar.BookingSpan(windowStart, windowDays, dates)
		if !visible {
			continue
		}
		entry := GridEntry{ID: b.ID.String(), Reference: b.Reference, Span: span}

		switch b.Mode {
		case booking.ModeBuyout.String():
			view.Buyouts = append(view.Buyouts, entry)
		case booking.ModeDay.String():
			dayStays = append(dayStays, calendar.GuestStay{Dates: dates, Guests: b.Guests + b.Children})
		default:
			for _, roomID := range b.RoomIDs {
				for i := range view.Rooms {
					if view.Rooms[i].RoomID == roomID.String() {
						view.Rooms[i].Entries = append(view.Rooms[i].Entries, entry)
					}
				}
			}
		}
	}

	for _, bl := range blackouts {
		span, visible := calendar.BlackoutSpan(windowStart, windowDays, bl.Start, bl.End)
		if !visible {
			continue
		}
		view.Blackouts = append(view.Blackouts, GridEntry{ID: bl.ID.String(), Reference: bl.Reason, Span: span})
	}

	if prop == property.ClearLake {
		view.DaySpots = calendar.SpotsByDay(windowStart, windowDays, property.ClearLakeDayCapacity, dayStays)
	}

	return view, nil
}
