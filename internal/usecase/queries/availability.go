package queries

import (
	"context"
	"errors"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/calendar"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityCheck describes one prospective reservation.
type AvailabilityCheck struct {
	Property property.Property
	Mode     booking.Mode
	RoomIDs  []uuid.UUID
	Dates    booking.DateRange
	Guests   int
	// ExcludeBookingID ignores an existing booking, for date changes.
	ExcludeBookingID *uuid.UUID
}

// CheckAvailability applies the ledger rules against the given read surface.
// Write paths must pass a transactional Reads obtained after locking the
// property; display callers may pass pool-backed Reads, where slightly stale
// results are acceptable.
//
// Rules: blackouts block everything; a buyout contends with every blocking
// booking on the property; a room booking contends with buyouts and with
// bookings sharing one of its rooms; Clear Lake day use contends with
// buyouts and with the per-guest daily capacity.
func CheckAvailability(ctx context.Context, reads shared.Reads, chk AvailabilityCheck) error {
	blackouts, err := reads.BlackoutsIntersecting(ctx, chk.Property, chk.Dates)
	if err != nil {
		return err
	}
	for _, bl := range blackouts {
		if bl.OverlapsStay(chk.Dates) {
			return errs.ErrBookingConflict
		}
	}

	others, err := reads.BlockingBookingsIntersecting(ctx, chk.Property, chk.Dates)
	if err != nil {
		return err
	}

	var dayStays []calendar.GuestStay
	for _, other := range others {
		if chk.ExcludeBookingID != nil && other.ID() == *chk.ExcludeBookingID {
			continue
		}
		switch {
		case chk.Mode == booking.ModeBuyout || other.Mode() == booking.ModeBuyout:
			return errs.ErrBookingConflict
		case chk.Mode == booking.ModeRoom && other.Mode() == booking.ModeRoom:
			if anyRoomShared(chk.RoomIDs, other.RoomIDs()) {
				return errs.ErrBookingConflict
			}
		case chk.Mode == booking.ModeDay && other.Mode() == booking.ModeDay:
			dayStays = append(dayStays, calendar.GuestStay{Dates: other.Dates(), Guests: other.TotalGuests()})
		}
	}

	if chk.Mode == booking.ModeDay {
		return checkDayCapacity(chk, dayStays)
	}
	return nil
}

func checkDayCapacity(chk AvailabilityCheck, stays []calendar.GuestStay) error {
	days := chk.Dates.Nights()
	spots := calendar.SpotsByDay(chk.Dates.Checkin(), days, property.ClearLakeDayCapacity, stays)
	for _, s := range spots {
		if s.SpotsAvailable < chk.Guests {
			return errs.ErrBookingConflict
		}
	}
	return nil
}

func anyRoomShared(a, b []uuid.UUID) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

type AvailabilityQueries interface {
	// IsAvailable answers the display-side "is resource R free?" question.
	// Not transactionally consistent with concurrent writes.
	IsAvailable(ctx context.Context, chk AvailabilityCheck) (bool, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, chk AvailabilityCheck) (bool, error) {
	err := CheckAvailability(ctx, q.uow.Reads(), chk)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, errs.ErrBookingConflict) {
		return false, nil
	}
	return false, err
}
