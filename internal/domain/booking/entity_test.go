//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, cents int64) booking.Money {
	t.Helper()
	m, err := booking.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func newRoomBooking(t *testing.T, prop property.Property, checkin, checkout time.Time, roomIDs ...uuid.UUID) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(prop, booking.ModeRoom, mustRange(t, checkin, checkout), 2, 0, uuid.New(), roomIDs, money(t, 20000))
	require.NoError(t, err)
	return b
}

func newBuyoutBooking(t *testing.T, prop property.Property, checkin, checkout time.Time) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(prop, booking.ModeBuyout, mustRange(t, checkin, checkout), 8, 2, uuid.New(), nil, money(t, 120000))
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	dates := mustRange(t, date(2026, 7, 1), date(2026, 7, 4))

	t.Run("room booking gets reference and complete status", func(t *testing.T) {
		b, err := booking.NewBooking(property.CedarLodge, booking.ModeRoom, dates, 2, 1, uuid.New(), []uuid.UUID{uuid.New()}, money(t, 30000))
		require.NoError(t, err)
		assert.Len(t, b.Reference(), 8)
		assert.Equal(t, booking.StatusComplete, b.Status())
		assert.Equal(t, 3, b.TotalGuests())
	})

	t.Run("guests must be at least one", func(t *testing.T) {
		_, err := booking.NewBooking(property.CedarLodge, booking.ModeRoom, dates, 0, 0, uuid.New(), []uuid.UUID{uuid.New()}, money(t, 30000))
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("children cannot be negative", func(t *testing.T) {
		_, err := booking.NewBooking(property.CedarLodge, booking.ModeRoom, dates, 2, -1, uuid.New(), []uuid.UUID{uuid.New()}, money(t, 30000))
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("buyout rejects room list", func(t *testing.T) {
		_, err := booking.NewBooking(property.CedarLodge, booking.ModeBuyout, dates, 4, 0, uuid.New(), []uuid.UUID{uuid.New()}, money(t, 90000))
		assert.ErrorIs(t, err, booking.ErrRoomsOnBuyout)
	})

	t.Run("room mode requires rooms", func(t *testing.T) {
		_, err := booking.NewBooking(property.CedarLodge, booking.ModeRoom, dates, 2, 0, uuid.New(), nil, money(t, 30000))
		assert.ErrorIs(t, err, booking.ErrRoomRequired)
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("cancel releases inventory", func(t *testing.T) {
		b := newRoomBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 4), uuid.New())
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCanceled, b.Status())
		assert.False(t, b.Status().BlocksInventory())
	})

	t.Run("second cancel fails", func(t *testing.T) {
		b := newRoomBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 4), uuid.New())
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCanceled)
	})

	t.Run("refunded booking cannot be canceled again", func(t *testing.T) {
		b := newRoomBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 4), uuid.New())
		require.NoError(t, b.Cancel())
		require.NoError(t, b.MarkRefunded())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCanceled)
	})
}

func TestBookingMarkRefunded(t *testing.T) {
	t.Run("only canceled bookings become refunded", func(t *testing.T) {
		b := newRoomBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 4), uuid.New())
		assert.ErrorIs(t, b.MarkRefunded(), booking.ErrNotRefundable)

		require.NoError(t, b.Cancel())
		require.NoError(t, b.MarkRefunded())
		assert.Equal(t, booking.StatusRefunded, b.Status())
	})
}

func TestBookingConflictsWith(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()

	t.Run("buyout conflicts with any overlapping booking", func(t *testing.T) {
		buyout := newBuyoutBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 5))
		room := newRoomBooking(t, property.CedarLodge, date(2026, 7, 3), date(2026, 7, 6), roomA)
		assert.True(t, buyout.ConflictsWith(room))
		assert.True(t, room.ConflictsWith(buyout))
	})

	t.Run("room bookings conflict only when sharing a room", func(t *testing.T) {
		a := newRoomBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 5), roomA)
		sameRoom := newRoomBooking(t, property.CedarLodge, date(2026, 7, 3), date(2026, 7, 6), roomA, roomB)
		otherRoom := newRoomBooking(t, property.CedarLodge, date(2026, 7, 3), date(2026, 7, 6), roomB)

		assert.True(t, a.ConflictsWith(sameRoom))
		assert.False(t, a.ConflictsWith(otherRoom))
	})

	t.Run("different properties never conflict", func(t *testing.T) {
		a := newBuyoutBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 5))
		b := newBuyoutBooking(t, property.ClearLake, date(2026, 7, 1), date(2026, 7, 5))
		assert.False(t, a.ConflictsWith(b))
	})

	t.Run("canceled booking does not block", func(t *testing.T) {
		a := newBuyoutBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 5))
		b := newBuyoutBooking(t, property.CedarLodge, date(2026, 7, 2), date(2026, 7, 6))
		require.NoError(t, b.Cancel())
		assert.False(t, a.ConflictsWith(b))
	})

	t.Run("back to back stays do not conflict", func(t *testing.T) {
		a := newBuyoutBooking(t, property.CedarLodge, date(2026, 7, 1), date(2026, 7, 5))
		b := newBuyoutBooking(t, property.CedarLodge, date(2026, 7, 5), date(2026, 7, 8))
		assert.False(t, a.ConflictsWith(b))
	})
}

func TestBlackoutOverlapsStay(t *testing.T) {
	bl, err := booking.NewBlackout(property.CedarLodge, date(2026, 8, 10), date(2026, 8, 12), "deck repair")
	require.NoError(t, err)

	cases := []struct {
		name     string
		stay     booking.DateRange
		overlaps bool
	}{
		{"stay inside blackout", mustRange(t, date(2026, 8, 10), date(2026, 8, 12)), true},
		{"checkin on inclusive end date", mustRange(t, date(2026, 8, 12), date(2026, 8, 14)), true},
		{"checkin the day after the blackout ends", mustRange(t, date(2026, 8, 13), date(2026, 8, 15)), false},
		{"checkout on blackout start day", mustRange(t, date(2026, 8, 8), date(2026, 8, 10)), false},
		{"stay straddling the blackout", mustRange(t, date(2026, 8, 9), date(2026, 8, 13)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, bl.OverlapsStay(tc.stay))
		})
	}
}

func TestNewBlackout(t *testing.T) {
	t.Run("single day blackout is valid", func(t *testing.T) {
		bl, err := booking.NewBlackout(property.ClearLake, date(2026, 8, 10), date(2026, 8, 10), "")
		require.NoError(t, err)
		assert.True(t, bl.OverlapsStay(mustRange(t, date(2026, 8, 10), date(2026, 8, 11))))
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := booking.NewBlackout(property.ClearLake, date(2026, 8, 12), date(2026, 8, 10), "")
		assert.Error(t, err)
	})
}
