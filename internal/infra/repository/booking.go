package repository

import (
	"context"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// LockProperty takes a transaction-scoped advisory lock serializing Reserve
// for one property. The exclusion constraints catch same-table overlaps;
// the lock covers cross-table contention (buyout vs rooms, blackouts).
func (r *BookingRepository) LockProperty(ctx context.Context, prop property.Property) error {
	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, prop.String())
	if err != nil {
		return infra.WrapRepoErr("failed to lock property", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, reference, property, mode, checkin, checkout, guests, children, user_id, status, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID(), b.Reference(), b.Property().String(), b.Mode().String(),
		b.Dates().Checkin(), b.Dates().Checkout(), b.Guests(), b.Children(),
		b.UserID(), b.Status().String(), b.Price().Cents(),
	)
	if err != nil {
		return wrapPgErr("failed to create booking", err)
	}

	for _, roomID := range b.RoomIDs() {
		_, err := r.db.Exec(ctx, `
			INSERT INTO booking_rooms (booking_id, room_id, stay, blocking)
			VALUES ($1, $2, daterange($3::date, $4::date), $5)`,
			b.ID(), roomID, b.Dates().Checkin(), b.Dates().Checkout(), b.Status().BlocksInventory(),
		)
		if err != nil {
			return wrapPgErr("failed to attach booking room", err)
		}
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET checkin = $2, checkout = $3, guests = $4, children = $5, price_cents = $6, updated_at = now()
		WHERE id = $1`,
		b.ID(), b.Dates().Checkin(), b.Dates().Checkout(), b.Guests(), b.Children(), b.Price().Cents(),
	)
	if err != nil {
		return wrapPgErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	_, err = r.db.Exec(ctx, `
		UPDATE booking_rooms SET stay = daterange($2::date, $3::date) WHERE booking_id = $1`,
		b.ID(), b.Dates().Checkin(), b.Dates().Checkout(),
	)
	if err != nil {
		return wrapPgErr("failed to update booking room stays", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return wrapPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	// Canceled and refunded bookings release their room holds immediately.
	_, err = r.db.Exec(ctx, `
		UPDATE booking_rooms SET blocking = $2 WHERE booking_id = $1`,
		id, status.BlocksInventory(),
	)
	if err != nil {
		return wrapPgErr("failed to update booking room blocking", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
