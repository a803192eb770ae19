package readstore

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"
	"lodgekeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `id, reference, property, mode, checkin, checkout, guests, children, user_id, status, price_cents, created_at, updated_at`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return s.findOne(ctx, `SELECT `+bookingViewColumns+` FROM bookings WHERE id = $1`, id)
}

func (s *BookingReadStore) FindByReference(ctx context.Context, reference string) (*queries.BookingView, error) {
	return s.findOne(ctx, `SELECT `+bookingViewColumns+` FROM bookings WHERE reference = $1`, reference)
}

func (s *BookingReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.BookingView, error) {
	var v queries.BookingView
	err := s.db.QueryRow(ctx, sql, arg).Scan(
		&v.ID, &v.Reference, &v.Property, &v.Mode, &v.Checkin, &v.Checkout,
		&v.Guests, &v.Children, &v.UserID, &v.Status, &v.PriceCents,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	roomIDs, err := roomIDsByBooking(ctx, s.db, v.ID)
	if err != nil {
		return nil, err
	}
	v.RoomIDs = roomIDs
	return &v, nil
}

func (s *BookingReadStore) ListByProperty(ctx context.Context, prop property.Property, start, end time.Time) ([]queries.BookingView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+bookingViewColumns+`
		FROM bookings
		WHERE property = $1 AND checkin < $3 AND checkout > $2
		ORDER BY checkin`,
		prop.String(), start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views, err := scanBookingViews(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	for i := range views {
		roomIDs, err := roomIDsByBooking(ctx, s.db, views[i].ID)
		if err != nil {
			return nil, err
		}
		views[i].RoomIDs = roomIDs
	}
	return views, nil
}

func scanBookingViews(rows pgx.Rows) ([]queries.BookingView, error) {
	var views []queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.Reference, &v.Property, &v.Mode, &v.Checkin, &v.Checkout,
			&v.Guests, &v.Children, &v.UserID, &v.Status, &v.PriceCents,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return views, nil
}
