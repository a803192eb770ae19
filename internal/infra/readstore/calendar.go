package readstore

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"
	"lodgekeeper/internal/usecase/queries"
)

type CalendarReadStore struct {
	db db.DBTX
}

func NewCalendarReadStore(dbtx db.DBTX) *CalendarReadStore {
	return &CalendarReadStore{db: dbtx}
}

func (s *CalendarReadStore) RoomsByProperty(ctx context.Context, prop property.Property) ([]queries.RoomView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, property, name, category_id, min_guests, max_guests, beds, image_ref, active
		FROM rooms WHERE property = $1 AND active
		ORDER BY name`,
		prop.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var out []queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.Property, &v.Name, &v.CategoryID, &v.MinGuests, &v.MaxGuests, &v.Beds, &v.ImageRef, &v.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return out, nil
}

func (s *CalendarReadStore) BlockingBookingsIntersecting(ctx context.Context, prop property.Property, start, end time.Time) ([]queries.BookingView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+bookingViewColumns+`
		FROM bookings
		WHERE property = $1 AND status IN ('hold', 'complete') AND checkin < $3 AND checkout > $2
		ORDER BY checkin`,
		prop.String(), start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking bookings", err)
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

func (s *CalendarReadStore) BlackoutsIntersecting(ctx context.Context, prop property.Property, start, end time.Time) ([]queries.BlackoutView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, property, start_on, end_on, reason
		FROM blackouts
		WHERE property = $1 AND start_on < $3 AND end_on >= $2
		ORDER BY start_on`,
		prop.String(), start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	defer rows.Close()

	var out []queries.BlackoutView
	for rows.Next() {
		var v queries.BlackoutView
		if err := rows.Scan(&v.ID, &v.Property, &v.Start, &v.End, &v.Reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	return out, nil
}
