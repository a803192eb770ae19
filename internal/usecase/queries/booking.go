package queries

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByReference(ctx context.Context, reference string) (*BookingView, error)
	ListByProperty(ctx context.Context, prop property.Property, start, end time.Time) ([]BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetByReference(ctx context.Context, reference string) (*BookingView, error)
	// ListByProperty returns bookings intersecting the window, any status.
	ListByProperty(ctx context.Context, prop property.Property, start, end time.Time) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	view, err := q.store.FindByReference(ctx, reference)
	if err != nil {
		return nil, markNotFound(err, errs.ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByProperty(ctx context.Context, prop property.Property, start, end time.Time) ([]BookingView, error) {
	return q.store.ListByProperty(ctx, prop, start, end)
}

// markNotFound translates a repository-level miss into the sentinel the
// handlers switch on.
func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
