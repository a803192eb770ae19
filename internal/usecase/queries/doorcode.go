package queries

import (
	"context"

	"lodgekeeper/internal/domain/property"
)

type DoorCodeReadStore interface {
	RecentByProperty(ctx context.Context, prop property.Property, n int) ([]DoorCodeView, error)
}

type DoorCodeQueries interface {
	// RecentCodes returns the last n codes including the active one,
	// newest first, for reuse warnings.
	RecentCodes(ctx context.Context, prop property.Property, n int) ([]DoorCodeView, error)
}

type doorCodeQueriesImpl struct {
	store DoorCodeReadStore
}

func NewDoorCodeQueries(store DoorCodeReadStore) DoorCodeQueries {
	return &doorCodeQueriesImpl{store: store}
}

func (q *doorCodeQueriesImpl) RecentCodes(ctx context.Context, prop property.Property, n int) ([]DoorCodeView, error) {
	if n <= 0 {
		n = 3
	}
	return q.store.RecentByProperty(ctx, prop, n)
}
