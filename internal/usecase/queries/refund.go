package queries

import (
	"context"

	"lodgekeeper/internal/pkg/errs"

	"github.com/google/uuid"
)

type PendingRefundReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PendingRefundView, error)
	ListByStatus(ctx context.Context, status string) ([]PendingRefundView, error)
}

type RefundQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PendingRefundView, error)
	// ListPending is the admin approval inbox.
	ListPending(ctx context.Context) ([]PendingRefundView, error)
	ListByStatus(ctx context.Context, status string) ([]PendingRefundView, error)
}

type refundQueriesImpl struct {
	store PendingRefundReadStore
}

func NewRefundQueries(store PendingRefundReadStore) RefundQueries {
	return &refundQueriesImpl{store: store}
}

func (q *refundQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PendingRefundView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrPendingRefundNotFound)
	}
	return view, nil
}

func (q *refundQueriesImpl) ListPending(ctx context.Context) ([]PendingRefundView, error) {
	return q.store.ListByStatus(ctx, "pending")
}

func (q *refundQueriesImpl) ListByStatus(ctx context.Context, status string) ([]PendingRefundView, error) {
	return q.store.ListByStatus(ctx, status)
}
