package readstore

import (
	"context"

	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"
	"lodgekeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PendingRefundReadStore struct {
	db db.DBTX
}

func NewPendingRefundReadStore(dbtx db.DBTX) *PendingRefundReadStore {
	return &PendingRefundReadStore{db: dbtx}
}

const pendingRefundViewQuery = `
	SELECT pr.id, pr.booking_id, b.reference, pr.payment_ref, pr.policy_amount_cents,
	       pr.matched_threshold, pr.matched_percent, pr.status, pr.approved_amount_cents,
	       pr.admin_note, pr.processor_refund_ref, pr.created_at, pr.processed_at
	FROM pending_refunds pr
	JOIN bookings b ON b.id = pr.booking_id`

func (s *PendingRefundReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PendingRefundView, error) {
	var v queries.PendingRefundView
	err := s.db.QueryRow(ctx, pendingRefundViewQuery+` WHERE pr.id = $1`, id).Scan(
		&v.ID, &v.BookingID, &v.BookingReference, &v.PaymentRef, &v.PolicyAmountCents,
		&v.MatchedThreshold, &v.MatchedPercent, &v.Status, &v.ApprovedAmountCents,
		&v.AdminNote, &v.ProcessorRefundRef, &v.CreatedAt, &v.ProcessedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("pending refund not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pending refund", err)
	}
	return &v, nil
}

func (s *PendingRefundReadStore) ListByStatus(ctx context.Context, status string) ([]queries.PendingRefundView, error) {
	rows, err := s.db.Query(ctx, pendingRefundViewQuery+` WHERE pr.status = $1 ORDER BY pr.created_at`, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending refunds", err)
	}
	defer rows.Close()

	var out []queries.PendingRefundView
	for rows.Next() {
		var v queries.PendingRefundView
		if err := rows.Scan(
			&v.ID, &v.BookingID, &v.BookingReference, &v.PaymentRef, &v.PolicyAmountCents,
			&v.MatchedThreshold, &v.MatchedPercent, &v.Status, &v.ApprovedAmountCents,
			&v.AdminNote, &v.ProcessorRefundRef, &v.CreatedAt, &v.ProcessedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending refund", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list pending refunds", err)
	}
	return out, nil
}
