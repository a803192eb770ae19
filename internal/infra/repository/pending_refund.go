package repository

import (
	"context"

	"lodgekeeper/internal/domain/refund"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"
)

type PendingRefundRepository struct {
	db db.DBTX
}

func NewPendingRefundRepository(dbtx db.DBTX) *PendingRefundRepository {
	return &PendingRefundRepository{db: dbtx}
}

func (r *PendingRefundRepository) Create(ctx context.Context, p *refund.PendingRefund) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO pending_refunds (id, booking_id, payment_ref, policy_amount_cents, matched_threshold, matched_percent, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID(), p.BookingID(), p.PaymentRef(), p.PolicyAmountCents(),
		p.MatchedThreshold(), p.MatchedPercent(), p.Status().String(),
	)
	if err != nil {
		return wrapPgErr("failed to create pending refund", err)
	}
	return nil
}

// Save persists an approval or rejection. The WHERE status = 'pending'
// guard makes a double decision lose cleanly even if two admin sessions
// race past the entity check.
func (r *PendingRefundRepository) Save(ctx context.Context, p *refund.PendingRefund) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE pending_refunds
		SET status = $2, approved_amount_cents = $3, admin_note = $4, processor_refund_ref = $5, processed_at = $6
		WHERE id = $1 AND status = 'pending'`,
		p.ID(), p.Status().String(), p.ApprovedAmountCents(), p.AdminNote(), p.ProcessorRefundRef(), p.ProcessedAt(),
	)
	if err != nil {
		return wrapPgErr("failed to save pending refund", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending refund no longer pending", nil, infra.KindConflict)
	}
	return nil
}
