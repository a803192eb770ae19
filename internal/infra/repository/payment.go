package repository

import (
	"context"

	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

func (r *PaymentRepository) MarkRefunded(ctx context.Context, paymentID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments SET refunded = true WHERE id = $1 AND NOT refunded`,
		paymentID,
	)
	if err != nil {
		return wrapPgErr("failed to mark payment refunded", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment already refunded or missing", nil, infra.KindConflict)
	}
	return nil
}
