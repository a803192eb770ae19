package repository

import (
	"context"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"

	"github.com/google/uuid"
)

type BlackoutRepository struct {
	db db.DBTX
}

func NewBlackoutRepository(dbtx db.DBTX) *BlackoutRepository {
	return &BlackoutRepository{db: dbtx}
}

func (r *BlackoutRepository) Create(ctx context.Context, b *booking.Blackout) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO blackouts (id, property, start_on, end_on, reason)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID(), b.Property().String(), b.Start(), b.End(), b.Reason(),
	)
	if err != nil {
		return wrapPgErr("failed to create blackout", err)
	}
	return nil
}

func (r *BlackoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blackouts WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete blackout", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blackout not found", nil, infra.KindNotFound)
	}
	return nil
}
