package repository

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/doorcode"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/infra/db"
)

type DoorCodeRepository struct {
	db db.DBTX
}

func NewDoorCodeRepository(dbtx db.DBTX) *DoorCodeRepository {
	return &DoorCodeRepository{db: dbtx}
}

// CloseActive stamps the open code's active_to. Zero rows affected is fine:
// the very first rotation has nothing to close.
func (r *DoorCodeRepository) CloseActive(ctx context.Context, prop property.Property, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE door_codes SET active_to = $2 WHERE property = $1 AND active_to IS NULL`,
		prop.String(), at,
	)
	if err != nil {
		return wrapPgErr("failed to close active door code", err)
	}
	return nil
}

func (r *DoorCodeRepository) Insert(ctx context.Context, d *doorcode.DoorCode) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO door_codes (id, property, code, active_from, active_to)
		VALUES ($1, $2, $3, $4, $5)`,
		d.ID(), d.Property().String(), d.Code(), d.ActiveFrom(), d.ActiveTo(),
	)
	if err != nil {
		return wrapPgErr("failed to insert door code", err)
	}
	return nil
}
