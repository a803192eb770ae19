package readstore

import (
	"context"

	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"
	"lodgekeeper/internal/usecase/queries"
)

type DoorCodeReadStore struct {
	db db.DBTX
}

func NewDoorCodeReadStore(dbtx db.DBTX) *DoorCodeReadStore {
	return &DoorCodeReadStore{db: dbtx}
}

func (s *DoorCodeReadStore) RecentByProperty(ctx context.Context, prop property.Property, n int) ([]queries.DoorCodeView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, property, code, active_from, active_to
		FROM door_codes WHERE property = $1
		ORDER BY active_from DESC LIMIT $2`,
		prop.String(), n,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list door codes", err)
	}
	defer rows.Close()

	var out []queries.DoorCodeView
	for rows.Next() {
		var v queries.DoorCodeView
		if err := rows.Scan(&v.ID, &v.Property, &v.Code, &v.ActiveFrom, &v.ActiveTo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan door code", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list door codes", err)
	}
	return out, nil
}
