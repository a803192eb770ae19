package commands

import (
	"context"

	"lodgekeeper/internal/domain/doorcode"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/pkg/clock"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/shared"
)

const doorCodeLookback = 3

type SetDoorCodeResult struct {
	Code *doorcode.DoorCode
	// ReuseWarning is set when the new code appeared among the last few
	// codes. Reuse is advisory, never a rejection.
	ReuseWarning bool
}

type DoorCodeCommands interface {
	// SetNewCode closes the property's open code and appends the new one in
	// one transaction, so exactly one code stays active.
	SetNewCode(ctx context.Context, prop property.Property, code string) (*SetDoorCodeResult, error)
}

type doorCodeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDoorCodeCommands(uow shared.UnitOfWork, clk clock.Clock) DoorCodeCommands {
	return &doorCodeCommandsImpl{uow: uow, clock: clk}
}

func (u *doorCodeCommandsImpl) SetNewCode(ctx context.Context, prop property.Property, code string) (*SetDoorCodeResult, error) {
	now := u.clock.Now()

	entity, err := doorcode.NewDoorCode(prop, code, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var reuse bool
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		recent, err := tx.Reads().RecentDoorCodes(ctx, prop, doorCodeLookback)
		if err != nil {
			return err
		}
		reuse = doorcode.WasRecentlyUsed(code, recent)

		if err := tx.DoorCodes().CloseActive(ctx, prop, now); err != nil {
			return err
		}
		return tx.DoorCodes().Insert(ctx, entity)
	})
	if err != nil {
		return nil, err
	}

	return &SetDoorCodeResult{Code: entity, ReuseWarning: reuse}, nil
}
