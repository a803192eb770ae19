package commands

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBlackoutCommand struct {
	Property property.Property
	Start    time.Time
	End      time.Time
	Reason   string
}

type CreateBlackoutResult struct {
	Blackout *booking.Blackout
	// Warnings lists existing bookings caught inside the blackout. The
	// blackout is still created; resolving the bookings is a manual step.
	Warnings []string
}

type BlackoutCommands interface {
	// CreateBlackout closes the property for the full-day-inclusive range.
	// Existing bookings in the range are reported, not canceled.
	CreateBlackout(ctx context.Context, cmd CreateBlackoutCommand) (*CreateBlackoutResult, error)
	RemoveBlackout(ctx context.Context, id uuid.UUID) error
}

type blackoutCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBlackoutCommands(uow shared.UnitOfWork) BlackoutCommands {
	return &blackoutCommandsImpl{uow: uow}
}

func (u *blackoutCommandsImpl) CreateBlackout(ctx context.Context, cmd CreateBlackoutCommand) (*CreateBlackoutResult, error) {
	entity, err := booking.NewBlackout(cmd.Property, cmd.Start, cmd.End, cmd.Reason)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Widen the inclusive end by a day for the half-open overlap query.
	blocked, err := booking.NewDateRange(entity.Start(), entity.End().AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result CreateBlackoutResult
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().LockProperty(ctx, cmd.Property); err != nil {
			return err
		}
		caught, err := tx.Reads().BlockingBookingsIntersecting(ctx, cmd.Property, blocked)
		if err != nil {
			return err
		}
		for _, b := range caught {
			result.Warnings = append(result.Warnings, "booking "+b.Reference()+" falls inside the blackout")
		}
		return tx.Blackouts().Create(ctx, entity)
	})
	if err != nil {
		return nil, err
	}
	result.Blackout = entity
	return &result, nil
}

func (u *blackoutCommandsImpl) RemoveBlackout(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapNotFound(tx.Blackouts().Delete(ctx, id), errs.ErrBlackoutNotFound)
	})
}
