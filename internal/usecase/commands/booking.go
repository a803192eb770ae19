package commands

import (
	"context"
	"log/slog"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/pricing"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/domain/refund"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/pkg/clock"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/queries"
	"lodgekeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingCommand struct {
	Property property.Property
	Mode     booking.Mode
	Checkin  time.Time
	Checkout time.Time
	Guests   int
	Children int
	UserID   uuid.UUID
	RoomIDs  []uuid.UUID
}

type CreateBookingResult struct {
	Booking  *booking.Booking
	Quote    pricing.Quote
	Warnings []string
}

type ChangeBookingDatesCommand struct {
	BookingID uuid.UUID
	Checkin   time.Time
	Checkout  time.Time
}

type CancelBookingResult struct {
	Booking       *booking.Booking
	PendingRefund *refund.PendingRefund
	Warnings      []string
}

type BookingCommands interface {
	// CreateBooking is the admin reservation path: it checks availability,
	// resolves the price and writes the booking atomically. Season limits
	// are advisory here; the admin may override them.
	CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*CreateBookingResult, error)
	// ChangeDates moves an existing booking, re-checking availability with
	// the booking's own dates excluded and re-pricing the stay.
	ChangeDates(ctx context.Context, cmd ChangeBookingDatesCommand) (*CreateBookingResult, error)
	// CancelBooking releases inventory and, when a charge exists, files a
	// pending refund for admin approval. A missing refund policy downgrades
	// the refund to zero but never blocks the cancellation.
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*CancelBookingResult, error)
	// DeleteBooking hard-deletes; admin-only escape hatch.
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	directory shared.UserDirectory
	notifier  shared.NotificationSender
	clock     clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	directory shared.UserDirectory,
	notifier shared.NotificationSender,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		directory: directory,
		notifier:  notifier,
		clock:     clk,
	}
}

func (u *bookingCommandsImpl) CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*CreateBookingResult, error) {
	dates, err := booking.NewDateRange(cmd.Checkin, cmd.Checkout)
	if err != nil {
		return nil, err
	}

	roomID, categoryID, err := u.resolveRoomScope(ctx, cmd.Property, cmd.Mode, cmd.RoomIDs)
	if err != nil {
		return nil, err
	}

	quote, warnings, err := u.priceStay(ctx, pricing.Stay{
		Property:   cmd.Property,
		Mode:       cmd.Mode,
		Dates:      dates,
		Adults:     cmd.Guests,
		Children:   cmd.Children,
		RoomID:     roomID,
		CategoryID: categoryID,
	})
	if err != nil {
		return nil, err
	}

	price, err := booking.NewMoney(quote.TotalCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := booking.NewBooking(cmd.Property, cmd.Mode, dates, cmd.Guests, cmd.Children, cmd.UserID, cmd.RoomIDs, price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().LockProperty(ctx, cmd.Property); err != nil {
			return err
		}
		chk := queries.AvailabilityCheck{
			Property: cmd.Property,
			Mode:     cmd.Mode,
			RoomIDs:  cmd.RoomIDs,
			Dates:    dates,
			Guests:   cmd.Guests + cmd.Children,
		}
		if err := queries.CheckAvailability(ctx, tx.Reads(), chk); err != nil {
			return err
		}
		return tx.Bookings().Create(ctx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		return nil, err
	}

	u.sendConfirmation(ctx, entity)

	return &CreateBookingResult{Booking: entity, Quote: quote, Warnings: warnings}, nil
}

func (u *bookingCommandsImpl) ChangeDates(ctx context.Context, cmd ChangeBookingDatesCommand) (*CreateBookingResult, error) {
	dates, err := booking.NewDateRange(cmd.Checkin, cmd.Checkout)
	if err != nil {
		return nil, err
	}

	current, err := u.uow.Reads().BookingByID(ctx, cmd.BookingID)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrBookingNotFound)
	}

	roomID, categoryID, err := u.resolveRoomScope(ctx, current.Property(), current.Mode(), current.RoomIDs())
	if err != nil {
		return nil, err
	}

	quote, warnings, err := u.priceStay(ctx, pricing.Stay{
		Property:   current.Property(),
		Mode:       current.Mode(),
		Dates:      dates,
		Adults:     current.Guests(),
		Children:   current.Children(),
		RoomID:     roomID,
		CategoryID: categoryID,
	})
	if err != nil {
		return nil, err
	}

	price, err := booking.NewMoney(quote.TotalCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var updated *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().LockProperty(ctx, current.Property()); err != nil {
			return err
		}

		// Re-read inside the lock; the display read above may be stale.
		fresh, err := tx.Reads().BookingByID(ctx, cmd.BookingID)
		if err != nil {
			return mapNotFound(err, errs.ErrBookingNotFound)
		}

		excludeID := fresh.ID()
		chk := queries.AvailabilityCheck{
			Property:         fresh.Property(),
			Mode:             fresh.Mode(),
			RoomIDs:          fresh.RoomIDs(),
			Dates:            dates,
			Guests:           fresh.TotalGuests(),
			ExcludeBookingID: &excludeID,
		}
		if err := queries.CheckAvailability(ctx, tx.Reads(), chk); err != nil {
			return err
		}

		updated = booking.Reconstruct(
			fresh.ID(), fresh.Reference(), fresh.Property(), fresh.Mode(), dates,
			fresh.Guests(), fresh.Children(), fresh.UserID(), fresh.RoomIDs(),
			fresh.Status(), price, fresh.CreatedAt(), fresh.UpdatedAt(),
		)
		return tx.Bookings().Update(ctx, updated)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		return nil, err
	}

	return &CreateBookingResult{Booking: updated, Quote: quote, Warnings: warnings}, nil
}

func (u *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*CancelBookingResult, error) {
	var result CancelBookingResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return mapNotFound(err, errs.ErrBookingNotFound)
		}

		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Bookings().UpdateStatus(ctx, entity.ID(), entity.Status()); err != nil {
			return err
		}
		result.Booking = entity

		payment, err := tx.Reads().PaymentByBookingID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Nothing was charged; nothing to refund.
				return nil
			}
			return err
		}

		pending, warning := u.buildPendingRefund(ctx, tx, entity, payment)
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		if err := tx.PendingRefunds().Create(ctx, pending); err != nil {
			return err
		}
		result.PendingRefund = pending
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// buildPendingRefund resolves the policy amount. Policy absence is not a
// hard failure for cancellation; the refund is filed at zero with a warning.
func (u *bookingCommandsImpl) buildPendingRefund(ctx context.Context, tx shared.Tx, entity *booking.Booking, payment *shared.PaymentSnapshot) (*refund.PendingRefund, string) {
	daysBefore := entity.Dates().DaysUntil(u.clock.Now())
	paid, _ := booking.NewMoney(payment.AmountCents)

	policy, err := tx.Reads().ActiveRefundPolicy(ctx, entity.Property(), entity.Mode())
	if err != nil {
		return refund.NewPendingRefund(entity.ID(), payment.ExternalRef, 0, nil, 0),
			errs.ErrNoActiveRefundPolicy.Error()
	}

	amount, rule, ok := policy.RefundAmount(paid, daysBefore)
	if !ok {
		// No tier satisfied: 0% refund, still recorded for the audit trail.
		return refund.NewPendingRefund(entity.ID(), payment.ExternalRef, 0, nil, 0), ""
	}
	threshold := rule.DaysBeforeCheckin
	return refund.NewPendingRefund(entity.ID(), payment.ExternalRef, amount.Cents(), &threshold, rule.Percent), ""
}

func (u *bookingCommandsImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BookingByID(ctx, bookingID); err != nil {
			return mapNotFound(err, errs.ErrBookingNotFound)
		}
		return tx.Bookings().Delete(ctx, bookingID)
	})
}

// resolveRoomScope validates the rooms and derives the pricing scope. With
// several rooms the first one drives rule specificity; admin multi-room
// bookings share a single quote.
func (u *bookingCommandsImpl) resolveRoomScope(ctx context.Context, prop property.Property, mode booking.Mode, roomIDs []uuid.UUID) (roomID, categoryID *uuid.UUID, err error) {
	if mode != booking.ModeRoom {
		return nil, nil, nil
	}
	if len(roomIDs) == 0 {
		return nil, nil, errs.Mark(booking.ErrRoomRequired, errs.ErrDomainValidation)
	}
	for i, id := range roomIDs {
		room, err := u.uow.Reads().RoomByID(ctx, id)
		if err != nil {
			return nil, nil, mapNotFound(err, errs.ErrRoomNotFound)
		}
		if room.Property != prop {
			return nil, nil, errs.Mark(errs.Newf("room %s does not belong to %s", id, prop), errs.ErrDomainValidation)
		}
		if !room.Active {
			return nil, nil, errs.ErrRoomInactive
		}
		if i == 0 {
			rid := room.ID
			roomID = &rid
			categoryID = room.CategoryID
		}
	}
	return roomID, categoryID, nil
}

func (u *bookingCommandsImpl) priceStay(ctx context.Context, stay pricing.Stay) (pricing.Quote, []string, error) {
	seasons, err := u.uow.Reads().SeasonsByProperty(ctx, stay.Property)
	if err != nil {
		return pricing.Quote{}, nil, err
	}

	var warnings []string
	season := property.ResolveSeason(seasons, stay.Dates.Checkin())
	if season != nil {
		id := season.ID()
		stay.SeasonID = &id
		warnings = seasonWarnings(season, stay.Dates, u.clock.Now())
	}

	rules, err := u.uow.Reads().PricingRules(ctx, stay.Property, stay.Mode)
	if err != nil {
		return pricing.Quote{}, nil, err
	}

	quote, err := pricing.Resolve(rules, stay)
	if err != nil {
		return pricing.Quote{}, nil, err
	}
	return quote, warnings, nil
}

// seasonWarnings surfaces season limits as advisories. The admin path may
// override them, unlike the end-user flow.
func seasonWarnings(season *property.Season, dates booking.DateRange, now time.Time) []string {
	var warnings []string
	if limit := season.AdvanceBookDays(); limit != nil && dates.DaysUntil(now) > *limit {
		warnings = append(warnings, "checkin is beyond the season's advance booking window")
	}
	if max := season.MaxNights(); max != nil && dates.Nights() > *max {
		warnings = append(warnings, "stay exceeds the season's maximum nights")
	}
	return warnings
}

func (u *bookingCommandsImpl) sendConfirmation(ctx context.Context, entity *booking.Booking) {
	info, err := u.directory.Lookup(ctx, entity.UserID())
	if err != nil {
		slog.Warn("user lookup failed, skipping confirmation", "booking_id", entity.ID(), "error", err.Error())
		return
	}
	u.notifier.SendBookingConfirmation(ctx, entity.ID(), entity.Reference(), info.Email)
}

func mapNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
