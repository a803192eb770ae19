package commands

import (
	"context"
	"errors"
	"log/slog"

	"lodgekeeper/internal/domain/refund"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/pkg/clock"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApproveRefundCommand struct {
	PendingRefundID uuid.UUID
	// CustomAmountCents overrides the policy-computed amount when set. Both
	// amounts are retained for audit.
	CustomAmountCents *int64
	Reason            string
}

type ApproveRefundResult struct {
	PendingRefund      *refund.PendingRefund
	RefundedCents      int64
	ProcessorRefundRef string
}

type RefundCommands interface {
	// Approve charges the payment processor and marks the refund approved.
	// If the processor call fails the refund stays pending so the admin can
	// retry; the error distinguishes a gateway fault from a charge already
	// refunded upstream.
	Approve(ctx context.Context, cmd ApproveRefundCommand) (*ApproveRefundResult, error)
	// Reject closes the refund without a processor call. The note is
	// mandatory.
	Reject(ctx context.Context, pendingRefundID uuid.UUID, note string) (*refund.PendingRefund, error)
}

type refundCommandsImpl struct {
	uow       shared.UnitOfWork
	processor shared.PaymentProcessor
	clock     clock.Clock
}

func NewRefundCommands(uow shared.UnitOfWork, processor shared.PaymentProcessor, clk clock.Clock) RefundCommands {
	return &refundCommandsImpl{uow: uow, processor: processor, clock: clk}
}

func (u *refundCommandsImpl) Approve(ctx context.Context, cmd ApproveRefundCommand) (*ApproveRefundResult, error) {
	pending, err := u.uow.Reads().PendingRefundByID(ctx, cmd.PendingRefundID)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrPendingRefundNotFound)
	}
	if !pending.IsPending() {
		return nil, errs.ErrAlreadyProcessed
	}

	payment, err := u.uow.Reads().PaymentByBookingID(ctx, pending.BookingID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNoChargeablePayment)
		}
		return nil, err
	}
	if payment.Refunded {
		return nil, errs.ErrAlreadyRefunded
	}

	amount := pending.ApprovalAmount(cmd.CustomAmountCents)
	if amount < 0 || amount > payment.AmountCents {
		return nil, errs.Mark(errs.Newf("refund amount %d outside charge of %d", amount, payment.AmountCents), errs.ErrDomainValidation)
	}

	// The processor call happens before the state transition: a gateway
	// failure must leave the refund pending and retryable.
	refundRef, err := u.processor.Refund(ctx, pending.PaymentRef(), amount, cmd.Reason)
	if err != nil {
		return nil, classifyProcessorError(err)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fresh, err := tx.Reads().PendingRefundByID(ctx, cmd.PendingRefundID)
		if err != nil {
			return mapNotFound(err, errs.ErrPendingRefundNotFound)
		}
		if err := fresh.Approve(amount, refundRef, u.clock.Now()); err != nil {
			return err
		}
		if err := tx.PendingRefunds().Save(ctx, fresh); err != nil {
			return err
		}
		if err := tx.Payments().MarkRefunded(ctx, payment.ID); err != nil {
			return err
		}

		bk, err := tx.Reads().BookingByID(ctx, fresh.BookingID())
		if err != nil {
			return mapNotFound(err, errs.ErrBookingNotFound)
		}
		if err := bk.MarkRefunded(); err != nil {
			// Booking left canceled rather than refunded; not worth failing
			// the approval over.
			slog.Warn("booking not in refundable status", "booking_id", bk.ID(), "status", bk.Status().String())
			return nil
		}
		if err := tx.Bookings().UpdateStatus(ctx, bk.ID(), bk.Status()); err != nil {
			return err
		}
		pending = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ApproveRefundResult{
		PendingRefund:      pending,
		RefundedCents:      amount,
		ProcessorRefundRef: refundRef,
	}, nil
}

func (u *refundCommandsImpl) Reject(ctx context.Context, pendingRefundID uuid.UUID, note string) (*refund.PendingRefund, error) {
	var rejected *refund.PendingRefund
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending, err := tx.Reads().PendingRefundByID(ctx, pendingRefundID)
		if err != nil {
			return mapNotFound(err, errs.ErrPendingRefundNotFound)
		}
		if err := pending.Reject(note, u.clock.Now()); err != nil {
			return err
		}
		if err := tx.PendingRefunds().Save(ctx, pending); err != nil {
			return err
		}
		rejected = pending
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

func classifyProcessorError(err error) error {
	var perr *shared.ProcessorError
	if errors.As(err, &perr) && perr.Outcome == shared.OutcomeAlreadyRefunded {
		return errs.Mark(err, errs.ErrAlreadyRefunded)
	}
	return errs.Mark(err, errs.ErrProcessorFailure)
}
