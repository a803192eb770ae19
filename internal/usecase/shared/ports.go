package shared

import (
	"context"

	"github.com/google/uuid"
)

// PaymentProcessor is the external gateway that moves money. Refund must
// support partial amounts up to the original charge.
type PaymentProcessor interface {
	Refund(ctx context.Context, externalPaymentRef string, amountCents int64, reason string) (externalRefundRef string, err error)
}

// ProcessorOutcome classifies gateway failures so the admin UI can tell a
// retryable gateway error from a charge that was already refunded upstream.
type ProcessorOutcome string

const (
	OutcomeGatewayError    ProcessorOutcome = "gateway_error"
	OutcomeAlreadyRefunded ProcessorOutcome = "already_refunded"
)

type ProcessorError struct {
	Outcome ProcessorOutcome
	Cause   error
}

func (e *ProcessorError) Error() string {
	if e.Cause != nil {
		return string(e.Outcome) + ": " + e.Cause.Error()
	}
	return string(e.Outcome)
}

func (e *ProcessorError) Unwrap() error { return e.Cause }

type UserInfo struct {
	Email     string
	FirstName string
	LastName  string
}

// UserDirectory is the read-only identity lookup used for display and refund
// routing. Identity management itself lives outside this system.
type UserDirectory interface {
	Lookup(ctx context.Context, userID uuid.UUID) (UserInfo, error)
}

// NotificationSender delivers booking confirmations. Fire-and-forget: a
// delivery failure never rolls back the booking.
type NotificationSender interface {
	SendBookingConfirmation(ctx context.Context, bookingID uuid.UUID, reference string, email string)
}
