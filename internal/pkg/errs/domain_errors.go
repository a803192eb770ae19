package errs

import "errors"

// Domain-specific sentinel errors surfaced by the usecase layers.
var (
	// Availability errors
	ErrInvalidRange    = errors.New("invalid date range")
	ErrBookingConflict = errors.New("booking conflict")

	// Lookup errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrRoomNotFound          = errors.New("room not found")
	ErrRoomInactive          = errors.New("room is inactive")
	ErrPendingRefundNotFound = errors.New("pending refund not found")
	ErrBlackoutNotFound      = errors.New("blackout not found")

	// Pricing errors
	ErrNoPricingRuleFound = errors.New("no pricing rule found")

	// Refund errors
	ErrNoActiveRefundPolicy = errors.New("no active refund policy")
	ErrAlreadyProcessed     = errors.New("pending refund already processed")
	ErrRejectionNoteMissing = errors.New("rejection note required")
	ErrProcessorFailure     = errors.New("payment processor failure")
	ErrNoChargeablePayment  = errors.New("no chargeable payment found")
	ErrAlreadyRefunded      = errors.New("payment already refunded")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
