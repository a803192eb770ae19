package refund

import (
	"errors"
	"time"

	"lodgekeeper/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid pending refund status")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// PendingRefund holds a policy-computed refund awaiting an admin decision.
// Both the policy amount and any custom override are retained for audit.
// Approved and rejected are terminal.
type PendingRefund struct {
	id                  uuid.UUID
	bookingID           uuid.UUID
	paymentRef          string
	policyAmountCents   int64
	matchedThreshold    *int
	matchedPercent      int
	status              Status
	approvedAmountCents *int64
	adminNote           string
	processorRefundRef  *string
	createdAt           time.Time
	processedAt         *time.Time
}

func NewPendingRefund(bookingID uuid.UUID, paymentRef string, policyAmountCents int64, matchedThreshold *int, matchedPercent int) *PendingRefund {
	return &PendingRefund{
		id:                uuid.New(),
		bookingID:         bookingID,
		paymentRef:        paymentRef,
		policyAmountCents: policyAmountCents,
		matchedThreshold:  matchedThreshold,
		matchedPercent:    matchedPercent,
		status:            StatusPending,
	}
}

func ReconstructPendingRefund(
	id, bookingID uuid.UUID,
	paymentRef string,
	policyAmountCents int64,
	matchedThreshold *int,
	matchedPercent int,
	status Status,
	approvedAmountCents *int64,
	adminNote string,
	processorRefundRef *string,
	createdAt time.Time,
	processedAt *time.Time,
) *PendingRefund {
	return &PendingRefund{
		id:                  id,
		bookingID:           bookingID,
		paymentRef:          paymentRef,
		policyAmountCents:   policyAmountCents,
		matchedThreshold:    matchedThreshold,
		matchedPercent:      matchedPercent,
		status:              status,
		approvedAmountCents: approvedAmountCents,
		adminNote:           adminNote,
		processorRefundRef:  processorRefundRef,
		createdAt:           createdAt,
		processedAt:         processedAt,
	}
}

// ApprovalAmount returns the amount the processor should be asked to refund:
// the admin override when given, otherwise the policy-computed amount.
func (p *PendingRefund) ApprovalAmount(customCents *int64) int64 {
	if customCents != nil {
		return *customCents
	}
	return p.policyAmountCents
}

// Approve records a successful processor refund. The caller must have made
// the processor call first; a failed call leaves the entity pending so the
// admin can retry.
func (p *PendingRefund) Approve(amountCents int64, processorRef string, now time.Time) error {
	if p.status != StatusPending {
		return errs.ErrAlreadyProcessed
	}
	p.status = StatusApproved
	p.approvedAmountCents = &amountCents
	p.processorRefundRef = &processorRef
	p.processedAt = &now
	return nil
}

// Reject closes the refund without moving money. The note is mandatory so
// the guest-facing record always explains the decision.
func (p *PendingRefund) Reject(note string, now time.Time) error {
	if p.status != StatusPending {
		return errs.ErrAlreadyProcessed
	}
	if note == "" {
		return errs.ErrRejectionNoteMissing
	}
	p.status = StatusRejected
	p.adminNote = note
	p.processedAt = &now
	return nil
}

func (p *PendingRefund) IsPending() bool { return p.status == StatusPending }

func (p *PendingRefund) ID() uuid.UUID               { return p.id }
func (p *PendingRefund) BookingID() uuid.UUID        { return p.bookingID }
func (p *PendingRefund) PaymentRef() string          { return p.paymentRef }
func (p *PendingRefund) PolicyAmountCents() int64    { return p.policyAmountCents }
func (p *PendingRefund) MatchedThreshold() *int      { return p.matchedThreshold }
func (p *PendingRefund) MatchedPercent() int         { return p.matchedPercent }
func (p *PendingRefund) Status() Status              { return p.status }
func (p *PendingRefund) ApprovedAmountCents() *int64 { return p.approvedAmountCents }
func (p *PendingRefund) AdminNote() string           { return p.adminNote }
func (p *PendingRefund) ProcessorRefundRef() *string { return p.processorRefundRef }
func (p *PendingRefund) CreatedAt() time.Time        { return p.createdAt }
func (p *PendingRefund) ProcessedAt() *time.Time     { return p.processedAt }
