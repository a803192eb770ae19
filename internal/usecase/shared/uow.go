package shared

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/doorcode"
	"lodgekeeper/internal/domain/pricing"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/domain/refund"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: non-transactional reads for validation and display. Reserve
	// must NOT use these; it re-reads inside its transaction.
	Reads() Reads
}

type Tx interface {
	Bookings() BookingRepository
	Blackouts() BlackoutRepository
	PendingRefunds() PendingRefundRepository
	DoorCodes() DoorCodeRepository
	Payments() PaymentRepository
	Reads() Reads
}

// Reads is the command-side read surface. When obtained from a Tx it sees
// the transaction's own writes and fresh committed state.
type Reads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BlockingBookingsIntersecting returns hold/complete bookings on the
	// property overlapping the half-open range.
	BlockingBookingsIntersecting(ctx context.Context, prop property.Property, dates booking.DateRange) ([]*booking.Booking, error)
	BlackoutsIntersecting(ctx context.Context, prop property.Property, dates booking.DateRange) ([]*booking.Blackout, error)

	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	SeasonsByProperty(ctx context.Context, prop property.Property) ([]*property.Season, error)
	PricingRules(ctx context.Context, prop property.Property, mode booking.Mode) ([]pricing.Rule, error)
	ActiveRefundPolicy(ctx context.Context, prop property.Property, mode booking.Mode) (*refund.Policy, error)
	PendingRefundByID(ctx context.Context, id uuid.UUID) (*refund.PendingRefund, error)
	RecentDoorCodes(ctx context.Context, prop property.Property, n int) ([]*doorcode.DoorCode, error)
	PaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (*PaymentSnapshot, error)
}

type BookingRepository interface {
	// LockProperty serializes concurrent Reserve calls for one property so
	// check-then-insert is race-free even for blackout checks the overlap
	// constraint cannot cover.
	LockProperty(ctx context.Context, prop property.Property) error
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BlackoutRepository interface {
	Create(ctx context.Context, b *booking.Blackout) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PendingRefundRepository interface {
	Create(ctx context.Context, p *refund.PendingRefund) error
	// Save persists a processed (approved/rejected) refund. It must refuse
	// to overwrite a row that is no longer pending.
	Save(ctx context.Context, p *refund.PendingRefund) error
}

type DoorCodeRepository interface {
	CloseActive(ctx context.Context, prop property.Property, at time.Time) error
	Insert(ctx context.Context, d *doorcode.DoorCode) error
}

type PaymentRepository interface {
	MarkRefunded(ctx context.Context, paymentID uuid.UUID) error
}

// RoomSnapshot is the minimal room view the booking commands need.
type RoomSnapshot struct {
	ID         uuid.UUID
	Property   property.Property
	Name       string
	CategoryID *uuid.UUID
	MinGuests  int
	MaxGuests  int
	Active     bool
}

// PaymentSnapshot mirrors the charge recorded by the external payment flow.
type PaymentSnapshot struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	ExternalRef string
	AmountCents int64
	Refunded    bool
}
