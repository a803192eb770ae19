package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read-side views. Flat structs decoupled from domain entities; the read
// store fills them straight from SQL rows.

type BookingView struct {
	ID         uuid.UUID
	Reference  string
	Property   string
	Mode       string
	Checkin    time.Time
	Checkout   time.Time
	Guests     int
	Children   int
	UserID     uuid.UUID
	RoomIDs    []uuid.UUID
	Status     string
	PriceCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BlackoutView struct {
	ID       uuid.UUID
	Property string
	Start    time.Time
	End      time.Time
	Reason   string
}

type RoomView struct {
	ID         uuid.UUID
	Property   string
	Name       string
	CategoryID *uuid.UUID
	MinGuests  int
	MaxGuests  int
	Beds       string
	ImageRef   string
	Active     bool
}

type PendingRefundView struct {
	ID                  uuid.UUID
	BookingID           uuid.UUID
	BookingReference    string
	PaymentRef          string
	PolicyAmountCents   int64
	MatchedThreshold    *int
	MatchedPercent      int
	Status              string
	ApprovedAmountCents *int64
	AdminNote           string
	ProcessorRefundRef  *string
	CreatedAt           time.Time
	ProcessedAt         *time.Time
}

type DoorCodeView struct {
	ID         uuid.UUID
	Property   string
	Code       string
	ActiveFrom time.Time
	ActiveTo   *time.Time
}
