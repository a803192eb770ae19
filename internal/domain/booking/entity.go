package booking

import (
	"errors"
	"time"

	"lodgekeeper/internal/domain/property"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount = errors.New("invalid guest count")
	ErrRoomsOnBuyout     = errors.New("buyout booking cannot reference rooms")
	ErrRoomRequired      = errors.New("room booking requires at least one room")
	ErrAlreadyCanceled   = errors.New("booking is already canceled")
	ErrNotRefundable     = errors.New("booking is not in a refundable status")
)

type Booking struct {
	id        uuid.UUID
	reference string
	property  property.Property
	mode      Mode
	dates     DateRange
	guests    int
	children  int
	userID    uuid.UUID
	roomIDs   []uuid.UUID
	status    Status
	price     Money
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(
	prop property.Property,
	mode Mode,
	dates DateRange,
	guests, children int,
	userID uuid.UUID,
	roomIDs []uuid.UUID,
	price Money,
) (*Booking, error) {
	if guests < 1 || children < 0 {
		return nil, ErrInvalidGuestCount
	}
	switch mode {
	case ModeBuyout:
		if len(roomIDs) > 0 {
			return nil, ErrRoomsOnBuyout
		}
	case ModeRoom:
		if len(roomIDs) == 0 {
			return nil, ErrRoomRequired
		}
	}

	return &Booking{
		id:        uuid.New(),
		reference: NewReference(),
		property:  prop,
		mode:      mode,
		dates:     dates,
		guests:    guests,
		children:  children,
		userID:    userID,
		roomIDs:   roomIDs,
		status:    StatusComplete,
		price:     price,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	reference string,
	prop property.Property,
	mode Mode,
	dates DateRange,
	guests, children int,
	userID uuid.UUID,
	roomIDs []uuid.UUID,
	status Status,
	price Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		reference: reference,
		property:  prop,
		mode:      mode,
		dates:     dates,
		guests:    guests,
		children:  children,
		userID:    userID,
		roomIDs:   roomIDs,
		status:    status,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel releases the booking's inventory. Idempotent cancellation is an
// error so the caller never files a second refund for the same stay.
func (b *Booking) Cancel() error {
	if b.status == StatusCanceled || b.status == StatusRefunded {
		return ErrAlreadyCanceled
	}
	b.status = StatusCanceled
	return nil
}

// MarkRefunded is reached only from canceled, after an approved refund.
func (b *Booking) MarkRefunded() error {
	if b.status != StatusCanceled {
		return ErrNotRefundable
	}
	b.status = StatusRefunded
	return nil
}

// ConflictsWith reports whether two bookings contend for the same inventory
// over overlapping dates. A buyout occupies the whole property, so it
// conflicts with everything on the property; room bookings conflict only
// when they share a room.
func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.property != other.property {
		return false
	}
	if !b.status.BlocksInventory() || !other.status.BlocksInventory() {
		return false
	}
	if !b.dates.Overlaps(other.dates) {
		return false
	}
	if b.mode == ModeBuyout || other.mode == ModeBuyout {
		return true
	}
	return sharesRoom(b.roomIDs, other.roomIDs)
}

func sharesRoom(a, b []uuid.UUID) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func (b *Booking) TotalGuests() int { return b.guests + b.children }

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) Reference() string           { return b.reference }
func (b *Booking) Property() property.Property { return b.property }
func (b *Booking) Mode() Mode                  { return b.mode }
func (b *Booking) Dates() DateRange            { return b.dates }
func (b *Booking) Guests() int                 { return b.guests }
func (b *Booking) Children() int               { return b.children }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) RoomIDs() []uuid.UUID        { return b.roomIDs }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Price() Money                { return b.price }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
