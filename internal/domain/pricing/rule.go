package pricing

import (
	"errors"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"

	"github.com/google/uuid"
)

var ErrUnknownUnit = errors.New("unknown price unit")

// Unit decides what the rule amount multiplies against.
type Unit string

const (
	// UnitPerPersonPerNight charges each adult (and child, at the child
	// rate) for every night of the stay.
	UnitPerPersonPerNight Unit = "per_person_per_night"
	// UnitPerGuestPerDay is Clear Lake day-use billing.
	UnitPerGuestPerDay Unit = "per_guest_per_day"
	// UnitBuyoutFixed is a flat nightly amount regardless of occupancy.
	UnitBuyoutFixed Unit = "buyout_fixed"
)

func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !u.IsValid() {
		return "", ErrUnknownUnit
	}
	return u, nil
}

func (u Unit) String() string {
	return string(u)
}

func (u Unit) IsValid() bool {
	switch u {
	case UnitPerPersonPerNight, UnitPerGuestPerDay, UnitBuyoutFixed:
		return true
	default:
		return false
	}
}

// Rule is one pricing entry. Narrowing fields are optional: a rule may be
// pinned to a season, a room category, or a single room. RoomID and
// CategoryID are mutually exclusive at the storage layer.
type Rule struct {
	ID          uuid.UUID
	Property    property.Property
	Mode        booking.Mode
	SeasonID    *uuid.UUID
	CategoryID  *uuid.UUID
	RoomID      *uuid.UUID
	AdultCents  int64
	ChildCents  *int64
	Unit        Unit
}
