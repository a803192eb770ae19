package pricing

import (
	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/pkg/errs"

	"github.com/google/uuid"
)

// Stay is the pricing input: where, when, how, and for whom.
type Stay struct {
	Property   property.Property
	Mode       booking.Mode
	Dates      booking.DateRange
	Adults     int
	Children   int
	RoomID     *uuid.UUID
	CategoryID *uuid.UUID
	SeasonID   *uuid.UUID
}

type Quote struct {
	RuleID     uuid.UUID
	Unit       Unit
	AdultCents int64
	ChildCents int64
	Nights     int
	TotalCents int64
}

// Specificity tiers; a room-pinned rule always beats a category rule, which
// beats a property-wide one. Within a tier a season-specific rule outranks a
// season-agnostic one, hence the *2+1 scoring.
const (
	tierProperty = 1
	tierCategory = 2
	tierRoom     = 3
)

// Resolve picks the most specific matching rule and computes the stay total.
// No match at any tier is an error; a stay is never silently priced at zero.
func Resolve(rules []Rule, stay Stay) (Quote, error) {
	best := -1
	bestScore := -1
	for i, r := range rules {
		score, ok := matchScore(r, stay)
		if !ok {
			continue
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return Quote{}, errs.ErrNoPricingRuleFound
	}
	return quoteFor(rules[best], stay), nil
}

func matchScore(r Rule, stay Stay) (int, bool) {
	if r.Property != stay.Property || r.Mode != stay.Mode {
		return 0, false
	}
	if r.SeasonID != nil && !uuidPtrEqual(r.SeasonID, stay.SeasonID) {
		return 0, false
	}

	var tier int
	switch {
	case r.RoomID != nil:
		if !uuidPtrEqual(r.RoomID, stay.RoomID) {
			return 0, false
		}
		tier = tierRoom
	case r.CategoryID != nil:
		if !uuidPtrEqual(r.CategoryID, stay.CategoryID) {
			return 0, false
		}
		tier = tierCategory
	default:
		tier = tierProperty
	}

	score := tier * 2
	if r.SeasonID != nil {
		score++
	}
	return score, true
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

func quoteFor(r Rule, stay Stay) Quote {
	nights := stay.Dates.Nights()
	childCents := childRate(r, stay.Property, stay.Mode)

	var total int64
	switch r.Unit {
	case UnitBuyoutFixed:
		total = r.AdultCents * int64(nights)
	case UnitPerGuestPerDay:
		perDay := r.AdultCents*int64(stay.Adults) + childCents*int64(stay.Children)
		total = perDay * int64(nights)
	default: // UnitPerPersonPerNight
		perNight := r.AdultCents*int64(stay.Adults) + childCents*int64(stay.Children)
		total = perNight * int64(nights)
	}

	return Quote{
		RuleID:     r.ID,
		Unit:       r.Unit,
		AdultCents: r.AdultCents,
		ChildCents: childCents,
		Nights:     nights,
		TotalCents: total,
	}
}

// clearLakeChildDayCents is the fallback child rate for Clear Lake day use
// when a rule carries no child amount. Other property/mode combinations
// without a child amount charge children nothing.
const clearLakeChildDayCents int64 = 1000

func childRate(r Rule, prop property.Property, mode booking.Mode) int64 {
	if r.ChildCents != nil {
		return *r.ChildCents
	}
	if prop == property.ClearLake && mode == booking.ModeDay {
		return clearLakeChildDayCents
	}
	return 0
}
