package booking

import (
	"time"

	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/pkg/errs"

	"github.com/google/uuid"
)

// Blackout closes a property for a full-day-inclusive date range. It blocks
// every room and the buyout regardless of booking mode.
type Blackout struct {
	id       uuid.UUID
	property property.Property
	start    time.Time
	end      time.Time
	reason   string
}

func NewBlackout(prop property.Property, start, end time.Time, reason string) (*Blackout, error) {
	s := midnight(start)
	e := midnight(end)
	if e.Before(s) {
		return nil, errs.ErrInvalidRange
	}
	return &Blackout{
		id:       uuid.New(),
		property: prop,
		start:    s,
		end:      e,
		reason:   reason,
	}, nil
}

func ReconstructBlackout(id uuid.UUID, prop property.Property, start, end time.Time, reason string) *Blackout {
	return &Blackout{id: id, property: prop, start: midnight(start), end: midnight(end), reason: reason}
}

// OverlapsStay checks a stay range against the blackout. The blackout's end
// date is inclusive, so it is widened by one day before the half-open test.
func (b *Blackout) OverlapsStay(r DateRange) bool {
	blocked := DateRange{checkin: b.start, checkout: b.end.Add(24 * time.Hour)}
	return blocked.Overlaps(r)
}

func (b *Blackout) ID() uuid.UUID               { return b.id }
func (b *Blackout) Property() property.Property { return b.property }
func (b *Blackout) Start() time.Time            { return b.start }
func (b *Blackout) End() time.Time              { return b.end }
func (b *Blackout) Reason() string              { return b.reason }
