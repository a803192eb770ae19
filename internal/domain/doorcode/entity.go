package doorcode

import (
	"errors"
	"time"

	"lodgekeeper/internal/domain/property"

	"github.com/google/uuid"
)

var ErrEmptyCode = errors.New("door code cannot be empty")

// DoorCode is one entry in a property's append-only code log. The open entry
// (ActiveTo == nil) is the code currently programmed into the locks; storage
// guarantees at most one open entry per property.
type DoorCode struct {
	id         uuid.UUID
	property   property.Property
	code       string
	activeFrom time.Time
	activeTo   *time.Time
}

func NewDoorCode(prop property.Property, code string, activeFrom time.Time) (*DoorCode, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	return &DoorCode{
		id:         uuid.New(),
		property:   prop,
		code:       code,
		activeFrom: activeFrom,
	}, nil
}

func Reconstruct(id uuid.UUID, prop property.Property, code string, activeFrom time.Time, activeTo *time.Time) *DoorCode {
	return &DoorCode{id: id, property: prop, code: code, activeFrom: activeFrom, activeTo: activeTo}
}

func (d *DoorCode) Close(at time.Time) {
	d.activeTo = &at
}

func (d *DoorCode) IsActive() bool { return d.activeTo == nil }

// WasRecentlyUsed flags reuse of a code among the lookback entries. Reuse is
// advisory, never a hard rejection.
func WasRecentlyUsed(code string, recent []*DoorCode) bool {
	for _, d := range recent {
		if d.code == code {
			return true
		}
	}
	return false
}

func (d *DoorCode) ID() uuid.UUID               { return d.id }
func (d *DoorCode) Property() property.Property { return d.property }
func (d *DoorCode) Code() string                { return d.code }
func (d *DoorCode) ActiveFrom() time.Time       { return d.activeFrom }
func (d *DoorCode) ActiveTo() *time.Time        { return d.activeTo }
