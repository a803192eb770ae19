package property

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("invalid room capacity bounds")
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
)

// Room is a bookable unit inside a property. Deactivating a room hides it
// from new bookings; existing bookings keep pointing at it.
type Room struct {
	id         uuid.UUID
	property   Property
	name       string
	categoryID *uuid.UUID
	minGuests  int
	maxGuests  int
	beds       string
	imageRef   string
	active     bool
}

func NewRoom(prop Property, name string, categoryID *uuid.UUID, minGuests, maxGuests int, beds, imageRef string) (*Room, error) {
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if minGuests < 1 || maxGuests < minGuests {
		return nil, ErrInvalidCapacity
	}
	return &Room{
		id:         uuid.New(),
		property:   prop,
		name:       name,
		categoryID: categoryID,
		minGuests:  minGuests,
		maxGuests:  maxGuests,
		beds:       beds,
		imageRef:   imageRef,
		active:     true,
	}, nil
}

func ReconstructRoom(id uuid.UUID, prop Property, name string, categoryID *uuid.UUID, minGuests, maxGuests int, beds, imageRef string, active bool) *Room {
	return &Room{
		id:         id,
		property:   prop,
		name:       name,
		categoryID: categoryID,
		minGuests:  minGuests,
		maxGuests:  maxGuests,
		beds:       beds,
		imageRef:   imageRef,
		active:     active,
	}
}

func (r *Room) Deactivate() { r.active = false }
func (r *Room) Activate()   { r.active = true }

func (r *Room) FitsGuests(guests int) bool {
	return guests >= r.minGuests && guests <= r.maxGuests
}

func (r *Room) ID() uuid.UUID          { return r.id }
func (r *Room) Property() Property     { return r.property }
func (r *Room) Name() string           { return r.name }
func (r *Room) CategoryID() *uuid.UUID { return r.categoryID }
func (r *Room) MinGuests() int         { return r.minGuests }
func (r *Room) MaxGuests() int         { return r.maxGuests }
func (r *Room) Beds() string           { return r.beds }
func (r *Room) ImageRef() string       { return r.imageRef }
func (r *Room) IsActive() bool         { return r.active }
