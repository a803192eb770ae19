package request

import (
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Property string      `json:"property" binding:"required"`
	Mode     string      `json:"mode" binding:"required"`
	Checkin  string      `json:"checkin" binding:"required"`
	Checkout string      `json:"checkout" binding:"required"`
	Guests   int         `json:"guests" binding:"required,min=1"`
	Children int         `json:"children" binding:"min=0"`
	UserID   uuid.UUID   `json:"user_id" binding:"required"`
	RoomIDs  []uuid.UUID `json:"room_ids"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingCommand, error) {
	prop, err := property.Parse(r.Property)
	if err != nil {
		return commands.CreateBookingCommand{}, err
	}
	mode, err := booking.ParseMode(r.Mode)
	if err != nil {
		return commands.CreateBookingCommand{}, err
	}
	checkin, err := parseDate(r.Checkin)
	if err != nil {
		return commands.CreateBookingCommand{}, err
	}
	checkout, err := parseDate(r.Checkout)
	if err != nil {
		return commands.CreateBookingCommand{}, err
	}
	return commands.CreateBookingCommand{
		Property: prop,
		Mode:     mode,
		Checkin:  checkin,
		Checkout: checkout,
		Guests:   r.Guests,
		Children: r.Children,
		UserID:   r.UserID,
		RoomIDs:  r.RoomIDs,
	}, nil
}

type ChangeBookingDatesRequest struct {
	Checkin  string `json:"checkin" binding:"required"`
	Checkout string `json:"checkout" binding:"required"`
}

func (r ChangeBookingDatesRequest) ToCommand(bookingID uuid.UUID) (commands.ChangeBookingDatesCommand, error) {
	checkin, err := parseDate(r.Checkin)
	if err != nil {
		return commands.ChangeBookingDatesCommand{}, err
	}
	checkout, err := parseDate(r.Checkout)
	if err != nil {
		return commands.ChangeBookingDatesCommand{}, err
	}
	return commands.ChangeBookingDatesCommand{
		BookingID: bookingID,
		Checkin:   checkin,
		Checkout:  checkout,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
