package response

import (
	"log/slog"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/usecase/commands"
	"lodgekeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID   `json:"id"`
	Reference  string      `json:"reference"`
	Property   string      `json:"property"`
	Mode       string      `json:"mode"`
	Checkin    time.Time   `json:"checkin"`
	Checkout   time.Time   `json:"checkout"`
	Guests     int         `json:"guests"`
	Children   int         `json:"children"`
	UserID     uuid.UUID   `json:"userId"`
	RoomIDs    []uuid.UUID `json:"roomIds,omitempty"`
	Status     string      `json:"status"`
	PriceCents int64       `json:"priceCents"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to map booking view", "error", err.Error())
	}
	return &resp
}

func fromBookingEntity(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID(),
		Reference:  b.Reference(),
		Property:   b.Property().String(),
		Mode:       b.Mode().String(),
		Checkin:    b.Dates().Checkin(),
		Checkout:   b.Dates().Checkout(),
		Guests:     b.Guests(),
		Children:   b.Children(),
		UserID:     b.UserID(),
		RoomIDs:    b.RoomIDs(),
		Status:     b.Status().String(),
		PriceCents: b.Price().Cents(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
}

type CreateBookingResponse struct {
	Booking  BookingResponse `json:"booking"`
	Warnings []string        `json:"warnings,omitempty"`
}

func FromCreateBookingResult(res *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:  fromBookingEntity(res.Booking),
		Warnings: res.Warnings,
	}
}

type CancelBookingResponse struct {
	Booking       BookingResponse        `json:"booking"`
	PendingRefund *PendingRefundResponse `json:"pendingRefund,omitempty"`
	Warnings      []string               `json:"warnings,omitempty"`
}

func FromCancelBookingResult(res *commands.CancelBookingResult) *CancelBookingResponse {
	out := &CancelBookingResponse{
		Booking:  fromBookingEntity(res.Booking),
		Warnings: res.Warnings,
	}
	if res.PendingRefund != nil {
		pr := fromPendingRefundEntity(res.PendingRefund)
		out.PendingRefund = &pr
	}
	return out
}
