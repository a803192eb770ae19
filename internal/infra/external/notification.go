package external

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogNotificationSender records confirmations in the structured log. Actual
// mail delivery is handled by an operations workflow reading these entries.
type LogNotificationSender struct{}

func NewLogNotificationSender() *LogNotificationSender {
	return &LogNotificationSender{}
}

func (s *LogNotificationSender) SendBookingConfirmation(ctx context.Context, bookingID uuid.UUID, reference string, email string) {
	slog.InfoContext(ctx, "booking confirmation queued",
		"booking_id", bookingID,
		"reference", reference,
		"email", email,
	)
}
