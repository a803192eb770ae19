package response

import (
	"time"

	"lodgekeeper/internal/usecase/commands"

	"github.com/google/uuid"
)

type BlackoutResponse struct {
	ID       uuid.UUID `json:"id"`
	Property string    `json:"property"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Reason   string    `json:"reason,omitempty"`
}

type CreateBlackoutResponse struct {
	Blackout BlackoutResponse `json:"blackout"`
	Warnings []string         `json:"warnings,omitempty"`
}

func FromCreateBlackoutResult(res *commands.CreateBlackoutResult) *CreateBlackoutResponse {
	return &CreateBlackoutResponse{
		Blackout: BlackoutResponse{
			ID:       res.Blackout.ID(),
			Property: res.Blackout.Property().String(),
			Start:    res.Blackout.Start(),
			End:      res.Blackout.End(),
			Reason:   res.Blackout.Reason(),
		},
		Warnings: res.Warnings,
	}
}
