package response

import (
	"log/slog"
	"time"

	"lodgekeeper/internal/usecase/commands"
	"lodgekeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DoorCodeResponse struct {
	ID         uuid.UUID  `json:"id"`
	Property   string     `json:"property"`
	Code       string     `json:"code"`
	ActiveFrom time.Time  `json:"activeFrom"`
	ActiveTo   *time.Time `json:"activeTo,omitempty"`
}

func FromDoorCodeView(v *queries.DoorCodeView) *DoorCodeResponse {
	var resp DoorCodeResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to map door code view", "error", err.Error())
	}
	return &resp
}

type SetDoorCodeResponse struct {
	Code         DoorCodeResponse `json:"code"`
	ReuseWarning bool             `json:"reuseWarning"`
}

func FromSetDoorCodeResult(res *commands.SetDoorCodeResult) *SetDoorCodeResponse {
	return &SetDoorCodeResponse{
		Code: DoorCodeResponse{
			ID:         res.Code.ID(),
			Property:   res.Code.Property().String(),
			Code:       res.Code.Code(),
			ActiveFrom: res.Code.ActiveFrom(),
			ActiveTo:   res.Code.ActiveTo(),
		},
		ReuseWarning: res.ReuseWarning,
	}
}
