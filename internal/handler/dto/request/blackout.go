package request

import (
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/usecase/commands"
)

type CreateBlackoutRequest struct {
	Property string `json:"property" binding:"required"`
	// Start and End are calendar dates; End is inclusive.
	Start  string `json:"start" binding:"required"`
	End    string `json:"end" binding:"required"`
	Reason string `json:"reason"`
}

func (r CreateBlackoutRequest) ToCommand() (commands.CreateBlackoutCommand, error) {
	prop, err := property.Parse(r.Property)
	if err != nil {
		return commands.CreateBlackoutCommand{}, err
	}
	start, err := parseDate(r.Start)
	if err != nil {
		return commands.CreateBlackoutCommand{}, err
	}
	end, err := parseDate(r.End)
	if err != nil {
		return commands.CreateBlackoutCommand{}, err
	}
	return commands.CreateBlackoutCommand{
		Property: prop,
		Start:    start,
		End:      end,
		Reason:   r.Reason,
	}, nil
}
