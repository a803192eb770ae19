package response

import (
	"log/slog"
	"time"

	"lodgekeeper/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type GridSpanResponse struct {
	StartCol     int  `json:"startCol"`
	EndCol       int  `json:"endCol"`
	ClippedStart bool `json:"clippedStart"`
	ClippedEnd   bool `json:"clippedEnd"`
}

type GridEntryResponse struct {
	ID        string           `json:"id"`
	Reference string           `json:"reference"`
	Span      GridSpanResponse `json:"span"`
}

type RoomLaneResponse struct {
	RoomID   string              `json:"roomId"`
	RoomName string              `json:"roomName"`
	Entries  []GridEntryResponse `json:"entries"`
}

type DaySpotsResponse struct {
	Date           time.Time `json:"date"`
	SpotsAvailable int       `json:"spotsAvailable"`
}

type CalendarResponse struct {
	Property    string              `json:"property"`
	WindowStart time.Time           `json:"windowStart"`
	WindowDays  int                 `json:"windowDays"`
	Rooms       []RoomLaneResponse  `json:"rooms"`
	Buyouts     []GridEntryResponse `json:"buyouts"`
	Blackouts   []GridEntryResponse `json:"blackouts"`
	DaySpots    []DaySpotsResponse  `json:"daySpots,omitempty"`
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	var resp CalendarResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to map calendar view", "error", err.Error())
	}
	return &resp
}
