package booking

import "errors"

var (
	ErrUnknownMode   = errors.New("unknown booking mode")
	ErrUnknownStatus = errors.New("unknown booking status")
)

// Mode distinguishes how a stay occupies the property: a single room, a
// per-guest day-use slot, or a whole-property buyout.
type Mode string

const (
	ModeRoom   Mode = "room"
	ModeDay    Mode = "day"
	ModeBuyout Mode = "buyout"
)

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", ErrUnknownMode
	}
	return m, nil
}

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeRoom, ModeDay, ModeBuyout:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusDraft    Status = "draft"
	StatusHold     Status = "hold"
	StatusComplete Status = "complete"
	StatusRefunded Status = "refunded"
	StatusCanceled Status = "canceled"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusHold, StatusComplete, StatusRefunded, StatusCanceled:
		return true
	default:
		return false
	}
}

// BlocksInventory reports whether a booking in this status holds its dates
// against other reservations. Canceled and refunded bookings release their
// inventory immediately.
func (s Status) BlocksInventory() bool {
	return s == StatusHold || s == StatusComplete
}
