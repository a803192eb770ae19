package property

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSeasonWindow = errors.New("invalid season window")

// Season is a recurring month/day window owned by a property. Windows repeat
// every year, so a season spanning the new year (e.g. Nov 15 to Mar 1) is
// valid and wraps.
type Season struct {
	id              uuid.UUID
	property        Property
	name            string
	startMonth      time.Month
	startDay        int
	endMonth        time.Month
	endDay          int
	advanceBookDays *int
	maxNights       *int
	isDefault       bool
}

func NewSeason(prop Property, name string, startMonth time.Month, startDay int, endMonth time.Month, endDay int, advanceBookDays, maxNights *int, isDefault bool) (*Season, error) {
	if !validMonthDay(startMonth, startDay) || !validMonthDay(endMonth, endDay) {
		return nil, ErrInvalidSeasonWindow
	}
	return &Season{
		id:              uuid.New(),
		property:        prop,
		name:            name,
		startMonth:      startMonth,
		startDay:        startDay,
		endMonth:        endMonth,
		endDay:          endDay,
		advanceBookDays: advanceBookDays,
		maxNights:       maxNights,
		isDefault:       isDefault,
	}, nil
}

func ReconstructSeason(id uuid.UUID, prop Property, name string, startMonth time.Month, startDay int, endMonth time.Month, endDay int, advanceBookDays, maxNights *int, isDefault bool) *Season {
	return &Season{
		id:              id,
		property:        prop,
		name:            name,
		startMonth:      startMonth,
		startDay:        startDay,
		endMonth:        endMonth,
		endDay:          endDay,
		advanceBookDays: advanceBookDays,
		maxNights:       maxNights,
		isDefault:       isDefault,
	}
}

func validMonthDay(m time.Month, d int) bool {
	return m >= time.January && m <= time.December && d >= 1 && d <= 31
}

// Contains reports whether the season window covers the given date,
// ignoring the year. Both window edges are inclusive.
func (s *Season) Contains(date time.Time) bool {
	x := monthDayOrdinal(date.Month(), date.Day())
	start := monthDayOrdinal(s.startMonth, s.startDay)
	end := monthDayOrdinal(s.endMonth, s.endDay)

	if start <= end {
		return x >= start && x <= end
	}
	// Wraps the new year.
	return x >= start || x <= end
}

func monthDayOrdinal(m time.Month, d int) int {
	return int(m)*100 + d
}

// ResolveSeason picks the season whose window contains checkin, falling back
// to the property's default season. A nil result means season-agnostic
// pricing rules apply.
func ResolveSeason(seasons []*Season, checkin time.Time) *Season {
	var def *Season
	for _, s := range seasons {
		if s.Contains(checkin) {
			return s
		}
		if s.isDefault {
			def = s
		}
	}
	return def
}

func (s *Season) ID() uuid.UUID         { return s.id }
func (s *Season) Property() Property    { return s.property }
func (s *Season) Name() string          { return s.name }
func (s *Season) StartMonth() time.Month { return s.startMonth }
func (s *Season) StartDay() int         { return s.startDay }
func (s *Season) EndMonth() time.Month  { return s.endMonth }
func (s *Season) EndDay() int           { return s.endDay }
func (s *Season) AdvanceBookDays() *int { return s.advanceBookDays }
func (s *Season) MaxNights() *int       { return s.maxNights }
func (s *Season) IsDefault() bool       { return s.isDefault }
