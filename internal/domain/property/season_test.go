//go:build unit

package property_test

import (
	"testing"
	"time"

	"lodgekeeper/internal/domain/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustSeason(t *testing.T, name string, sm time.Month, sd int, em time.Month, ed int, isDefault bool) *property.Season {
	t.Helper()
	s, err := property.NewSeason(property.CedarLodge, name, sm, sd, em, ed, nil, nil, isDefault)
	require.NoError(t, err)
	return s
}

func TestSeasonContains(t *testing.T) {
	t.Run("plain window, inclusive edges", func(t *testing.T) {
		summer := mustSeason(t, "summer", time.June, 1, time.August, 31, false)

		assert.True(t, summer.Contains(date(2026, 6, 1)))
		assert.True(t, summer.Contains(date(2026, 7, 15)))
		assert.True(t, summer.Contains(date(2026, 8, 31)))
		assert.False(t, summer.Contains(date(2026, 5, 31)))
		assert.False(t, summer.Contains(date(2026, 9, 1)))
	})

	t.Run("window wrapping the new year", func(t *testing.T) {
		winter := mustSeason(t, "winter", time.November, 15, time.March, 1, false)

		assert.True(t, winter.Contains(date(2026, 11, 15)))
		assert.True(t, winter.Contains(date(2026, 12, 25)))
		assert.True(t, winter.Contains(date(2026, 1, 10)))
		assert.True(t, winter.Contains(date(2026, 3, 1)))
		assert.False(t, winter.Contains(date(2026, 3, 2)))
		assert.False(t, winter.Contains(date(2026, 11, 14)))
		assert.False(t, winter.Contains(date(2026, 7, 1)))
	})
}

func TestResolveSeason(t *testing.T) {
	summer := mustSeason(t, "summer", time.June, 1, time.August, 31, false)
	winter := mustSeason(t, "winter", time.November, 15, time.March, 1, false)
	shoulder := mustSeason(t, "shoulder", time.January, 1, time.December, 31, true)

	t.Run("matching window wins", func(t *testing.T) {
		got := property.ResolveSeason([]*property.Season{summer, winter, shoulder}, date(2026, 7, 10))
		require.NotNil(t, got)
		assert.Equal(t, "summer", got.Name())
	})

	t.Run("falls back to default", func(t *testing.T) {
		got := property.ResolveSeason([]*property.Season{summer, winter}, date(2026, 4, 10))
		assert.Nil(t, got)

		got = property.ResolveSeason([]*property.Season{summer, winter, shoulder}, date(2026, 4, 10))
		require.NotNil(t, got)
		assert.Equal(t, "shoulder", got.Name())
	})

	t.Run("no seasons means season-agnostic", func(t *testing.T) {
		assert.Nil(t, property.ResolveSeason(nil, date(2026, 7, 10)))
	})
}

func TestNewSeason(t *testing.T) {
	t.Run("rejects impossible month or day", func(t *testing.T) {
		_, err := property.NewSeason(property.ClearLake, "bad", time.Month(13), 1, time.June, 1, nil, nil, false)
		assert.ErrorIs(t, err, property.ErrInvalidSeasonWindow)

		_, err = property.NewSeason(property.ClearLake, "bad", time.June, 0, time.June, 1, nil, nil, false)
		assert.ErrorIs(t, err, property.ErrInvalidSeasonWindow)

		_, err = property.NewSeason(property.ClearLake, "bad", time.June, 1, time.June, 32, nil, nil, false)
		assert.ErrorIs(t, err, property.ErrInvalidSeasonWindow)
	})
}

func TestRoomFitsGuests(t *testing.T) {
	room, err := property.NewRoom(property.CedarLodge, "Birch", nil, 2, 4, "1 queen, 2 twins", "")
	require.NoError(t, err)

	assert.False(t, room.FitsGuests(1))
	assert.True(t, room.FitsGuests(2))
	assert.True(t, room.FitsGuests(4))
	assert.False(t, room.FitsGuests(5))
}

func TestNewRoom(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		_, err := property.NewRoom(property.CedarLodge, "", nil, 1, 2, "", "")
		assert.ErrorIs(t, err, property.ErrEmptyRoomName)
	})

	t.Run("capacity bounds validated", func(t *testing.T) {
		_, err := property.NewRoom(property.CedarLodge, "Birch", nil, 0, 2, "", "")
		assert.ErrorIs(t, err, property.ErrInvalidCapacity)

		_, err = property.NewRoom(property.CedarLodge, "Birch", nil, 3, 2, "", "")
		assert.ErrorIs(t, err, property.ErrInvalidCapacity)
	})
}
