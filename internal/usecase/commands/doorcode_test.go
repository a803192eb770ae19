//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lodgekeeper/internal/domain/doorcode"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/pkg/clock"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetNewCode(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeStore, *clock.MockClock, commands.DoorCodeCommands) {
		store := newFakeStore()
		clk := clock.NewMockClock(testNow)
		return store, clk, commands.NewDoorCodeCommands(fakeUoW{s: store}, clk)
	}

	t.Run("first code opens the ledger", func(t *testing.T) {
		store, _, cmds := setup()

		res, err := cmds.SetNewCode(ctx, property.CedarLodge, "4821")
		require.NoError(t, err)

		assert.Equal(t, "4821", res.Code.Code())
		assert.True(t, res.Code.IsActive())
		assert.Equal(t, testNow, res.Code.ActiveFrom())
		assert.False(t, res.ReuseWarning)
		require.Len(t, store.doorCodes, 1)
	})

	t.Run("rotation closes the previous code", func(t *testing.T) {
		store, clk, cmds := setup()

		_, err := cmds.SetNewCode(ctx, property.CedarLodge, "4821")
		require.NoError(t, err)
		clk.Add(24 * time.Hour)

		res, err := cmds.SetNewCode(ctx, property.CedarLodge, "9015")
		require.NoError(t, err)

		assert.True(t, res.Code.IsActive())
		require.Len(t, store.doorCodes, 2)

		active := 0
		for _, d := range store.doorCodes {
			if d.IsActive() {
				active++
			}
		}
		assert.Equal(t, 1, active)
		assert.Equal(t, 1, store.closedDoorCodes)
	})

	t.Run("reusing a recent code raises the warning", func(t *testing.T) {
		_, _, cmds := setup()

		for _, code := range []string{"1111", "2222", "3333"} {
			_, err := cmds.SetNewCode(ctx, property.CedarLodge, code)
			require.NoError(t, err)
		}

		res, err := cmds.SetNewCode(ctx, property.CedarLodge, "1111")
		require.NoError(t, err)
		assert.True(t, res.ReuseWarning)
		assert.True(t, res.Code.IsActive())
	})

	t.Run("codes older than the lookback do not warn", func(t *testing.T) {
		_, _, cmds := setup()

		for _, code := range []string{"1111", "2222", "3333", "4444"} {
			_, err := cmds.SetNewCode(ctx, property.CedarLodge, code)
			require.NoError(t, err)
		}

		res, err := cmds.SetNewCode(ctx, property.CedarLodge, "1111")
		require.NoError(t, err)
		assert.False(t, res.ReuseWarning)
	})

	t.Run("codes are scoped per property", func(t *testing.T) {
		store, _, cmds := setup()

		_, err := cmds.SetNewCode(ctx, property.CedarLodge, "4821")
		require.NoError(t, err)
		res, err := cmds.SetNewCode(ctx, property.ClearLake, "4821")
		require.NoError(t, err)

		assert.False(t, res.ReuseWarning)
		active := 0
		for _, d := range store.doorCodes {
			if d.IsActive() {
				active++
			}
		}
		assert.Equal(t, 2, active)
	})

	t.Run("empty code rejected", func(t *testing.T) {
		store, _, cmds := setup()

		_, err := cmds.SetNewCode(ctx, property.CedarLodge, "")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
		assert.ErrorIs(t, err, doorcode.ErrEmptyCode)
		assert.Empty(t, store.doorCodes)
	})
}
