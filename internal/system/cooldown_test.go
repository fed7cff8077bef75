package system

import (
	"testing"

	"github.com/geowars/arena/internal/core/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownClearsAfter900Ticks(t *testing.T) {
	f := newFixture(t)
	_, err := NewWeapons(f.state, f.cfg, f.bus, f.log).Special()
	require.NoError(t, err)
	sys := NewCooldownSystem(f.state, f.bus)

	for i := 1; i < SpecialCooldown; i++ {
		require.NoError(t, sys.Update(0))
		require.False(t, f.state.SpecialReady, "ready too early at frame %d", f.state.Frame)
	}
	require.NoError(t, sys.Update(0))
	assert.Equal(t, 900, f.state.Frame)
	assert.True(t, f.state.SpecialReady)
	assert.Equal(t, 1, event.Pending[event.SpecialWeaponReady](f.bus))
}

func TestCooldownFrozenWhilePaused(t *testing.T) {
	f := newFixture(t)
	f.state.Paused = true
	require.NoError(t, NewCooldownSystem(f.state, f.bus).Update(0))
	assert.Equal(t, 0, f.state.Frame)
}
