package system

import (
	"testing"

	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/core/event"
	"github.com/geowars/arena/internal/geom"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSpecialWeaponBurst(t *testing.T) {
	f := newFixture(t)
	w := NewWeapons(f.state, f.cfg, f.bus, f.log)
	origin := f.playerTransform().Pos

	ids, err := w.Special()
	require.NoError(t, err)
	require.Len(t, ids, BurstDirections*BurstRings)
	assert.Len(t, f.state.World.ByTag(ecs.TagBullet), 180)
	assert.False(t, f.state.SpecialReady)
	assert.Equal(t, 0, f.state.LastSpecial)
	assert.Equal(t, 1, event.Pending[event.SpecialWeaponFired](f.bus))

	for i := 0; i < BurstDirections; i++ {
		dir := geom.Direction(i, BurstDirections)
		for j := 0; j < BurstRings; j++ {
			tr, ok := f.state.Transforms.Get(ids[i*BurstRings+j])
			require.True(t, ok)
			want := origin.Add(dir.Mul(float32(20 * (j + 1))))
			assert.InDelta(t, want.X(), tr.Pos.X(), 1e-3)
			assert.InDelta(t, want.Y(), tr.Pos.Y(), 1e-3)
			assert.InDelta(t, f.cfg.Bullet.Speed, tr.Velocity.Len(), 1e-3)
			assert.InDelta(t, 1, tr.Velocity.Normalize().Dot(dir), 1e-4, "bullets fly outward")
			assert.True(t, f.state.Lifespans.Has(ids[i*BurstRings+j]))
		}
	}
}

func TestSpecialWeaponGated(t *testing.T) {
	f := newFixture(t)
	w := NewWeapons(f.state, f.cfg, f.bus, f.log)

	f.state.Paused = true
	ids, err := w.Special()
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.True(t, f.state.SpecialReady)

	f.state.Paused = false
	_, err = w.Special()
	require.NoError(t, err)
	ids, err = w.Special()
	require.NoError(t, err)
	assert.Empty(t, ids, "cooling down")
	assert.Len(t, f.state.World.ByTag(ecs.TagBullet), 180)
}

func TestFireAimsAtTarget(t *testing.T) {
	f := newFixture(t)
	w := NewWeapons(f.state, f.cfg, f.bus, f.log)
	origin := f.playerTransform().Pos

	id, err := w.Fire(origin.Add(mgl32.Vec2{0, -300}))
	require.NoError(t, err)
	tr, _ := f.state.Transforms.Get(id)
	l, _ := f.state.Lifespans.Get(id)
	assert.Equal(t, origin, tr.Pos)
	assert.InDelta(t, 0, tr.Velocity.X(), 1e-6)
	assert.InDelta(t, -10, tr.Velocity.Y(), 1e-6)
	assert.Equal(t, 75, l.Remaining)

	f.state.Paused = true
	id, err = w.Fire(mgl32.Vec2{})
	require.NoError(t, err)
	assert.True(t, id.IsZero())
}

func TestFireAtOwnOriginWarns(t *testing.T) {
	f := newFixture(t)
	core, logs := observer.New(zapcore.WarnLevel)
	w := NewWeapons(f.state, f.cfg, f.bus, zap.New(core))

	id, err := w.Fire(f.playerTransform().Pos)
	require.NoError(t, err)
	tr, _ := f.state.Transforms.Get(id)
	assert.Equal(t, mgl32.Vec2{}, tr.Velocity)
	assert.Equal(t, 1, logs.Len())
}
