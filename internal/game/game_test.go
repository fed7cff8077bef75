package game

import (
	"context"
	"testing"
	"time"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/core/event"
	"github.com/geowars/arena/internal/random"
	"github.com/geowars/arena/internal/system"
	"github.com/geowars/arena/internal/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, mutate func(*config.Config), opts ...Option) *Game {
	t.Helper()
	cfg := config.Defaults()
	cfg.Systems.Spawning = false
	if mutate != nil {
		mutate(cfg)
	}
	opts = append([]Option{WithRandom(random.NewSeeded(7))}, opts...)
	g, err := New(cfg, opts...)
	require.NoError(t, err)
	return g
}

func steps(t *testing.T, g *Game, n int) {
	t.Helper()
	for range n {
		require.NoError(t, g.Step(Input{}))
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Window.Width = 0
	_, err := New(cfg)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewDoesNotMutateCallerConfig(t *testing.T) {
	cfg := config.Defaults()
	g, err := New(cfg, WithRandom(random.NewSeeded(1)))
	require.NoError(t, err)
	g.SetSpawnInterval(5)
	assert.Equal(t, 60, cfg.Enemy.SpawnInterval)
	assert.Equal(t, 5, g.SpawnInterval())
}

func TestPlayerVisibleAfterFirstTick(t *testing.T) {
	g := newGame(t, nil)
	assert.Empty(t, g.Snapshot().Entities, "nothing is live before the first commit")

	steps(t, g, 1)
	snap := g.Snapshot()
	require.Len(t, snap.Entities, 1)
	p := snap.Entities[0]
	assert.Equal(t, ecs.TagPlayer, p.Tag)
	assert.Equal(t, mgl32.Vec2{720, 450}, p.Pos)
	assert.Equal(t, system.RotationStep, p.Angle)
	assert.Equal(t, 8, p.Shape.Points)
}

func TestSpecialWeaponBurstAndCooldown(t *testing.T) {
	g := newGame(t, nil)
	require.NoError(t, g.Step(Input{Special: true}))
	assert.False(t, g.Snapshot().SpecialReady)

	steps(t, g, 1)
	assert.Equal(t, 180, g.Snapshot().Count(ecs.TagBullet))

	// A second trigger during cooldown does nothing.
	require.NoError(t, g.Step(Input{Special: true}))
	steps(t, g, 1)
	assert.Equal(t, 180, g.Snapshot().Count(ecs.TagBullet))

	// Fired at frame 0: ready once frame reaches 900.
	steps(t, g, 895)
	snap := g.Snapshot()
	assert.Equal(t, 899, snap.Frame)
	assert.False(t, snap.SpecialReady)

	steps(t, g, 1)
	snap = g.Snapshot()
	assert.Equal(t, 900, snap.Frame)
	assert.True(t, snap.SpecialReady)
	assert.Zero(t, snap.Count(ecs.TagBullet), "burst bullets expired long ago")
}

func TestPauseFreezesFrameAndWeapons(t *testing.T) {
	g := newGame(t, nil)
	steps(t, g, 3)
	require.NoError(t, g.Step(Input{TogglePause: true}))
	snap := g.Snapshot()
	assert.True(t, snap.Paused)
	frame := snap.Frame

	require.NoError(t, g.Step(Input{Special: true, Right: true}))
	steps(t, g, 5)
	snap = g.Snapshot()
	assert.Equal(t, frame, snap.Frame)
	assert.True(t, snap.SpecialReady)
	assert.Zero(t, snap.Count(ecs.TagBullet))
	assert.Equal(t, float32(720), snap.Entities[0].Pos.X())

	require.NoError(t, g.Step(Input{TogglePause: true}))
	assert.False(t, g.Snapshot().Paused)
}

func TestQuitStopsBeforeTick(t *testing.T) {
	g := newGame(t, nil)
	steps(t, g, 2)
	require.NoError(t, g.Step(Input{Quit: true}))
	assert.False(t, g.Running())
	require.NoError(t, g.Step(Input{}))
	assert.Equal(t, 2, g.Snapshot().Frame)
}

func TestMovementToggle(t *testing.T) {
	g := newGame(t, nil)
	require.NoError(t, g.Step(Input{Right: true}))
	assert.Equal(t, float32(725), g.Snapshot().Entities[0].Pos.X())

	require.NoError(t, g.SetSystemEnabled(SystemMovement, false))
	assert.False(t, g.SystemEnabled(SystemMovement))
	require.NoError(t, g.Step(Input{Right: true}))
	assert.Equal(t, float32(725), g.Snapshot().Entities[0].Pos.X())

	require.Error(t, g.SetSystemEnabled(SystemKind(42), true))
}

func TestRenderingToggleReported(t *testing.T) {
	g := newGame(t, nil)
	require.NoError(t, g.SetSystemEnabled(SystemRendering, false))
	assert.False(t, g.Snapshot().RenderEnabled)
}

func TestAutomaticSpawnInterval(t *testing.T) {
	g := newGame(t, func(c *config.Config) { c.Systems.Spawning = true })
	steps(t, g, 60)
	assert.Empty(t, g.state.World.ByTag(ecs.TagEnemy))

	steps(t, g, 1)
	assert.Len(t, g.state.World.ByTag(ecs.TagEnemy), 1)
	assert.Equal(t, 60, g.state.LastSpawn)
}

func TestSetSpawnIntervalClamps(t *testing.T) {
	g := newGame(t, nil)
	assert.Equal(t, MaxSpawnInterval, g.SetSpawnInterval(1000))
	assert.Equal(t, 0, g.SetSpawnInterval(-3))
	assert.Equal(t, 45, g.SetSpawnInterval(45))
	assert.Equal(t, 45, g.Snapshot().SpawnInterval)
}

func TestManualSpawnIgnoresInterval(t *testing.T) {
	g := newGame(t, nil)
	steps(t, g, 1)
	id, err := g.ManualSpawn()
	require.NoError(t, err)
	require.False(t, id.IsZero())

	steps(t, g, 1)
	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Count(ecs.TagEnemy))
}

func TestEventsDispatchNextTick(t *testing.T) {
	g := newGame(t, nil)
	var fired []event.SpecialWeaponFired
	event.Subscribe(g.Events(), func(e event.SpecialWeaponFired) { fired = append(fired, e) })

	require.NoError(t, g.Step(Input{Special: true}))
	assert.Empty(t, fired)
	steps(t, g, 1)
	require.Len(t, fired, 1)
	assert.Equal(t, 180, fired[0].Bullets)
}

type fixedScore int

func (f fixedScore) KillScore(string, int) (int, bool) { return int(f), true }

func TestScoreOverride(t *testing.T) {
	g := newGame(t, nil, WithScoreOverride(fixedScore(999)))
	st := g.state

	id := st.Create(ecs.TagSmallEnemy)
	st.Transforms.Add(id, component.Transform{Pos: mgl32.Vec2{100, 100}})
	st.Shapes.Add(id, component.Shape{Radius: 12.5, Points: 6})
	st.Collisions.Add(id, component.Collision{Radius: 12.5})
	st.Lifespans.Add(id, component.NewLifespan(90))
	g.weapons.Bullet(mgl32.Vec2{100, 100}, mgl32.Vec2{200, 100})

	steps(t, g, 1)
	snap := g.Snapshot()
	assert.Equal(t, 999, snap.Score)
	assert.Equal(t, 999, snap.HighScore)
	assert.Zero(t, snap.Count(ecs.TagSmallEnemy))
}

func TestFatalWithoutPlayer(t *testing.T) {
	g := newGame(t, nil)
	steps(t, g, 1)
	id, err := g.state.Player()
	require.NoError(t, err)
	g.state.World.Destroy(id)

	err = g.Step(Input{})
	require.ErrorIs(t, err, world.ErrNoPlayer)
	assert.False(t, g.Running())
}

type scriptedInput struct {
	polls  int
	quitAt int
}

func (s *scriptedInput) Poll() Input {
	s.polls++
	return Input{Quit: s.polls >= s.quitAt}
}

type countingRenderer struct{ frames []int }

func (r *countingRenderer) Render(s Snapshot) { r.frames = append(r.frames, s.Frame) }

func TestRunUntilQuit(t *testing.T) {
	g := newGame(t, func(c *config.Config) { c.Window.TickRate = time.Millisecond })
	in := &scriptedInput{quitAt: 4}
	out := &countingRenderer{}

	require.NoError(t, g.Run(context.Background(), in, out))
	assert.Equal(t, 4, in.polls)
	assert.Equal(t, []int{1, 2, 3}, out.frames)
}

func TestRunStopsOnCancel(t *testing.T) {
	g := newGame(t, func(c *config.Config) { c.Window.TickRate = time.Hour })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, g.Run(ctx, &scriptedInput{quitAt: 1}, nil))
	assert.True(t, g.Running())
}
