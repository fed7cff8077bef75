package system

import (
	"testing"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/core/event"
	"github.com/geowars/arena/internal/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	cfg    *config.Config
	state  *world.State
	bus    *event.Bus
	player ecs.EntityID
	log    *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Defaults()
	state := world.NewState()
	player, err := SpawnPlayer(state, cfg)
	require.NoError(t, err)
	state.World.Commit()
	return &fixture{cfg: cfg, state: state, bus: event.NewBus(), player: player, log: zap.NewNop()}
}

func (f *fixture) playerTransform() *component.Transform {
	t, _ := f.state.Transforms.Get(f.player)
	return t
}

func (f *fixture) hazard(tag ecs.Tag, pos, vel mgl32.Vec2, radius float32, points int) ecs.EntityID {
	id := f.state.Create(tag)
	f.state.Transforms.Add(id, component.Transform{Pos: pos, Velocity: vel})
	f.state.Shapes.Add(id, component.Shape{
		Radius:  radius,
		Points:  points,
		Fill:    component.Color{R: 10, G: 20, B: 30, A: 255},
		Outline: component.Color{R: 255, G: 255, B: 255, A: 255},
	})
	f.state.Collisions.Add(id, component.Collision{Radius: radius})
	if tag == ecs.TagSmallEnemy {
		f.state.Lifespans.Add(id, component.NewLifespan(f.cfg.Enemy.SmallEnemyLifespan))
	}
	return id
}

func (f *fixture) bullet(pos mgl32.Vec2) ecs.EntityID {
	return NewWeapons(f.state, f.cfg, f.bus, f.log).Bullet(pos, pos.Add(mgl32.Vec2{1, 0}))
}

func (f *fixture) collide(t *testing.T) {
	t.Helper()
	require.NoError(t, NewCollisionSystem(f.state, f.cfg, f.bus, nil, f.log).Update(0))
}

func countTag(s *world.State, tag ecs.Tag) int {
	n := 0
	for _, id := range s.World.ByTag(tag) {
		if s.World.Alive(id) {
			n++
		}
	}
	return n
}
