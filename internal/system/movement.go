package system

import (
	"time"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/core/ecs"
	coresys "github.com/geowars/arena/internal/core/system"
	"github.com/geowars/arena/internal/world"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationStep is the display spin added to every transform each tick.
const RotationStep float32 = 1.0

// MovementSystem spins every entity and advances positions.
// Phase 4 (Move).
//
// Spin runs even while paused or disabled. Player displacement composes
// each held direction additively, so diagonals are faster than axis moves.
type MovementSystem struct {
	state *world.State
}

func NewMovementSystem(state *world.State) *MovementSystem {
	return &MovementSystem{state: state}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseMove }

func (s *MovementSystem) Update(_ time.Duration) error {
	st := s.state
	ids := st.World.All()
	ecs.Each(ids, st.Transforms, func(_ ecs.EntityID, t *component.Transform) {
		t.Angle += RotationStep
	})

	if st.Paused || !st.Systems.Movement {
		return nil
	}
	playerID, err := st.Player()
	if err != nil {
		return err
	}

	for _, id := range ids {
		e, _ := st.World.Get(id)
		t, ok := st.Transforms.Get(id)
		if !ok {
			continue
		}
		switch e.Tag() {
		case ecs.TagPlayer:
			if id != playerID {
				continue
			}
			in, ok := st.Inputs.Get(id)
			if !ok {
				continue
			}
			t.Pos = t.Pos.Add(playerStep(in, t.Velocity))
		case ecs.TagEnemy, ecs.TagSmallEnemy, ecs.TagBullet:
			t.Pos = t.Pos.Add(t.Velocity)
		}
	}
	return nil
}

func playerStep(in *component.Input, speed mgl32.Vec2) mgl32.Vec2 {
	var d mgl32.Vec2
	if in.Up {
		d[1] -= speed.Y()
	}
	if in.Down {
		d[1] += speed.Y()
	}
	if in.Left {
		d[0] -= speed.X()
	}
	if in.Right {
		d[0] += speed.X()
	}
	return d
}
