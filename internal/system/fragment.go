package system

import (
	"math"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/geom"
	"github.com/geowars/arena/internal/world"
)

// Fragment breaks a large enemy into small enemies, one per vertex.
// Each fragment starts at the parent's position with half its radius and
// flies along its own spoke of an even fan; speed is the larger magnitude
// of the parent's velocity components. Small enemies never fragment.
// Fragments work on destroyed parents until the next commit purges them.
func Fragment(state *world.State, cfg *config.Config, override ScoreOverride, parent ecs.EntityID) []ecs.EntityID {
	e, ok := state.World.Get(parent)
	if !ok || e.Tag() != ecs.TagEnemy {
		return nil
	}
	t, ok := state.Transforms.Get(parent)
	if !ok {
		return nil
	}
	sh, ok := state.Shapes.Get(parent)
	if !ok || sh.Points < 1 {
		return nil
	}

	n := sh.Points
	speed := float32(math.Max(math.Abs(float64(t.Velocity.X())), math.Abs(float64(t.Velocity.Y()))))
	radius := sh.Radius / 2
	points := killScore(override, ecs.TagSmallEnemy, n)

	ids := make([]ecs.EntityID, 0, n)
	for i := range n {
		id := state.Create(ecs.TagSmallEnemy)
		state.Transforms.Add(id, component.Transform{
			Pos:      t.Pos,
			Velocity: geom.Direction(i, n).Mul(speed),
		})
		state.Shapes.Add(id, component.Shape{
			Radius:           radius,
			Points:           n,
			Fill:             sh.Fill,
			Outline:          sh.Outline,
			OutlineThickness: sh.OutlineThickness,
		})
		state.Collisions.Add(id, component.Collision{Radius: radius})
		state.Lifespans.Add(id, component.NewLifespan(cfg.Enemy.SmallEnemyLifespan))
		state.Scores.Add(id, component.Score{Points: points})
		ids = append(ids, id)
	}
	return ids
}
