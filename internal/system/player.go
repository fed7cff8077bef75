package system

import (
	"fmt"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/world"
	"github.com/go-gl/mathgl/mgl32"
)

// SpawnPlayer creates the one player entity at its configured spawn point
// and records that point for collision resets.
func SpawnPlayer(state *world.State, cfg *config.Config) (ecs.EntityID, error) {
	if n := len(state.World.ByTag(ecs.TagPlayer)); n > 0 {
		return 0, fmt.Errorf("spawn player: %w", world.ErrPlayerExists)
	}
	pc := cfg.Player
	x, y := cfg.PlayerSpawn()
	state.PlayerSpawn = mgl32.Vec2{x, y}

	id := state.Create(ecs.TagPlayer)
	state.Transforms.Add(id, component.Transform{
		Pos:      state.PlayerSpawn,
		Velocity: mgl32.Vec2{pc.Velocity.X, pc.Velocity.Y},
	})
	state.Shapes.Add(id, component.Shape{
		Radius:           pc.ShapeRadius,
		Points:           pc.Vertices,
		Fill:             pc.FillColor,
		Outline:          pc.OutlineColor,
		OutlineThickness: pc.OutlineThickness,
	})
	state.Collisions.Add(id, component.Collision{Radius: pc.CollisionRadius})
	state.Inputs.Add(id, component.Input{})
	return id, nil
}
