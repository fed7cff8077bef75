package system

import (
	"fmt"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/core/event"
	"github.com/geowars/arena/internal/geom"
	"github.com/geowars/arena/internal/world"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	BurstDirections = 36
	BurstRings      = 5
	BurstRingStep   = 20   // radial gap between rings
	BurstAimReach   = 1000 // aim point distance along each spoke
	SpecialCooldown = 900  // ticks
)

// Weapons creates bullets for the primary fire and the special burst.
type Weapons struct {
	state *world.State
	cfg   *config.Config
	bus   *event.Bus
	log   *zap.Logger
}

func NewWeapons(state *world.State, cfg *config.Config, bus *event.Bus, log *zap.Logger) *Weapons {
	return &Weapons{state: state, cfg: cfg, bus: bus, log: log}
}

// Bullet creates one bullet at start heading toward target. Returns the
// zero ID while paused.
func (w *Weapons) Bullet(start, target mgl32.Vec2) ecs.EntityID {
	if w.state.Paused {
		return 0
	}
	bc := w.cfg.Bullet
	dir := geom.Normalize(target.Sub(start), w.log)

	id := w.state.Create(ecs.TagBullet)
	w.state.Transforms.Add(id, component.Transform{
		Pos:      start,
		Velocity: dir.Mul(bc.Speed),
	})
	w.state.Shapes.Add(id, component.Shape{
		Radius:           bc.ShapeRadius,
		Points:           bc.Vertices,
		Fill:             bc.FillColor,
		Outline:          bc.OutlineColor,
		OutlineThickness: bc.OutlineThickness,
	})
	w.state.Collisions.Add(id, component.Collision{Radius: bc.CollisionRadius})
	w.state.Lifespans.Add(id, component.NewLifespan(bc.Lifespan))
	return id
}

// Fire shoots from the player's position toward target.
func (w *Weapons) Fire(target mgl32.Vec2) (ecs.EntityID, error) {
	_, pt, _, err := w.state.PlayerTransform()
	if err != nil {
		return 0, fmt.Errorf("fire: %w", err)
	}
	return w.Bullet(pt.Pos, target), nil
}

// Special fires the radial burst from the player's position: BurstRings
// bullets on each of BurstDirections spokes, all aimed outward. It does
// nothing while paused or cooling down, and returns the bullets created.
func (w *Weapons) Special() ([]ecs.EntityID, error) {
	st := w.state
	if st.Paused || !st.SpecialReady {
		return nil, nil
	}
	_, pt, _, err := st.PlayerTransform()
	if err != nil {
		return nil, fmt.Errorf("special weapon: %w", err)
	}
	origin := pt.Pos

	ids := make([]ecs.EntityID, 0, BurstDirections*BurstRings)
	for i := range BurstDirections {
		dir := geom.Direction(i, BurstDirections)
		target := origin.Add(dir.Mul(BurstAimReach))
		for j := range BurstRings {
			start := origin.Add(dir.Mul(float32(BurstRingStep * (j + 1))))
			ids = append(ids, w.Bullet(start, target))
		}
	}
	st.LastSpecial = st.Frame
	st.SpecialReady = false

	w.log.Debug("special weapon fired", zap.Int("bullets", len(ids)), zap.Int("frame", st.Frame))
	event.Emit(w.bus, event.SpecialWeaponFired{
		Origin:  origin,
		Bullets: len(ids),
		Frame:   st.Frame,
	})
	return ids, nil
}
