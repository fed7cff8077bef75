package system

import (
	"time"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/core/event"
	coresys "github.com/geowars/arena/internal/core/system"
	"github.com/geowars/arena/internal/geom"
	"github.com/geowars/arena/internal/world"
	"go.uber.org/zap"
)

// CollisionSystem keeps entities inside the play area and resolves
// player-vs-hazard and bullet-vs-hazard overlaps. Phase 5 (Collide).
//
// Bounds: the player is clamped, hazards bounce by negating the velocity
// component on the crossed axis, bullets are left alone.
//
// Destruction is a flag flip, so nothing already destroyed this tick stops
// testing: a bullet overlapping several hazards scores for each, and a
// hazard overlapped by several bullets is killed, scored and fragmented
// once per bullet.
type CollisionSystem struct {
	state    *world.State
	cfg      *config.Config
	bus      *event.Bus
	override ScoreOverride
	log      *zap.Logger
}

func NewCollisionSystem(state *world.State, cfg *config.Config, bus *event.Bus, override ScoreOverride, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{state: state, cfg: cfg, bus: bus, override: override, log: log}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollide }

func (s *CollisionSystem) Update(_ time.Duration) error {
	st := s.state
	if st.Paused {
		return nil
	}
	_, pt, pc, err := st.PlayerTransform()
	if err != nil {
		return err
	}

	ids := st.World.All()
	for _, id := range ids {
		e, _ := st.World.Get(id)
		t, ok := st.Transforms.Get(id)
		if !ok {
			continue
		}
		c, ok := st.Collisions.Get(id)
		if !ok {
			continue
		}
		switch e.Tag() {
		case ecs.TagPlayer:
			s.clamp(t, c.Radius)
		case ecs.TagEnemy, ecs.TagSmallEnemy:
			s.bounce(t, c.Radius)
			if !st.Systems.Collision {
				continue
			}
			if geom.Overlap(pt.Pos, pc.Radius, t.Pos, c.Radius) {
				s.playerHit(pt, e)
			}
		}
	}

	if !st.Systems.Collision {
		return nil
	}
	for _, bid := range st.World.ByTag(ecs.TagBullet) {
		bt, ok := st.Transforms.Get(bid)
		if !ok {
			continue
		}
		bc, ok := st.Collisions.Get(bid)
		if !ok {
			continue
		}
		for _, hid := range ids {
			h, _ := st.World.Get(hid)
			if !h.Tag().IsHazard() {
				continue
			}
			ht, ok := st.Transforms.Get(hid)
			if !ok {
				continue
			}
			hc, ok := st.Collisions.Get(hid)
			if !ok {
				continue
			}
			if geom.Overlap(bt.Pos, bc.Radius, ht.Pos, hc.Radius) {
				st.World.Destroy(bid)
				s.bulletHit(h, ht)
			}
		}
	}
	return nil
}

func (s *CollisionSystem) clamp(t *component.Transform, r float32) {
	w, h := float32(s.cfg.Window.Width), float32(s.cfg.Window.Height)
	if t.Pos[0]-r < 0 {
		t.Pos[0] = r
	}
	if t.Pos[0]+r > w {
		t.Pos[0] = w - r
	}
	if t.Pos[1]-r < 0 {
		t.Pos[1] = r
	}
	if t.Pos[1]+r > h {
		t.Pos[1] = h - r
	}
}

func (s *CollisionSystem) bounce(t *component.Transform, r float32) {
	w, h := float32(s.cfg.Window.Width), float32(s.cfg.Window.Height)
	if t.Pos[0]-r < 0 || t.Pos[0]+r > w {
		t.Velocity[0] = -t.Velocity[0]
	}
	if t.Pos[1]-r < 0 || t.Pos[1]+r > h {
		t.Velocity[1] = -t.Velocity[1]
	}
}

// playerHit sends the player home, wipes the score, re-arms the special
// weapon and destroys the hazard.
func (s *CollisionSystem) playerHit(pt *component.Transform, hazard *ecs.Entity) {
	st := s.state
	lost := st.Score
	pt.Pos = st.PlayerSpawn
	st.Score = 0
	st.SpecialReady = true

	st.World.Destroy(hazard.ID())
	if hazard.Tag() == ecs.TagEnemy {
		Fragment(st, s.cfg, s.override, hazard.ID())
	}
	s.log.Debug("player hit",
		zap.Uint64("hazard", uint64(hazard.ID())),
		zap.Stringer("tag", hazard.Tag()),
		zap.Int("lost_score", lost))
	event.Emit(s.bus, event.PlayerHit{
		HazardID:  hazard.ID(),
		HazardTag: hazard.Tag(),
		LostScore: lost,
	})
}

func (s *CollisionSystem) bulletHit(hazard *ecs.Entity, ht *component.Transform) {
	st := s.state
	st.World.Destroy(hazard.ID())

	vertices := 0
	if sh, ok := st.Shapes.Get(hazard.ID()); ok {
		vertices = sh.Points
	}
	fragments := 0
	if hazard.Tag() == ecs.TagEnemy {
		fragments = len(Fragment(st, s.cfg, s.override, hazard.ID()))
	}
	awarded := killScore(s.override, hazard.Tag(), vertices)
	st.AddScore(awarded)

	event.Emit(s.bus, event.EnemyDestroyed{
		EntityID:  hazard.ID(),
		Tag:       hazard.Tag(),
		Pos:       ht.Pos,
		Vertices:  vertices,
		Awarded:   awarded,
		Score:     st.Score,
		Fragments: fragments,
	})
}
