package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/core/event"
	coresys "github.com/geowars/arena/internal/core/system"
	"github.com/geowars/arena/internal/random"
	"github.com/geowars/arena/internal/world"
	"go.uber.org/zap"
)

// SpawnerSystem creates one large enemy every SpawnInterval ticks.
// Phase 3 (Spawn). Manual spawns go through Spawn and skip only the interval.
type SpawnerSystem struct {
	state *world.State
	cfg   *config.Config
	rng   *random.Generator
	bus   *event.Bus
	score ScoreOverride
	log   *zap.Logger
}

func NewSpawnerSystem(state *world.State, cfg *config.Config, rng *random.Generator, bus *event.Bus, score ScoreOverride, log *zap.Logger) *SpawnerSystem {
	return &SpawnerSystem{state: state, cfg: cfg, rng: rng, bus: bus, score: score, log: log}
}

func (s *SpawnerSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnerSystem) Update(_ time.Duration) error {
	if s.state.Paused || !s.state.Systems.Spawning {
		return nil
	}
	if s.state.Frame-s.state.LastSpawn < s.cfg.Enemy.SpawnInterval {
		return nil
	}
	_, err := s.Spawn()
	return err
}

// Spawn creates a large enemy with a random position, velocity, colour and
// vertex count. When no legal position exists the spawn is skipped with a
// warning, the interval restarts and the zero ID is returned; a missing
// player is an error.
func (s *SpawnerSystem) Spawn() (ecs.EntityID, error) {
	_, pt, _, err := s.state.PlayerTransform()
	if err != nil {
		return 0, fmt.Errorf("spawn enemy: %w", err)
	}
	pos, err := s.rng.EnemyPosition(s.cfg, pt.Pos)
	if err != nil {
		if errors.Is(err, random.ErrNoSpawnPosition) {
			s.log.Warn("enemy spawn skipped", zap.Error(err), zap.Int("frame", s.state.Frame))
			s.state.LastSpawn = s.state.Frame
			return 0, nil
		}
		return 0, fmt.Errorf("spawn enemy: %w", err)
	}

	ec := s.cfg.Enemy
	vertices := s.rng.EnemyVertices(s.cfg)
	points := killScore(s.score, ecs.TagEnemy, vertices)

	id := s.state.Create(ecs.TagEnemy)
	s.state.Transforms.Add(id, component.Transform{
		Pos:      pos,
		Velocity: s.rng.EnemySpeed(s.cfg),
	})
	s.state.Shapes.Add(id, component.Shape{
		Radius:           ec.ShapeRadius,
		Points:           vertices,
		Fill:             s.rng.EnemyColor(),
		Outline:          ec.OutlineColor,
		OutlineThickness: ec.OutlineThickness,
	})
	s.state.Collisions.Add(id, component.Collision{Radius: ec.CollisionRadius})
	s.state.Scores.Add(id, component.Score{Points: points})
	s.state.LastSpawn = s.state.Frame

	event.Emit(s.bus, event.EnemySpawned{
		EntityID: id,
		Pos:      pos,
		Points:   points,
		Frame:    s.state.Frame,
	})
	return id, nil
}
