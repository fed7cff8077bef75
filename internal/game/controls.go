package game

import (
	"fmt"

	"github.com/geowars/arena/internal/core/ecs"
	"go.uber.org/zap"
)

// SystemKind names a system that the debug controls can switch off.
type SystemKind int

const (
	SystemMovement SystemKind = iota
	SystemLifespan
	SystemCollision
	SystemSpawning
	SystemRendering
)

func (k SystemKind) String() string {
	switch k {
	case SystemMovement:
		return "movement"
	case SystemLifespan:
		return "lifespan"
	case SystemCollision:
		return "collision"
	case SystemSpawning:
		return "spawning"
	case SystemRendering:
		return "rendering"
	}
	return fmt.Sprintf("SystemKind(%d)", int(k))
}

func (g *Game) toggle(kind SystemKind) (*bool, error) {
	t := &g.state.Systems
	switch kind {
	case SystemMovement:
		return &t.Movement, nil
	case SystemLifespan:
		return &t.Lifespan, nil
	case SystemCollision:
		return &t.Collision, nil
	case SystemSpawning:
		return &t.Spawning, nil
	case SystemRendering:
		return &t.Rendering, nil
	}
	return nil, fmt.Errorf("unknown system %s", kind)
}

// SetSystemEnabled switches one system on or off from the next tick.
func (g *Game) SetSystemEnabled(kind SystemKind, on bool) error {
	flag, err := g.toggle(kind)
	if err != nil {
		return err
	}
	if *flag != on {
		*flag = on
		g.log.Debug("system toggled", zap.Stringer("system", kind), zap.Bool("enabled", on))
	}
	return nil
}

// SystemEnabled reports the current flag for kind.
func (g *Game) SystemEnabled(kind SystemKind) bool {
	flag, err := g.toggle(kind)
	return err == nil && *flag
}

// SetSpawnInterval sets ticks between automatic spawns, clamped to
// [0, MaxSpawnInterval]. It returns the value applied.
func (g *Game) SetSpawnInterval(ticks int) int {
	ticks = max(0, min(ticks, MaxSpawnInterval))
	g.cfg.Enemy.SpawnInterval = ticks
	return ticks
}

func (g *Game) SpawnInterval() int { return g.cfg.Enemy.SpawnInterval }

// ManualSpawn creates a large enemy now through the spawner's normal
// creation path, bypassing only the interval check. The zero ID means no
// legal position was found.
func (g *Game) ManualSpawn() (ecs.EntityID, error) {
	return g.spawner.Spawn()
}
