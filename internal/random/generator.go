// Package random produces the bounded random values used to build enemies.
//
// A Generator wraps an injected *rand.Rand so tests can pin the seed; the
// game builds one from entropy at startup. Callers must treat outputs as
// unconstrained apart from the documented bounds.
package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoSpawnPosition means rejection sampling found no legal position,
// normally because the play area is too small for the configured radii.
var ErrNoSpawnPosition = errors.New("no legal enemy spawn position")

// maxPositionAttempts bounds the rejection sampling loop.
const maxPositionAttempts = 10000

// Generator is not safe for concurrent use; it belongs to the game loop.
type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded is New over a fixed seed.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// NewFromEntropy seeds from the clock.
func NewFromEntropy() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// uniform draws from [lo, hi].
func (g *Generator) uniform(lo, hi float32) float32 {
	return lo + g.rng.Float32()*(hi-lo)
}

// EnemyPosition picks a point whose enemy circle lies inside the window,
// away from the player. Separation is per axis: a sample is accepted once
// |dx| or |dy| exceeds 2*playerRadius + enemyRadius.
func (g *Generator) EnemyPosition(cfg *config.Config, player mgl32.Vec2) (mgl32.Vec2, error) {
	r := cfg.Enemy.ShapeRadius
	minX, maxX := r+1, float32(cfg.Window.Width)-r-1
	minY, maxY := r+1, float32(cfg.Window.Height)-r-1
	if minX > maxX || minY > maxY {
		return mgl32.Vec2{}, fmt.Errorf("%w: window %dx%d too small for radius %g",
			ErrNoSpawnPosition, cfg.Window.Width, cfg.Window.Height, r)
	}

	sep := cfg.Player.ShapeRadius*2 + r
	for range maxPositionAttempts {
		x := g.uniform(minX, maxX)
		y := g.uniform(minY, maxY)
		if abs(player.X()-x) > sep || abs(player.Y()-y) > sep {
			return mgl32.Vec2{x, y}, nil
		}
	}
	return mgl32.Vec2{}, fmt.Errorf("%w: %d samples rejected near player (%g,%g)",
		ErrNoSpawnPosition, maxPositionAttempts, player.X(), player.Y())
}

// EnemySpeed draws the x and y components independently from the speed range.
func (g *Generator) EnemySpeed(cfg *config.Config) mgl32.Vec2 {
	return mgl32.Vec2{
		g.uniform(cfg.Enemy.SpeedMin, cfg.Enemy.SpeedMax),
		g.uniform(cfg.Enemy.SpeedMin, cfg.Enemy.SpeedMax),
	}
}

// EnemyColor draws each channel uniformly, always fully opaque.
func (g *Generator) EnemyColor() component.Color {
	return component.Color{
		R: uint8(g.rng.Intn(256)),
		G: uint8(g.rng.Intn(256)),
		B: uint8(g.rng.Intn(256)),
		A: 255,
	}
}

// EnemyVertices draws from [VerticesMin, VerticesMax], both inclusive.
func (g *Generator) EnemyVertices(cfg *config.Config) int {
	lo, hi := cfg.Enemy.VerticesMin, cfg.Enemy.VerticesMax
	return lo + g.rng.Intn(hi-lo+1)
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
