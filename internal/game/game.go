// Package game is the frame orchestrator. It owns the world state, wires
// the systems onto a phase-ordered runner and advances the simulation one
// tick per Step.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/event"
	coresys "github.com/geowars/arena/internal/core/system"
	"github.com/geowars/arena/internal/random"
	"github.com/geowars/arena/internal/system"
	"github.com/geowars/arena/internal/world"
	"go.uber.org/zap"
)

// MaxSpawnInterval is the upper bound accepted by SetSpawnInterval.
const MaxSpawnInterval = 180

// Input is the per-tick snapshot handed in by the input collaborator.
type Input = world.InputSnapshot

// InputProvider is polled once per tick by Run.
type InputProvider interface {
	Poll() Input
}

// Renderer consumes a snapshot after every tick. It must not retain the
// snapshot's slices past the call.
type Renderer interface {
	Render(Snapshot)
}

type Option func(*Game)

// WithRandom injects the generator used for enemy placement.
func WithRandom(g *random.Generator) Option {
	return func(gm *Game) { gm.rng = g }
}

func WithLogger(log *zap.Logger) Option {
	return func(gm *Game) { gm.log = log }
}

// WithScoreOverride installs a kill-score formula, normally the Lua engine.
func WithScoreOverride(o system.ScoreOverride) Option {
	return func(gm *Game) { gm.score = o }
}

// Game is single-goroutine: Step, Snapshot and the debug controls must be
// called from the loop that drives it.
type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	rng   *random.Generator
	score system.ScoreOverride

	state   *world.State
	bus     *event.Bus
	runner  *coresys.Runner
	spawner *system.SpawnerSystem
	weapons *system.Weapons

	running bool
}

// New validates cfg, creates the player and registers the system pipeline.
// cfg is copied; live tuning through the debug controls never touches the
// caller's value.
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := *cfg
	g := &Game{
		cfg:     &c,
		log:     zap.NewNop(),
		state:   world.NewState(),
		bus:     event.NewBus(),
		runner:  coresys.NewRunner(),
		running: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = random.NewFromEntropy()
	}

	g.state.Systems = world.Toggles{
		Movement:  c.Systems.Movement,
		Lifespan:  c.Systems.Lifespan,
		Collision: c.Systems.Collision,
		Spawning:  c.Systems.Spawning,
		Rendering: c.Systems.Rendering,
	}
	if _, err := system.SpawnPlayer(g.state, g.cfg); err != nil {
		return nil, err
	}

	g.weapons = system.NewWeapons(g.state, g.cfg, g.bus, g.log)
	g.spawner = system.NewSpawnerSystem(g.state, g.cfg, g.rng, g.bus, g.score, g.log)

	g.runner.Register(system.NewCommitSystem(g.state, g.log))
	g.runner.Register(system.NewInputSystem(g.state, g.weapons, g.log))
	g.runner.Register(system.NewEventDispatchSystem(g.bus))
	g.runner.Register(g.spawner)
	g.runner.Register(system.NewMovementSystem(g.state))
	g.runner.Register(system.NewCollisionSystem(g.state, g.cfg, g.bus, g.score, g.log))
	g.runner.Register(system.NewLifespanSystem(g.state))
	g.runner.Register(system.NewCooldownSystem(g.state, g.bus))

	g.log.Info("game initialized",
		zap.Int("width", c.Window.Width),
		zap.Int("height", c.Window.Height),
		zap.Int("spawn_interval", c.Enemy.SpawnInterval),
		zap.Int("systems", g.runner.Len()))
	return g, nil
}

// Step runs one tick with in as the input snapshot. A quit edge stops the
// game before the tick runs. An error means a world invariant broke and
// the game cannot continue.
func (g *Game) Step(in Input) error {
	if !g.running {
		return nil
	}
	if in.Quit {
		g.running = false
		g.log.Info("quit requested", zap.Int("frame", g.state.Frame))
		return nil
	}
	g.state.Input = in
	err := g.runner.Tick(g.cfg.Window.TickRate)
	g.state.Input = Input{}
	if err != nil {
		g.running = false
		return fmt.Errorf("tick %d: %w", g.state.Frame, err)
	}
	return nil
}

// Running is false once a quit edge or a fatal tick error was seen.
func (g *Game) Running() bool { return g.running }

// Events exposes the bus for collaborators such as the audio cues.
// Handlers run on the game loop during the following tick.
func (g *Game) Events() *event.Bus { return g.bus }

// Run drives Step from a ticker at the configured tick rate until quit,
// a fatal error or ctx is done. Cancellation is only observed between ticks.
func (g *Game) Run(ctx context.Context, in InputProvider, out Renderer) error {
	ticker := time.NewTicker(g.cfg.Window.TickRate)
	defer ticker.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			g.log.Info("game loop stopped", zap.Int("frame", g.state.Frame), zap.Error(ctx.Err()))
			return nil
		case <-ticker.C:
			if err := g.Step(in.Poll()); err != nil {
				return err
			}
			if out != nil && g.running {
				out.Render(g.Snapshot())
			}
		}
	}
	return nil
}
