// Headless soak run: drives the game with scripted input for a fixed number
// of ticks as fast as possible, optionally under a profiler.
//
//	GEOWARS_SOAK_TICKS=36000 GEOWARS_PROFILE=cpu go run ./cmd/geowars-soak
//	go tool pprof -http=":8000" cpu.pprof
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/game"
	"github.com/geowars/arena/internal/logging"
	"github.com/geowars/arena/internal/random"
	"github.com/geowars/arena/internal/scripting"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/geowars.toml"
	if p := os.Getenv("GEOWARS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Logging.File = ""
	cfg.Enemy.SpawnInterval = 10

	ticks := 36000
	if v := os.Getenv("GEOWARS_SOAK_TICKS"); v != "" {
		if ticks, err = strconv.Atoi(v); err != nil || ticks < 1 {
			return fmt.Errorf("GEOWARS_SOAK_TICKS=%q: want a positive integer", v)
		}
	}

	switch os.Getenv("GEOWARS_PROFILE") {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("run", uuid.NewString()))

	luaEngine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()

	g, err := game.New(cfg,
		game.WithRandom(random.NewSeeded(1)),
		game.WithLogger(log),
		game.WithScoreOverride(luaEngine),
	)
	if err != nil {
		return fmt.Errorf("init game: %w", err)
	}

	start := time.Now()
	peak := 0
	for tick := 0; tick < ticks && g.Running(); tick++ {
		if err := g.Step(scripted(tick, cfg)); err != nil {
			return err
		}
		if n := len(g.Snapshot().Entities); n > peak {
			peak = n
		}
	}
	elapsed := time.Since(start)

	snap := g.Snapshot()
	log.Info("soak finished",
		zap.Int("ticks", snap.Frame),
		zap.Duration("elapsed", elapsed),
		zap.Duration("per_tick", elapsed/time.Duration(max(snap.Frame, 1))),
		zap.Int("peak_entities", peak),
		zap.Int("enemies", snap.Count(ecs.TagEnemy)),
		zap.Int("high_score", snap.HighScore))
	return nil
}

// scripted circles the player, fires at the screen centre twice a second
// and triggers the special weapon whenever it comes off cooldown.
func scripted(tick int, cfg *config.Config) game.Input {
	var in game.Input
	switch (tick / 60) % 4 {
	case 0:
		in.Right = true
	case 1:
		in.Down = true
	case 2:
		in.Left = true
	case 3:
		in.Up = true
	}
	if tick%30 == 0 {
		in.Fire = true
		in.FireTarget = mgl32.Vec2{float32(cfg.Window.Width) / 2, float32(cfg.Window.Height) / 2}
	}
	in.Special = tick%120 == 0
	return in
}
