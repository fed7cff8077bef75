package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/geowars/arena/internal/audio"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/data"
	"github.com/geowars/arena/internal/frontend"
	"github.com/geowars/arena/internal/game"
	"github.com/geowars/arena/internal/logging"
	"github.com/geowars/arena/internal/random"
	"github.com/geowars/arena/internal/scripting"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Shutdown display helpers ───────────────────────────────────────

func printSection(title string) {
	lineLen := max(46-len(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := max(42-len(label)-len(numStr), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

// ── Main game logic ───────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/geowars.toml"
	if p := os.Getenv("GEOWARS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger. tcell owns the terminal, so stderr is never a sink here.
	if cfg.Logging.File == "" {
		cfg.Logging.File = "geowars.log"
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("run", uuid.NewString()))

	// 3. Lua scoring overrides
	luaEngine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()

	// 4. Game
	g, err := game.New(cfg,
		game.WithRandom(random.NewFromEntropy()),
		game.WithLogger(log),
		game.WithScoreOverride(luaEngine),
	)
	if err != nil {
		return fmt.Errorf("init game: %w", err)
	}

	// 5. Sound is optional: a missing audio device only costs the cues.
	if cfg.Audio.Enabled {
		player, err := audio.New(cfg.Audio, log)
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			defer player.Close()
			player.Subscribe(g.Events())
		}
	}

	// 6. Terminal
	keymap, err := data.LoadKeymap(cfg.Frontend.Keymap)
	if err != nil {
		return fmt.Errorf("load keymap: %w", err)
	}
	term, err := frontend.New(cfg, keymap, log)
	if err != nil {
		return err
	}
	term.Attach(g)
	term.Start()

	// 7. Game loop until quit or signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("game loop started", zap.Duration("tick", cfg.Window.TickRate), zap.Int("keys", keymap.Count()))
	runErr := g.Run(ctx, term, term)
	term.Close()
	if runErr != nil {
		log.Error("game aborted", zap.Error(runErr))
		return runErr
	}

	snap := g.Snapshot()
	fmt.Println()
	printSection("Game over")
	printStat("Frames", snap.Frame)
	printStat("Score", snap.Score)
	printStat("High score", snap.HighScore)
	fmt.Println()
	return nil
}
