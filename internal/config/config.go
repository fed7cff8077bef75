package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/geowars/arena/internal/component"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window    WindowConfig    `toml:"window"`
	Player    PlayerConfig    `toml:"player"`
	Enemy     EnemyConfig     `toml:"enemy"`
	Bullet    BulletConfig    `toml:"bullet"`
	Systems   SystemsConfig   `toml:"systems"`
	Logging   LoggingConfig   `toml:"logging"`
	Scripting ScriptingConfig `toml:"scripting"`
	Frontend  FrontendConfig  `toml:"frontend"`
	Audio     AudioConfig     `toml:"audio"`
}

type WindowConfig struct {
	Width    int           `toml:"width"`
	Height   int           `toml:"height"`
	Title    string        `toml:"title"`
	TickRate time.Duration `toml:"tick_rate"`
}

type Vec struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

type PlayerConfig struct {
	RelativeX        float32         `toml:"relative_x"` // spawn point as a fraction of the window
	RelativeY        float32         `toml:"relative_y"`
	ShapeRadius      float32         `toml:"shape_radius"`
	CollisionRadius  float32         `toml:"collision_radius"`
	FillColor        component.Color `toml:"fill_color"`
	OutlineColor     component.Color `toml:"outline_color"`
	OutlineThickness float32         `toml:"outline_thickness"`
	Vertices         int             `toml:"vertices"`
	Velocity         Vec             `toml:"velocity"` // per-axis speed
}

type EnemyConfig struct {
	ShapeRadius        float32         `toml:"shape_radius"`
	CollisionRadius    float32         `toml:"collision_radius"`
	OutlineColor       component.Color `toml:"outline_color"`
	OutlineThickness   float32         `toml:"outline_thickness"`
	VerticesMin        int             `toml:"vertices_min"`
	VerticesMax        int             `toml:"vertices_max"`
	SpeedMin           float32         `toml:"speed_min"`
	SpeedMax           float32         `toml:"speed_max"`
	SmallEnemyLifespan int             `toml:"small_enemy_lifespan"` // ticks
	SpawnInterval      int             `toml:"spawn_interval"`       // ticks, tunable at runtime
}

type BulletConfig struct {
	ShapeRadius      float32         `toml:"shape_radius"`
	CollisionRadius  float32         `toml:"collision_radius"`
	FillColor        component.Color `toml:"fill_color"`
	OutlineColor     component.Color `toml:"outline_color"`
	OutlineThickness float32         `toml:"outline_thickness"`
	Vertices         int             `toml:"vertices"`
	Speed            float32         `toml:"speed"`
	Lifespan         int             `toml:"lifespan"` // ticks
}

// SystemsConfig seeds the per-system enable flags.
type SystemsConfig struct {
	Movement  bool `toml:"movement"`
	Lifespan  bool `toml:"lifespan"`
	Collision bool `toml:"collision"`
	Spawning  bool `toml:"spawning"`
	Rendering bool `toml:"rendering"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

type ScriptingConfig struct {
	Dir string `toml:"dir"` // empty disables Lua overrides
}

type FrontendConfig struct {
	Keymap    string `toml:"keymap"`
	HoldTicks int    `toml:"hold_ticks"` // terminals report no key release
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // beep volume exponent, 0 = unchanged
}

// Load reads a TOML file over the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects bundles the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %s", ErrInvalid, c.Window.TickRate)
	case c.Player.RelativeX < 0 || c.Player.RelativeX > 1 || c.Player.RelativeY < 0 || c.Player.RelativeY > 1:
		return fmt.Errorf("%w: player spawn (%g,%g) outside [0,1]", ErrInvalid, c.Player.RelativeX, c.Player.RelativeY)
	case c.Player.ShapeRadius <= 0 || c.Player.CollisionRadius <= 0:
		return fmt.Errorf("%w: player radius must be positive", ErrInvalid)
	case c.Enemy.ShapeRadius <= 0 || c.Enemy.CollisionRadius <= 0:
		return fmt.Errorf("%w: enemy radius must be positive", ErrInvalid)
	case c.Bullet.ShapeRadius <= 0 || c.Bullet.CollisionRadius <= 0:
		return fmt.Errorf("%w: bullet radius must be positive", ErrInvalid)
	case c.Enemy.VerticesMin < 1 || c.Enemy.VerticesMin > c.Enemy.VerticesMax:
		return fmt.Errorf("%w: enemy vertices [%d,%d]", ErrInvalid, c.Enemy.VerticesMin, c.Enemy.VerticesMax)
	case c.Enemy.SpeedMin > c.Enemy.SpeedMax:
		return fmt.Errorf("%w: enemy speed [%g,%g]", ErrInvalid, c.Enemy.SpeedMin, c.Enemy.SpeedMax)
	case c.Enemy.SpawnInterval < 0:
		return fmt.Errorf("%w: spawn_interval %d", ErrInvalid, c.Enemy.SpawnInterval)
	case c.Enemy.SmallEnemyLifespan < 1 || c.Bullet.Lifespan < 1:
		return fmt.Errorf("%w: lifespans must be at least one tick", ErrInvalid)
	case c.Frontend.HoldTicks < 1:
		return fmt.Errorf("%w: frontend hold_ticks %d", ErrInvalid, c.Frontend.HoldTicks)
	}
	return nil
}

// PlayerSpawn is the player's start and reset position in world units.
func (c *Config) PlayerSpawn() (float32, float32) {
	return float32(c.Window.Width) * c.Player.RelativeX, float32(c.Window.Height) * c.Player.RelativeY
}

// Defaults returns a fully populated config.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    1440,
			Height:   900,
			Title:    "Geometry Wars",
			TickRate: time.Second / 60,
		},
		Player: PlayerConfig{
			RelativeX:        0.5,
			RelativeY:        0.5,
			ShapeRadius:      25,
			CollisionRadius:  25,
			FillColor:        component.Color{R: 5, G: 5, B: 5, A: 255},
			OutlineColor:     component.Color{R: 255, G: 0, B: 0, A: 255},
			OutlineThickness: 4,
			Vertices:         8,
			Velocity:         Vec{X: 5, Y: 5},
		},
		Enemy: EnemyConfig{
			ShapeRadius:        25,
			CollisionRadius:    25,
			OutlineColor:       component.Color{R: 255, G: 255, B: 255, A: 255},
			OutlineThickness:   4,
			VerticesMin:        3,
			VerticesMax:        8,
			SpeedMin:           1,
			SpeedMax:           5,
			SmallEnemyLifespan: 90,
			SpawnInterval:      60,
		},
		Bullet: BulletConfig{
			ShapeRadius:      10,
			CollisionRadius:  10,
			FillColor:        component.Color{R: 255, G: 255, B: 255, A: 255},
			OutlineColor:     component.Color{R: 255, G: 255, B: 255, A: 255},
			OutlineThickness: 2,
			Vertices:         20,
			Speed:            10,
			Lifespan:         75,
		},
		Systems: SystemsConfig{
			Movement:  true,
			Lifespan:  true,
			Collision: true,
			Spawning:  true,
			Rendering: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Scripting: ScriptingConfig{
			Dir: "scripts",
		},
		Frontend: FrontendConfig{
			Keymap:    "data/yaml/keymap.yaml",
			HoldTicks: 8,
		},
		Audio: AudioConfig{
			Enabled:    false,
			SampleRate: 44100,
		},
	}
}
