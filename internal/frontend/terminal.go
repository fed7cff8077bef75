// Package frontend is the terminal collaborator: it turns tcell key and
// mouse events into per-tick input snapshots and draws game snapshots as
// glyphs scaled from world units to cells.
package frontend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/data"
	"github.com/geowars/arena/internal/game"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SpawnIntervalStep is how far one spawn_faster/spawn_slower press moves
// the spawn interval.
const SpawnIntervalStep = 10

// Controls is the debug surface of the game. *game.Game satisfies it.
type Controls interface {
	SetSystemEnabled(kind game.SystemKind, on bool) error
	SystemEnabled(kind game.SystemKind) bool
	SetSpawnInterval(ticks int) int
	SpawnInterval() int
	ManualSpawn() (ecs.EntityID, error)
}

var toggleActions = map[data.Action]game.SystemKind{
	data.ActionToggleMovement:  game.SystemMovement,
	data.ActionToggleLifespan:  game.SystemLifespan,
	data.ActionToggleCollision: game.SystemCollision,
	data.ActionToggleSpawning:  game.SystemSpawning,
	data.ActionToggleRendering: game.SystemRendering,
}

// Terminal implements game.InputProvider and game.Renderer.
//
// Terminals report key presses but not releases, so a direction key stays
// held for holdTicks polls after its last press. Auto-repeat refreshes it.
type Terminal struct {
	screen    tcell.Screen
	keymap    *data.Keymap
	worldW    float32
	worldH    float32
	holdTicks int
	log       *zap.Logger
	printer   *message.Printer
	controls  Controls

	mu     sync.Mutex
	held   map[data.Action]int
	edges  game.Input
	debug  []data.Action
	cursor mgl32.Vec2

	done chan struct{}
}

// New opens the real terminal.
func New(cfg *config.Config, keymap *data.Keymap, log *zap.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return NewWithScreen(screen, cfg, keymap, log), nil
}

// NewWithScreen wraps an initialized screen, such as a simulation screen.
// It does not start the event reader; see Start.
func NewWithScreen(screen tcell.Screen, cfg *config.Config, keymap *data.Keymap, log *zap.Logger) *Terminal {
	screen.EnableMouse()
	screen.HideCursor()
	return &Terminal{
		screen:    screen,
		keymap:    keymap,
		worldW:    float32(cfg.Window.Width),
		worldH:    float32(cfg.Window.Height),
		holdTicks: cfg.Frontend.HoldTicks,
		log:       log,
		printer:   message.NewPrinter(language.English),
		held:      make(map[data.Action]int),
		done:      make(chan struct{}),
	}
}

// Attach routes debug actions to c. Without it they are dropped.
func (t *Terminal) Attach(c Controls) {
	t.controls = c
}

// Start reads screen events on a goroutine until Close.
func (t *Terminal) Start() {
	go t.readEvents()
}

func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
		t.handle(ev)
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			t.mu.Lock()
			t.edges.Quit = true
			t.mu.Unlock()
			return
		}
		if name, ok := keyName(ev); ok {
			t.press(name)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.mouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// keyName maps a key event to the names used in keymap.yaml.
func keyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up", true
	case tcell.KeyDown:
		return "down", true
	case tcell.KeyLeft:
		return "left", true
	case tcell.KeyRight:
		return "right", true
	case tcell.KeyEscape:
		return "esc", true
	case tcell.KeyEnter:
		return "enter", true
	case tcell.KeyTab:
		return "tab", true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space", true
		}
		return string(ev.Rune()), true
	}
	return "", false
}

func (t *Terminal) press(key string) {
	action, ok := t.keymap.Lookup(key)
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch action {
	case data.ActionUp, data.ActionDown, data.ActionLeft, data.ActionRight:
		t.held[action] = t.holdTicks
	case data.ActionSpecial:
		t.edges.Special = true
	case data.ActionPause:
		t.edges.TogglePause = true
	case data.ActionQuit:
		t.edges.Quit = true
	default:
		t.debug = append(t.debug, action)
	}
}

func (t *Terminal) mouse(x, y int, buttons tcell.ButtonMask) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor = t.toWorld(x, y)
	if buttons&tcell.Button1 != 0 {
		t.edges.Fire = true
		t.edges.FireTarget = t.cursor
	}
	if buttons&tcell.Button2 != 0 {
		t.edges.Special = true
	}
}

// Poll returns the input for one tick and applies queued debug actions.
// It must be called from the game loop goroutine.
func (t *Terminal) Poll() game.Input {
	t.mu.Lock()
	in := t.edges
	t.edges = game.Input{}
	for action, n := range t.held {
		switch action {
		case data.ActionUp:
			in.Up = true
		case data.ActionDown:
			in.Down = true
		case data.ActionLeft:
			in.Left = true
		case data.ActionRight:
			in.Right = true
		}
		if n <= 1 {
			delete(t.held, action)
		} else {
			t.held[action] = n - 1
		}
	}
	debug := t.debug
	t.debug = nil
	t.mu.Unlock()

	for _, action := range debug {
		t.apply(action)
	}
	return in
}

func (t *Terminal) apply(action data.Action) {
	if t.controls == nil {
		return
	}
	c := t.controls
	if kind, ok := toggleActions[action]; ok {
		if err := c.SetSystemEnabled(kind, !c.SystemEnabled(kind)); err != nil {
			t.log.Warn("toggle failed", zap.Stringer("system", kind), zap.Error(err))
		}
		return
	}
	switch action {
	case data.ActionManualSpawn:
		if _, err := c.ManualSpawn(); err != nil {
			t.log.Warn("manual spawn failed", zap.Error(err))
		}
	case data.ActionSpawnFaster:
		c.SetSpawnInterval(c.SpawnInterval() - SpawnIntervalStep)
	case data.ActionSpawnSlower:
		c.SetSpawnInterval(c.SpawnInterval() + SpawnIntervalStep)
	}
}

// Close stops the event reader and restores the terminal.
func (t *Terminal) Close() {
	select {
	case <-t.done:
		return
	default:
		close(t.done)
	}
	t.screen.Fini()
}

// playArea is the cell rectangle below the HUD row.
func (t *Terminal) playArea() (cols, rows int) {
	w, h := t.screen.Size()
	return w, max(h-1, 1)
}

func (t *Terminal) toWorld(x, y int) mgl32.Vec2 {
	cols, rows := t.playArea()
	return mgl32.Vec2{
		(float32(x) + 0.5) * t.worldW / float32(cols),
		(float32(y-1) + 0.5) * t.worldH / float32(rows),
	}
}

func (t *Terminal) toCell(p mgl32.Vec2) (int, int, bool) {
	cols, rows := t.playArea()
	if p.X() < 0 || p.Y() < 0 || p.X() >= t.worldW || p.Y() >= t.worldH {
		return 0, 0, false
	}
	x := int(p.X() * float32(cols) / t.worldW)
	y := int(p.Y()*float32(rows)/t.worldH) + 1
	return x, y, true
}
