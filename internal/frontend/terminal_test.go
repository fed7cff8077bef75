package frontend

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/data"
	"github.com/geowars/arena/internal/game"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)

	cfg := config.Defaults()
	cfg.Frontend.HoldTicks = 2
	term := NewWithScreen(screen, cfg, data.DefaultKeymap(), zap.NewNop())
	t.Cleanup(term.Close)
	return term, screen
}

type fakeControls struct {
	enabled  map[game.SystemKind]bool
	interval int
	spawns   int
}

func (f *fakeControls) SetSystemEnabled(k game.SystemKind, on bool) error {
	f.enabled[k] = on
	return nil
}
func (f *fakeControls) SystemEnabled(k game.SystemKind) bool { return f.enabled[k] }
func (f *fakeControls) SetSpawnInterval(n int) int {
	f.interval = max(0, min(n, game.MaxSpawnInterval))
	return f.interval
}
func (f *fakeControls) SpawnInterval() int { return f.interval }
func (f *fakeControls) ManualSpawn() (ecs.EntityID, error) {
	f.spawns++
	return ecs.EntityID(f.spawns), nil
}

func TestDirectionHeldForHoldTicks(t *testing.T) {
	term, _ := newTerminal(t)
	term.press("d")

	assert.True(t, term.Poll().Right)
	assert.True(t, term.Poll().Right)
	assert.False(t, term.Poll().Right)
}

func TestEdgesReportedOnce(t *testing.T) {
	term, _ := newTerminal(t)
	term.press("space")
	term.press("p")

	in := term.Poll()
	assert.True(t, in.Special)
	assert.True(t, in.TogglePause)
	assert.Equal(t, game.Input{}, term.Poll())

	term.press("esc")
	assert.True(t, term.Poll().Quit)
}

func TestUnboundKeyIgnored(t *testing.T) {
	term, _ := newTerminal(t)
	term.press("z")
	assert.Equal(t, game.Input{}, term.Poll())
}

func TestMouseFireTargetsWorldPoint(t *testing.T) {
	term, _ := newTerminal(t)
	term.mouse(40, 13, tcell.Button1)

	in := term.Poll()
	require.True(t, in.Fire)
	// 80x24 play area over 1440x900: 18 x 37.5 world units per cell.
	assert.InDelta(t, 729, in.FireTarget.X(), 1e-3)
	assert.InDelta(t, 468.75, in.FireTarget.Y(), 1e-3)

	term.mouse(10, 10, tcell.Button2)
	in = term.Poll()
	assert.True(t, in.Special)
	assert.False(t, in.Fire)
}

func TestDebugActionsReachControls(t *testing.T) {
	term, _ := newTerminal(t)
	ctl := &fakeControls{enabled: map[game.SystemKind]bool{game.SystemCollision: true}, interval: 60}
	term.Attach(ctl)

	term.press("3")
	term.press("-")
	term.press("e")
	term.press("e")
	term.Poll()

	assert.False(t, ctl.enabled[game.SystemCollision])
	assert.Equal(t, 50, ctl.interval)
	assert.Equal(t, 2, ctl.spawns)

	term.press("+")
	term.Poll()
	assert.Equal(t, 60, ctl.interval)
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := range w {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestRenderDrawsEntitiesAndHUD(t *testing.T) {
	term, screen := newTerminal(t)
	snap := game.Snapshot{
		Entities: []game.EntityView{{
			ID:  1,
			Tag: ecs.TagPlayer,
			Pos: mgl32.Vec2{720, 450},
			Shape: component.Shape{
				Outline: component.Color{R: 255, A: 255},
			},
		}, {
			ID:    2,
			Tag:   ecs.TagEnemy,
			Pos:   mgl32.Vec2{0, 0},
			Shape: component.Shape{Points: 5, Fill: component.Color{G: 200, A: 255}},
		}},
		Score:         1234,
		HighScore:     56789,
		SpecialReady:  true,
		Paused:        true,
		SpawnInterval: 60,
		RenderEnabled: true,
	}
	term.Render(snap)

	r, _, _, _ := screen.GetContent(40, 13)
	assert.Equal(t, '@', r)
	r, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, '5', r)

	hud := rowText(screen, 0)
	assert.Contains(t, hud, "Score 1,234")
	assert.Contains(t, hud, "High 56,789")
	assert.Contains(t, hud, "READY")
	assert.Contains(t, hud, "[PAUSED]")
}

func TestRenderDisabledShowsOnlyHUD(t *testing.T) {
	term, screen := newTerminal(t)
	term.Render(game.Snapshot{
		Entities: []game.EntityView{{Tag: ecs.TagPlayer, Pos: mgl32.Vec2{720, 450}}},
	})
	r, _, _, _ := screen.GetContent(40, 13)
	assert.Equal(t, ' ', r)
	assert.Contains(t, rowText(screen, 0), "cooling down")
}

func TestOffscreenEntitiesSkipped(t *testing.T) {
	term, _ := newTerminal(t)
	_, _, ok := term.toCell(mgl32.Vec2{-5, 100})
	assert.False(t, ok)
	_, _, ok = term.toCell(mgl32.Vec2{1440, 100})
	assert.False(t, ok)
}
