package game

import (
	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// EntityView is the read-only slice of an entity a renderer needs.
type EntityView struct {
	ID    ecs.EntityID
	Tag   ecs.Tag
	Pos   mgl32.Vec2
	Angle float32
	Shape component.Shape
}

// Snapshot is the render-side view of one tick. Entities are in live
// order, which is also draw order.
type Snapshot struct {
	Entities      []EntityView
	Score         int
	HighScore     int
	SpecialReady  bool
	Paused        bool
	Frame         int
	SpawnInterval int
	RenderEnabled bool
	Width         int
	Height        int
}

// Snapshot copies the live, alive entities and the scalar state. Entities
// created this tick appear after the next commit.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	ids := st.World.All()
	snap := Snapshot{
		Entities:      make([]EntityView, 0, len(ids)),
		Score:         st.Score,
		HighScore:     st.HighScore,
		SpecialReady:  st.SpecialReady,
		Paused:        st.Paused,
		Frame:         st.Frame,
		SpawnInterval: g.cfg.Enemy.SpawnInterval,
		RenderEnabled: st.Systems.Rendering,
		Width:         g.cfg.Window.Width,
		Height:        g.cfg.Window.Height,
	}
	for _, id := range ids {
		e, ok := st.World.Get(id)
		if !ok || !e.Alive() {
			continue
		}
		t, ok := st.Transforms.Get(id)
		if !ok {
			continue
		}
		v := EntityView{ID: id, Tag: e.Tag(), Pos: t.Pos, Angle: t.Angle}
		if s, ok := st.Shapes.Get(id); ok {
			v.Shape = *s
		}
		snap.Entities = append(snap.Entities, v)
	}
	return snap
}

// Count returns how many entities in the snapshot carry tag.
func (s Snapshot) Count(tag ecs.Tag) int {
	n := 0
	for _, e := range s.Entities {
		if e.Tag == tag {
			n++
		}
	}
	return n
}
