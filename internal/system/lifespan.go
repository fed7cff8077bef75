package system

import (
	"math"
	"time"

	coresys "github.com/geowars/arena/internal/core/system"
	"github.com/geowars/arena/internal/world"
)

// LifespanSystem ages every entity with a Lifespan, destroying it once the
// remaining ticks drop below one and otherwise fading fill and outline
// linearly toward transparent. Phase 6 (Lifespan).
type LifespanSystem struct {
	state *world.State
}

func NewLifespanSystem(state *world.State) *LifespanSystem {
	return &LifespanSystem{state: state}
}

func (s *LifespanSystem) Phase() coresys.Phase { return coresys.PhaseLifespan }

func (s *LifespanSystem) Update(_ time.Duration) error {
	st := s.state
	if st.Paused || !st.Systems.Lifespan {
		return nil
	}
	for _, id := range st.World.All() {
		if !st.World.Alive(id) {
			continue
		}
		l, ok := st.Lifespans.Get(id)
		if !ok {
			continue
		}
		l.Remaining--
		if l.Remaining < 1 {
			st.World.Destroy(id)
			continue
		}
		if sh, ok := st.Shapes.Get(id); ok {
			a := Alpha(l.Remaining, l.Total)
			sh.Fill = sh.Fill.WithAlpha(a)
			sh.Outline = sh.Outline.WithAlpha(a)
		}
	}
	return nil
}

// Alpha maps remaining/total onto 0..255, rounding to nearest.
func Alpha(remaining, total int) uint8 {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	if remaining >= total {
		return 255
	}
	return uint8(math.Round(float64(remaining) / float64(total) * 255))
}
