package system

import (
	"time"

	"github.com/geowars/arena/internal/core/event"
	coresys "github.com/geowars/arena/internal/core/system"
	"github.com/geowars/arena/internal/world"
)

// CooldownSystem advances the frame counter and re-arms the special weapon
// once SpecialCooldown ticks have passed since it fired. Frozen while
// paused. Phase 7 (Bookkeeping).
type CooldownSystem struct {
	state *world.State
	bus   *event.Bus
}

func NewCooldownSystem(state *world.State, bus *event.Bus) *CooldownSystem {
	return &CooldownSystem{state: state, bus: bus}
}

func (s *CooldownSystem) Phase() coresys.Phase { return coresys.PhaseBookkeeping }

func (s *CooldownSystem) Update(_ time.Duration) error {
	st := s.state
	if st.Paused {
		return nil
	}
	st.Frame++
	if !st.SpecialReady && st.Frame-st.LastSpecial >= SpecialCooldown {
		st.SpecialReady = true
		event.Emit(s.bus, event.SpecialWeaponReady{Frame: st.Frame})
	}
	return nil
}
