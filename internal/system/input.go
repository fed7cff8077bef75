package system

import (
	"time"

	coresys "github.com/geowars/arena/internal/core/system"
	"github.com/geowars/arena/internal/world"
	"go.uber.org/zap"
)

// InputSystem applies the tick's input snapshot: pause toggle, the player's
// directional flags, primary fire and the special weapon. Phase 2 (Input).
type InputSystem struct {
	state   *world.State
	weapons *Weapons
	log     *zap.Logger
}

func NewInputSystem(state *world.State, weapons *Weapons, log *zap.Logger) *InputSystem {
	return &InputSystem{state: state, weapons: weapons, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) error {
	st := s.state
	in := st.Input
	if in.TogglePause {
		st.Paused = !st.Paused
		s.log.Info("pause toggled", zap.Bool("paused", st.Paused), zap.Int("frame", st.Frame))
	}

	id, err := st.Player()
	if err != nil {
		return err
	}
	if pin, ok := st.Inputs.Get(id); ok {
		pin.Up = in.Up
		pin.Down = in.Down
		pin.Left = in.Left
		pin.Right = in.Right
		pin.Shoot = in.Fire
	}

	if in.Fire {
		if _, err := s.weapons.Fire(in.FireTarget); err != nil {
			return err
		}
	}
	if in.Special {
		if _, err := s.weapons.Special(); err != nil {
			return err
		}
	}
	return nil
}
