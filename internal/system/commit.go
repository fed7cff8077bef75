package system

import (
	"time"

	coresys "github.com/geowars/arena/internal/core/system"
	"github.com/geowars/arena/internal/world"
	"go.uber.org/zap"
)

// CommitSystem applies last tick's buffered adds and purges the dead before
// any other system runs. Phase 0 (Commit).
type CommitSystem struct {
	state *world.State
	log   *zap.Logger
}

func NewCommitSystem(state *world.State, log *zap.Logger) *CommitSystem {
	return &CommitSystem{state: state, log: log}
}

func (s *CommitSystem) Phase() coresys.Phase { return coresys.PhaseCommit }

func (s *CommitSystem) Update(_ time.Duration) error {
	if purged := s.state.World.Commit(); purged > 0 {
		s.log.Debug("purged entities",
			zap.Int("count", purged),
			zap.Int("live", s.state.World.Len()),
			zap.Int("frame", s.state.Frame))
	}
	return nil
}
