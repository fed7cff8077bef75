package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseCommit      Phase = iota // 0: apply buffered adds, purge the dead
	PhasePreUpdate                // 1: deliver last tick's events
	PhaseInput                    // 2: apply the tick's input snapshot
	PhaseSpawn                    // 3: enemy spawner
	PhaseMove                     // 4: rotation + movement
	PhaseCollide                  // 5: bounds, player and bullet hits
	PhaseLifespan                 // 6: fade and expire
	PhaseBookkeeping              // 7: frame counter, weapon cooldown
)

func (p Phase) String() string {
	switch p {
	case PhaseCommit:
		return "commit"
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseSpawn:
		return "spawn"
	case PhaseMove:
		return "move"
	case PhaseCollide:
		return "collide"
	case PhaseLifespan:
		return "lifespan"
	case PhaseBookkeeping:
		return "bookkeeping"
	}
	return "unknown"
}

// System is the interface every simulation system implements.
// A returned error means an invariant is broken and the tick cannot go on.
type System interface {
	Phase() Phase
	Update(dt time.Duration) error
}
