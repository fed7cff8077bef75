package component

// Lifespan counts down once per tick. Remaining never exceeds Total.
type Lifespan struct {
	Total     int
	Remaining int
}

// NewLifespan returns a full lifespan of the given number of ticks.
func NewLifespan(ticks int) Lifespan {
	return Lifespan{Total: ticks, Remaining: ticks}
}

// Score is the point template carried by an entity. The running score is
// global, see world.State.
type Score struct {
	Points int
}

// Input is the directional and fire state of the player.
// Pure data, only InputSystem writes it.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Shoot bool
}
