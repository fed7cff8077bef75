package world

import (
	"errors"
	"fmt"

	"github.com/geowars/arena/internal/component"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoPlayer        = errors.New("no player entity")
	ErrMultiplePlayers = errors.New("more than one player entity")
	ErrPlayerExists    = errors.New("player already exists")
)

// Toggles are the per-system enable flags driven by the debug controls.
type Toggles struct {
	Movement  bool
	Lifespan  bool
	Collision bool
	Spawning  bool
	Rendering bool
}

// InputSnapshot is what the input collaborator hands in for one tick.
// TogglePause, Fire, Special and Quit are edges, the rest are levels.
type InputSnapshot struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Fire       bool
	FireTarget mgl32.Vec2
	Special    bool

	TogglePause bool
	Quit        bool
}

// State holds the ECS world, its component stores and the scalar game
// state shared by the systems. Accessed only from the game loop goroutine.
type State struct {
	World *ecs.World

	Transforms *ecs.PtrComponentStore[component.Transform]
	Shapes     *ecs.PtrComponentStore[component.Shape]
	Collisions *ecs.PtrComponentStore[component.Collision]
	Scores     *ecs.PtrComponentStore[component.Score]
	Lifespans  *ecs.PtrComponentStore[component.Lifespan]
	Inputs     *ecs.PtrComponentStore[component.Input]

	playerID    ecs.EntityID
	PlayerSpawn mgl32.Vec2

	Frame        int
	LastSpawn    int
	LastSpecial  int
	SpecialReady bool
	Paused       bool
	Score        int
	HighScore    int

	Systems Toggles
	Input   InputSnapshot
}

func NewState() *State {
	s := &State{
		World:        ecs.NewWorld(),
		Transforms:   ecs.NewPtrComponentStore[component.Transform](),
		Shapes:       ecs.NewPtrComponentStore[component.Shape](),
		Collisions:   ecs.NewPtrComponentStore[component.Collision](),
		Scores:       ecs.NewPtrComponentStore[component.Score](),
		Lifespans:    ecs.NewPtrComponentStore[component.Lifespan](),
		Inputs:       ecs.NewPtrComponentStore[component.Input](),
		SpecialReady: true,
		Systems: Toggles{
			Movement:  true,
			Lifespan:  true,
			Collision: true,
			Spawning:  true,
			Rendering: true,
		},
	}
	s.World.Register(s.Transforms)
	s.World.Register(s.Shapes)
	s.World.Register(s.Collisions)
	s.World.Register(s.Scores)
	s.World.Register(s.Lifespans)
	s.World.Register(s.Inputs)
	return s
}

// Create allocates an entity under tag. The first player created is cached
// so Player is O(1).
func (s *State) Create(tag ecs.Tag) ecs.EntityID {
	id := s.World.Create(tag).ID()
	if tag == ecs.TagPlayer && s.playerID.IsZero() {
		s.playerID = id
	}
	return id
}

// Player returns the single player entity. Zero or several player-tagged
// entities is a broken invariant and is reported as an error.
func (s *State) Player() (ecs.EntityID, error) {
	switch n := len(s.World.ByTag(ecs.TagPlayer)); {
	case n == 0:
		return 0, ErrNoPlayer
	case n > 1:
		return 0, fmt.Errorf("%w: found %d", ErrMultiplePlayers, n)
	}
	if !s.World.Alive(s.playerID) {
		return 0, fmt.Errorf("%w: player %d destroyed", ErrNoPlayer, s.playerID)
	}
	return s.playerID, nil
}

// PlayerTransform is a convenience for systems that only need the player's
// position and collision radius.
func (s *State) PlayerTransform() (ecs.EntityID, *component.Transform, *component.Collision, error) {
	id, err := s.Player()
	if err != nil {
		return 0, nil, nil, err
	}
	t, ok := s.Transforms.Get(id)
	if !ok {
		return 0, nil, nil, fmt.Errorf("player %d has no transform", id)
	}
	c, ok := s.Collisions.Get(id)
	if !ok {
		return 0, nil, nil, fmt.Errorf("player %d has no collision", id)
	}
	return id, t, c, nil
}

// AddScore adds points to the running score and lifts the high score.
func (s *State) AddScore(points int) {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}
