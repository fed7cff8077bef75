package event

import (
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// EnemySpawned is emitted when the spawner creates a large enemy.
type EnemySpawned struct {
	EntityID ecs.EntityID
	Pos      mgl32.Vec2
	Points   int
	Frame    int
}

// EnemyDestroyed is emitted when a bullet kills an enemy or small enemy.
type EnemyDestroyed struct {
	EntityID  ecs.EntityID
	Tag       ecs.Tag
	Pos       mgl32.Vec2
	Vertices  int
	Awarded   int
	Score     int
	Fragments int
}

// PlayerHit is emitted when a hazard touches the player.
type PlayerHit struct {
	HazardID  ecs.EntityID
	HazardTag ecs.Tag
	LostScore int
}

// SpecialWeaponFired is emitted when the radial burst goes off.
type SpecialWeaponFired struct {
	Origin  mgl32.Vec2
	Bullets int
	Frame   int
}

// SpecialWeaponReady is emitted when the cooldown clears on its own.
type SpecialWeaponReady struct {
	Frame int
}
