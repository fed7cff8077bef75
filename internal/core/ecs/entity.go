package ecs

import "fmt"

// EntityID is a stable identity. IDs are handed out from a monotonically
// increasing counter and are never reused for the lifetime of a World.
// Zero is never issued.
type EntityID uint64

func (id EntityID) IsZero() bool { return id == 0 }

// Tag is the closed classification of an entity.
type Tag uint8

const (
	TagPlayer Tag = iota
	TagEnemy
	TagSmallEnemy
	TagBullet

	tagCount
)

// Tags lists every tag in declaration order.
var Tags = [tagCount]Tag{TagPlayer, TagEnemy, TagSmallEnemy, TagBullet}

func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagEnemy:
		return "enemy"
	case TagSmallEnemy:
		return "smallEnemy"
	case TagBullet:
		return "bullet"
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Valid reports whether t belongs to the closed tag set.
func (t Tag) Valid() bool { return t < tagCount }

// IsHazard reports whether entities with this tag hurt the player.
func (t Tag) IsHazard() bool { return t == TagEnemy || t == TagSmallEnemy }

// Entity is the record kept for every identity: its tag and liveness flag.
// Component data lives in the component stores, keyed by ID.
type Entity struct {
	id    EntityID
	tag   Tag
	alive bool
}

func (e *Entity) ID() EntityID { return e.id }
func (e *Entity) Tag() Tag     { return e.tag }

// Alive is true until the entity is destroyed. A dead entity stays
// addressable until the next Commit.
func (e *Entity) Alive() bool { return e.alive }
