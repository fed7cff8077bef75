package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is the spatial state of an entity.
// Angle is display-only spin, it never feeds back into gameplay.
type Transform struct {
	Pos      mgl32.Vec2
	Velocity mgl32.Vec2
	Angle    float32
}

// Collision is a circular boundary, independent of the drawn radius.
type Collision struct {
	Radius float32
}
