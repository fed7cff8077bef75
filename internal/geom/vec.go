// Package geom holds the 2D vector helpers the systems share.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Normalize returns v scaled to unit length. A zero-length vector is a
// momentary degenerate (a shot aimed at its own origin), so it is logged and
// the zero vector is returned instead of NaNs.
func Normalize(v mgl32.Vec2, log *zap.Logger) mgl32.Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(float64(l)) {
		if log != nil {
			log.Warn("normalize zero-length vector", zap.Float32("x", v.X()), zap.Float32("y", v.Y()))
		}
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{v[0] / l, v[1] / l}
}

// DistSq is the squared distance between a and b.
func DistSq(a, b mgl32.Vec2) float32 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	return dx*dx + dy*dy
}

// Overlap reports whether two circles intersect, without a square root.
// Touching circles do not overlap.
func Overlap(a mgl32.Vec2, ra float32, b mgl32.Vec2, rb float32) bool {
	r := ra + rb
	return DistSq(a, b) < r*r
}

// Direction returns the i-th of n unit vectors spaced evenly around the
// circle, starting at +X. Used for fragment and burst fans.
func Direction(i, n int) mgl32.Vec2 {
	theta := 2 * math.Pi * float64(i) / float64(n)
	return mgl32.Vec2{float32(math.Cos(theta)), float32(math.Sin(theta))}
}
