package system

import "github.com/geowars/arena/internal/core/ecs"

// ScoreOverride lets an external formula (the Lua scoring script) replace
// the built-in kill score. ok=false falls back to DefaultKillScore.
type ScoreOverride interface {
	KillScore(tag string, vertices int) (points int, ok bool)
}

// DefaultKillScore is vertices*10 for a large enemy and vertices*20 for a
// small one.
func DefaultKillScore(tag ecs.Tag, vertices int) int {
	switch tag {
	case ecs.TagEnemy:
		return vertices * 10
	case ecs.TagSmallEnemy:
		return vertices * 20
	}
	return 0
}

func killScore(override ScoreOverride, tag ecs.Tag, vertices int) int {
	if override != nil {
		if pts, ok := override.KillScore(tag.String(), vertices); ok {
			return pts
		}
	}
	return DefaultKillScore(tag, vertices)
}
