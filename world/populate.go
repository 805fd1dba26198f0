package world

import (
	"math"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/vmath"
)

type placement struct {
	kind    components.ObstacleKind
	count   int
	radius  float64
	minDist float64
	margin  float64
}

var placements = []placement{
	{components.ObstacleTree, constants.TreeCount, constants.TreeRadius, constants.TreeMinDistance, constants.TreeDistanceMargin},
	{components.ObstacleGrave, constants.GraveCount, constants.GraveRadius, constants.PropMinDistance, constants.PropDistanceMargin},
	{components.ObstacleRock, constants.RockCount, constants.RockRadius, constants.PropMinDistance, constants.PropDistanceMargin},
}

// Populate scatters trees, graves and rocks around the origin
// Each kind gets a fixed number of attempts; an attempt landing within
// ObstacleClearance + radius of an existing obstacle is dropped
// Returns the number of obstacles placed
func Populate(reg *ObstacleRegistry, arena Arena, rng *vmath.FastRand) int {
	placed := 0
	for _, p := range placements {
		for i := 0; i < p.count; i++ {
			angle := rng.Angle()
			dist := rng.Range(p.minDist, arena.Radius-p.margin)
			x := math.Cos(angle) * dist
			z := math.Sin(angle) * dist

			if reg.Collides(x, z, constants.ObstacleClearance, 0) {
				continue
			}
			reg.Add(components.Obstacle{X: x, Z: z, Radius: p.radius, Kind: p.kind})
			placed++
		}
	}
	return placed
}
