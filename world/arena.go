package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/vmath"
)

// Arena is the circular play area centred at the origin
type Arena struct {
	Radius float64
}

// DefaultArena returns the standard graveyard bounds
func DefaultArena() Arena {
	return Arena{Radius: constants.WorldRadius}
}

// Contains reports whether a circle of the given radius at p lies fully inside the arena
func (a Arena) Contains(p mgl64.Vec3, radius float64) bool {
	return vmath.RadialDistance(p) <= a.Radius-radius
}
