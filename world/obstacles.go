package world

import (
	"math"

	"github.com/lixenwraith/deadwood/components"
)

// ObstacleRegistry holds the static colliders in insertion order
// Filled once while building the world, read-only afterwards
type ObstacleRegistry struct {
	items []components.Obstacle
}

// NewObstacleRegistry creates an empty registry
func NewObstacleRegistry() *ObstacleRegistry {
	return &ObstacleRegistry{items: make([]components.Obstacle, 0, 160)}
}

// Add appends an obstacle
func (r *ObstacleRegistry) Add(o components.Obstacle) {
	r.items = append(r.items, o)
}

// All returns the obstacles in registry order; callers must not modify the slice
func (r *ObstacleRegistry) All() []components.Obstacle {
	return r.items
}

// Len returns the obstacle count
func (r *ObstacleRegistry) Len() int {
	return len(r.items)
}

// Collides reports whether a circle at (x, z) with the given radius comes within clearance of any obstacle
func (r *ObstacleRegistry) Collides(x, z, radius, clearance float64) bool {
	for _, o := range r.items {
		if math.Hypot(x-o.X, z-o.Z) < radius+o.Radius+clearance {
			return true
		}
	}
	return false
}
