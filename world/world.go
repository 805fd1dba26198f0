// Package world holds the static and dynamic contents of the graveyard:
// the arena bounds, the obstacle registry and the enemy collection.
package world

import (
	"github.com/lixenwraith/deadwood/vmath"
)

// World groups the arena, its obstacles and the live enemies
type World struct {
	Arena     Arena
	Obstacles *ObstacleRegistry
	Enemies   *EnemyStore
}

// New builds a world and scatters obstacles using rng
func New(rng *vmath.FastRand) *World {
	w := &World{
		Arena:     DefaultArena(),
		Obstacles: NewObstacleRegistry(),
		Enemies:   NewEnemyStore(),
	}
	Populate(w.Obstacles, w.Arena, rng)
	return w
}

// NewEmpty builds a world with no obstacles
func NewEmpty() *World {
	return &World{
		Arena:     DefaultArena(),
		Obstacles: NewObstacleRegistry(),
		Enemies:   NewEnemyStore(),
	}
}
