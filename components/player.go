package components

import "github.com/go-gl/mathgl/mgl64"

// Player is the single human-controlled actor
type Player struct {
	// Position is the eye position; Y stays at PlayerHeight
	Position mgl64.Vec3
	Radius   float64
	Speed    float64

	// Health is kept within [0, MaxHealth]
	Health int
	// Alive flips to false once and never back
	Alive bool
}
