package components

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// HitZone is one sampled blade position during a swing
type HitZone struct {
	Position mgl64.Vec3
	Elapsed  time.Duration
}

// Swing is the state of the player's axe attack
// At most one swing is active; HitZones are cleared when a new swing starts
type Swing struct {
	Active   bool
	Start    time.Time
	Duration time.Duration

	// RestRotation is the weapon's Euler rotation captured at swing start
	RestRotation mgl64.Vec3

	HitZones []HitZone

	// LastSample is the elapsed time of the newest zone; one sample per frame time
	LastSample time.Duration
	Sampled    bool
}

// Progress returns the normalized swing progress for the given elapsed time, capped at 1
func (s *Swing) Progress(elapsed time.Duration) float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(s.Duration)
	if p > 1 {
		return 1
	}
	return p
}
