package constants

import "time"

// Game Loop Timing
const (
	// MaxFrameDelta is the upper bound on per-frame dt
	MaxFrameDelta = 100 * time.Millisecond

	// SimFrameStep is the fixed step used by the headless simulation
	SimFrameStep = 16 * time.Millisecond
)

// Arena
const (
	// WorldRadius is the radius of the circular play area centred at the origin
	WorldRadius = 95.0

	// PushEpsilon is added to penetration depth when pushing actors out of obstacles
	PushEpsilon = 0.01
)

// Obstacle placement
const (
	TreeCount  = 80
	GraveCount = 30
	RockCount  = 25

	TreeRadius  = 0.8
	GraveRadius = 0.8
	RockRadius  = 1.2

	// ObstacleClearance is the minimum distance from a new obstacle centre to an existing obstacle's edge
	ObstacleClearance = 5.0

	TreeMinDistance    = 15.0
	TreeDistanceMargin = 20.0

	PropMinDistance    = 10.0
	PropDistanceMargin = 15.0
)
