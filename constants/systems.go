package constants

// System priorities; lower runs first within a frame
const (
	PriorityMovement   = 10
	PriorityAI         = 20
	PriorityCombat     = 30
	PriorityPopulation = 40
	PriorityTimekeeper = 50
	PrioritySky        = 60
)

// Sky
const (
	MoonOrbitRadius = 150.0
	MoonBaseHeight  = 80.0
	MoonBob         = 30.0
	// MoonAngularRate is radians per whole second survived
	MoonAngularRate = 0.0001
)
