package components

// EntityID identifies a world object across the session, its visual proxy and its scheduled tasks
// Zero is reserved for "no entity"
type EntityID uint64

// PlayerID is the fixed id of the single player
const PlayerID EntityID = 1

// MoonID is the fixed id of the sky moon
const MoonID EntityID = 2

// FirstObstacleID is where obstacle proxy ids start
const FirstObstacleID EntityID = 1000

// FirstEnemyID is where enemy ids start
const FirstEnemyID EntityID = 10000

// VisualKind selects the proxy shape a collaborator builds for an entity
type VisualKind uint8

const (
	VisualPlayer VisualKind = iota
	VisualZombie
	VisualTree
	VisualGrave
	VisualRock
	VisualMoon
)

// Named parts exposed by visual proxies
const (
	PartRoot   = ""
	PartBlade  = "blade"
	PartBody   = "body"
	PartHead   = "head"
	PartWeapon = "weapon"
)
