package constants

import "time"

// Player
const (
	PlayerSpeed  = 4.5
	PlayerRadius = 0.5
	PlayerHeight = 1.7
	MaxHealth    = 100

	// InputDeadzone is the per-axis magnitude below which stick input is ignored
	InputDeadzone = 0.15
)

// Axe
const (
	AxeDamage        = 50
	AxeRange         = 3.5
	AxeVerticalReach = 1.2
	AxeSwingDuration = 350 * time.Millisecond

	// AxeSwingTilt is the peak roll applied mid-swing (radians)
	AxeSwingTilt = 0.3
)

// Zombie
const (
	ZombieSpeed          = 1.8
	ZombieRadius         = 0.5
	ZombieHealth         = 3
	ZombieDamage         = 15
	ZombieAttackCooldown = 1500 * time.Millisecond
	ZombieDetectionRange = 35.0
	ZombieAttackRange    = 1.5

	// ZombieAttackSlack is added to attack range to get the pursue threshold
	ZombieAttackSlack = 0.5

	// ZombieBodyHeight is the body part offset used for hit tests when the visual is unavailable
	ZombieBodyHeight = 1.0
	ZombieHeadHeight = 1.8

	ZombieGrowlMin    = 3 * time.Second
	ZombieGrowlJitter = 4 * time.Second
)

// Population
const (
	ZombieCount = 15

	// ZombieCap bounds the steady-state population
	ZombieCap = 2 * ZombieCount

	ZombieSpawnDistance = 40.0
	ZombieSpawnJitter   = 20.0

	// ZombieSpawnMargin keeps spawns this far inside the arena edge
	ZombieSpawnMargin = 5.0

	ZombieSpawnInterval = 5 * time.Second
)

// Death animation
const (
	DeathFallStep     = 0.06
	DeathFallInterval = 16 * time.Millisecond
	DeathMinWidth     = 0.5
	DeathWidthShrink  = 0.3
	CorpseLinger      = 2 * time.Second
)
