package constants

import "time"

// Feedback timing
const (
	HitFlashDuration    = 150 * time.Millisecond
	AttackPulseDuration = 250 * time.Millisecond
	DamageFlashDuration = 200 * time.Millisecond
)

// Feedback shapes
const (
	HitShrink = 0.9

	AttackPulseXZ = 1.15
	AttackPulseY  = 1.1

	// Colours are 0xRRGGBB
	ZombieBodyColor = 0x4a6a4a
	ZombieHeadColor = 0x5a7a5a
	ZombieHitColor  = 0xff4444

	TreeColor   = 0x1a3a1a
	GraveColor  = 0x505050
	RockColor   = 0x4a4a4a
	MoonColor   = 0xffffcc
	HandleColor = 0x4a2810
	BladeColor  = 0xcccccc
	GroundColor = 0x3a4a2a
	FlashColor  = 0x440000
)

// Weapon pose; the controller hangs below and ahead of the eye, the weapon is mounted on it
const (
	ControllerOffsetX = 0.25
	ControllerOffsetY = -0.6
	ControllerOffsetZ = -0.3

	WeaponOffsetX   = 0.15
	WeaponOffsetY   = -0.3
	WeaponOffsetZ   = -0.5
	WeaponRestPitch = 0.7853981633974483 // pi/4
	BladeOffsetY    = 0.25
)

// Terminal layout
const (
	// CellsPerUnit is how many terminal columns map to one world unit horizontally
	CellsPerUnit = 1.0

	// CellAspect compensates for terminal cells being roughly twice as tall as wide
	CellAspect = 0.5

	HealthBarRow           = 0
	StatusBarRowFromBottom = 1

	// TurnStep is the yaw change per turn key press (radians)
	TurnStep = 0.1308996938995747 // pi/24

	// InputHold is how long a movement key keeps its axis latched
	InputHold = 150 * time.Millisecond
)
