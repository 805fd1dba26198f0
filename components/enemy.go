package components

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Enemy is a pursuing zombie
type Enemy struct {
	ID       EntityID
	Position mgl64.Vec3 // ground position, Y is 0
	Yaw      float64

	Health int
	Alive  bool
	// Removed marks a tombstoned record awaiting compaction
	Removed bool

	LastAttack    time.Time
	LastGrowl     time.Time
	GrowlInterval time.Duration

	DetectionRange float64
	AttackRange    float64

	// FallProgress drives the death animation in [0, 1]
	FallProgress float64
}

// EnemyAction is the outcome of the per-frame AI policy
type EnemyAction uint8

const (
	ActionPursue EnemyAction = iota
	ActionAttack
)

func (a EnemyAction) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	default:
		return "pursue"
	}
}
