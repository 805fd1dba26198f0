package systems

import (
	"time"

	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/engine"
)

// TimeKeeperSystem refreshes the survival clock shown on the HUD
type TimeKeeperSystem struct {
	ctx *engine.GameContext
}

// NewTimeKeeperSystem creates a new timekeeper system
func NewTimeKeeperSystem(ctx *engine.GameContext) *TimeKeeperSystem {
	return &TimeKeeperSystem{ctx: ctx}
}

// Priority returns the system's priority (after all gameplay systems)
func (s *TimeKeeperSystem) Priority() int {
	return constants.PriorityTimekeeper
}

// Update ticks the session clock; frozen after game over
func (s *TimeKeeperSystem) Update(now time.Time, dt time.Duration) {
	s.ctx.Session.Tick(now)
}
