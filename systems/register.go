// Package systems holds the per-frame gameplay steps: player movement, enemy
// AI, axe combat, population, the session clock and the sky.
package systems

import (
	"github.com/lixenwraith/deadwood/engine"
)

// Set is the full system roster of a session
type Set struct {
	Movement   *MovementSystem
	AI         *AISystem
	Combat     *CombatSystem
	Population *PopulationSystem
	TimeKeeper *TimeKeeperSystem
	Sky        *SkySystem
}

// Register builds every system, adds them to ctx and binds the trigger to the axe swing
func Register(ctx *engine.GameContext) *Set {
	population := NewPopulationSystem(ctx)
	set := &Set{
		Movement:   NewMovementSystem(ctx),
		AI:         NewAISystem(ctx),
		Combat:     NewCombatSystem(ctx, population),
		Population: population,
		TimeKeeper: NewTimeKeeperSystem(ctx),
		Sky:        NewSkySystem(ctx),
	}

	ctx.AddSystem(set.Movement)
	ctx.AddSystem(set.AI)
	ctx.AddSystem(set.Combat)
	ctx.AddSystem(set.Population)
	ctx.AddSystem(set.TimeKeeper)
	ctx.AddSystem(set.Sky)

	ctx.Input.OnActivate(func() {
		if ctx.Clock.IsPaused() {
			return
		}
		set.Combat.StartSwing(ctx.Now())
	})
	return set
}
