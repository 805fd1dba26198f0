package systems

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/engine"
	"github.com/lixenwraith/deadwood/service"
	"github.com/lixenwraith/deadwood/status"
	"github.com/lixenwraith/deadwood/vmath"
)

// DecideAction is the enemy policy: close in until within reach, then attack
// Exactly at the boundary the enemy attacks
func DecideAction(distance, attackRange float64) components.EnemyAction {
	if distance > attackRange+constants.ZombieAttackSlack {
		return components.ActionPursue
	}
	return components.ActionAttack
}

// AISystem drives living enemies toward the player
type AISystem struct {
	ctx *engine.GameContext

	statDamage *atomic.Int64
}

// NewAISystem creates a new enemy AI system
func NewAISystem(ctx *engine.GameContext) *AISystem {
	return &AISystem{
		ctx:        ctx,
		statDamage: ctx.Status.Counter(status.PlayerDamage),
	}
}

// Priority returns the system's priority
func (s *AISystem) Priority() int {
	return constants.PriorityAI
}

// Update runs growl, pursuit and attack for each living enemy.
// An attack that ends the game stops every enemy after it in the same pass.
func (s *AISystem) Update(now time.Time, dt time.Duration) {
	target := s.ctx.Session.Player.Position

	s.ctx.World.Enemies.Each(func(e *components.Enemy) {
		if !e.Alive || !s.ctx.Session.Alive() {
			return
		}

		dir, dist := vmath.HorizontalDirection(e.Position, target)

		if dist < e.DetectionRange && now.Sub(e.LastGrowl) > e.GrowlInterval {
			s.ctx.Audio.Play(service.CueGrowl)
			e.LastGrowl = now
			e.GrowlInterval = growlInterval(s.ctx.Rand)
		}

		switch DecideAction(dist, e.AttackRange) {
		case components.ActionPursue:
			s.pursue(e, dir, dt)
		case components.ActionAttack:
			s.attack(e, now)
		}
	})
}

func (s *AISystem) pursue(e *components.Enemy, dir mgl64.Vec3, dt time.Duration) {
	e.Yaw = vmath.YawTowards(dir)
	step := dir.Mul(constants.ZombieSpeed * dt.Seconds())
	e.Position = s.ctx.Resolver.Resolve(e.Position, step, constants.ZombieRadius)

	s.ctx.Visuals.SetPosition(e.ID, components.PartRoot, e.Position)
	s.ctx.Visuals.SetRotation(e.ID, components.PartRoot, mgl64.Vec3{0, e.Yaw, 0})
}

func (s *AISystem) attack(e *components.Enemy, now time.Time) {
	if now.Sub(e.LastAttack) <= constants.ZombieAttackCooldown {
		return
	}
	e.LastAttack = now

	dealt := s.ctx.Session.DamagePlayer(constants.ZombieDamage, now)
	s.statDamage.Add(int64(dealt))

	id := e.ID
	s.ctx.Visuals.SetScale(id, components.PartRoot, mgl64.Vec3{constants.AttackPulseXZ, constants.AttackPulseY, constants.AttackPulseXZ})
	s.ctx.Scheduler.After(now, constants.AttackPulseDuration, id, func(time.Time) {
		if en, ok := s.ctx.World.Enemies.Get(id); ok && en.Alive {
			s.ctx.Visuals.SetScale(id, components.PartRoot, mgl64.Vec3{1, 1, 1})
		}
	})
}

func growlInterval(rng *vmath.FastRand) time.Duration {
	return rng.Duration(constants.ZombieGrowlMin, constants.ZombieGrowlJitter)
}
