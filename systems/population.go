package systems

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/engine"
	"github.com/lixenwraith/deadwood/status"
	"github.com/lixenwraith/deadwood/vmath"
)

// PopulationSystem spawns enemies around the player and retires the dead
type PopulationSystem struct {
	ctx *engine.GameContext

	seeded    bool
	nextSpawn time.Time

	statSpawned  *atomic.Int64
	statRejected *atomic.Int64
	statRemoved  *atomic.Int64
	statKills    *atomic.Int64
}

// NewPopulationSystem creates a population manager; the initial wave spawns on the first update
func NewPopulationSystem(ctx *engine.GameContext) *PopulationSystem {
	return &PopulationSystem{
		ctx:          ctx,
		nextSpawn:    ctx.Session.StartTime.Add(constants.ZombieSpawnInterval),
		statSpawned:  ctx.Status.Counter(status.EnemiesSpawned),
		statRejected: ctx.Status.Counter(status.SpawnsRejected),
		statRemoved:  ctx.Status.Counter(status.EnemiesRemoved),
		statKills:    ctx.Status.Counter(status.Kills),
	}
}

// Priority returns the system's priority
func (s *PopulationSystem) Priority() int {
	return constants.PriorityPopulation
}

// Update runs the initial wave once, then one spawn attempt each time the timer is due while under the cap.
// The timer re-arms from the current frame, so a long clock jump yields a single attempt.
func (s *PopulationSystem) Update(now time.Time, dt time.Duration) {
	if !s.seeded {
		s.seeded = true
		for i := 0; i < constants.ZombieCount; i++ {
			s.Spawn(now)
		}
	}

	if now.Before(s.nextSpawn) {
		return
	}
	s.nextSpawn = now.Add(constants.ZombieSpawnInterval)
	if s.ctx.Session.Alive() && s.ctx.World.Enemies.AliveCount() < constants.ZombieCap {
		s.Spawn(now)
	}
}

// Spawn makes one attempt to place an enemy on a ring around the player
// Points too close to the arena edge are dropped rather than retried
func (s *PopulationSystem) Spawn(now time.Time) (*components.Enemy, bool) {
	if !s.ctx.Session.Alive() {
		return nil, false
	}

	rng := s.ctx.Rand
	angle := rng.Angle()
	dist := rng.Range(constants.ZombieSpawnDistance, constants.ZombieSpawnJitter)
	origin := s.ctx.Session.Player.Position
	pos := mgl64.Vec3{
		origin[0] + math.Cos(angle)*dist,
		0,
		origin[2] + math.Sin(angle)*dist,
	}

	if vmath.RadialDistance(pos) >= constants.WorldRadius-constants.ZombieSpawnMargin {
		s.statRejected.Add(1)
		s.ctx.Logger.Debug().Float64("x", pos[0]).Float64("z", pos[2]).Msg("spawn rejected near edge")
		return nil, false
	}

	store := s.ctx.World.Enemies
	e := &components.Enemy{
		ID:             store.NextID(),
		Position:       pos,
		Health:         constants.ZombieHealth,
		Alive:          true,
		GrowlInterval:  growlInterval(rng),
		DetectionRange: constants.ZombieDetectionRange,
		AttackRange:    constants.ZombieAttackRange,
	}
	store.Add(e)

	s.ctx.Visuals.Create(e.ID, components.VisualZombie)
	s.ctx.Visuals.SetPosition(e.ID, components.PartRoot, e.Position)

	s.statSpawned.Add(1)
	s.ctx.Logger.Debug().Uint64("enemy", uint64(e.ID)).Float64("x", pos[0]).Float64("z", pos[2]).Msg("enemy spawned")
	return e, true
}

// Kill marks the enemy dead, credits the kill and starts the fall animation
// Killing an already dead enemy is a no-op
func (s *PopulationSystem) Kill(e *components.Enemy, now time.Time) {
	if !e.Alive {
		return
	}
	e.Alive = false
	s.ctx.Session.AddKill()
	s.statKills.Add(1)
	s.ctx.Logger.Debug().Uint64("enemy", uint64(e.ID)).Int("kills", s.ctx.Session.Kills).Msg("enemy killed")

	s.ctx.Scheduler.After(now, constants.DeathFallInterval, e.ID, s.fallStep(e.ID))
}

func (s *PopulationSystem) fallStep(id components.EntityID) engine.Task {
	return func(now time.Time) {
		e, ok := s.ctx.World.Enemies.Get(id)
		if !ok || e.Removed {
			return
		}

		e.FallProgress += constants.DeathFallStep
		p := e.FallProgress

		s.ctx.Visuals.SetRotation(id, components.PartRoot, mgl64.Vec3{p * math.Pi / 2, e.Yaw, 0})
		pos := e.Position
		pos[1] = math.Max(0, 1-p)
		s.ctx.Visuals.SetPosition(id, components.PartRoot, pos)
		scale, ok := s.ctx.Visuals.Scale(id, components.PartRoot)
		if !ok {
			scale = mgl64.Vec3{1, 1, 1}
		}
		scale[0] = math.Max(constants.DeathMinWidth, 1-p*constants.DeathWidthShrink)
		s.ctx.Visuals.SetScale(id, components.PartRoot, scale)

		if p >= 1 {
			s.ctx.Scheduler.After(now, constants.CorpseLinger, id, func(time.Time) {
				s.Remove(id)
			})
			return
		}
		s.ctx.Scheduler.After(now, constants.DeathFallInterval, id, s.fallStep(id))
	}
}

// Remove retires an enemy record, its pending tasks and its proxy
func (s *PopulationSystem) Remove(id components.EntityID) bool {
	if !s.ctx.World.Enemies.Remove(id) {
		return false
	}
	s.ctx.Scheduler.CancelOwner(id)
	s.ctx.Visuals.Destroy(id)
	s.statRemoved.Add(1)
	return true
}
