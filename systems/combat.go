package systems

import (
	"math"
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

// CombatSystem animates the axe swing, samples the blade path and resolves hits when the swing ends
type CombatSystem struct {
	ctx        *engine.GameContext
	population *PopulationSystem

	swing components.Swing

	statSwings *atomic.Int64
	statHits   *atomic.Int64
}

// NewCombatSystem creates a combat system; kills are handed to the population manager
func NewCombatSystem(ctx *engine.GameContext, population *PopulationSystem) *CombatSystem {
	return &CombatSystem{
		ctx:        ctx,
		population: population,
		statSwings: ctx.Status.Counter(status.SwingsStarted),
		statHits:   ctx.Status.Counter(status.HitsLanded),
	}
}

// Priority returns the system's priority
func (s *CombatSystem) Priority() int {
	return constants.PriorityCombat
}

// Swinging reports whether a swing is in progress
func (s *CombatSystem) Swinging() bool {
	return s.swing.Active
}

// HitZones returns the samples of the current or last swing
func (s *CombatSystem) HitZones() []components.HitZone {
	return s.swing.HitZones
}

// StartSwing begins a swing; no-op returning false while one is active or the player is dead
func (s *CombatSystem) StartSwing(now time.Time) bool {
	if s.swing.Active || !s.ctx.Session.Alive() {
		return false
	}

	s.ctx.Audio.Play(service.CueSwing)

	rest, ok := s.ctx.Visuals.Rotation(components.PlayerID, components.PartWeapon)
	if !ok {
		rest = mgl64.Vec3{constants.WeaponRestPitch, 0, 0}
	}

	s.swing = components.Swing{
		Active:       true,
		Start:        now,
		Duration:     constants.AxeSwingDuration,
		RestRotation: rest,
		HitZones:     s.swing.HitZones[:0],
	}
	s.sample(now)
	s.statSwings.Add(1)
	return true
}

// Update advances the active swing by one sample and resolves it once finished
func (s *CombatSystem) Update(now time.Time, dt time.Duration) {
	if !s.swing.Active {
		return
	}
	s.sample(now)

	if now.Sub(s.swing.Start) < s.swing.Duration {
		return
	}

	s.ctx.Visuals.SetRotation(components.PlayerID, components.PartWeapon, s.swing.RestRotation)
	s.swing.Active = false
	s.resolveHits(now)
}

// sample poses the weapon for the elapsed time and records the blade position
// Repeated calls at the same elapsed time record nothing
func (s *CombatSystem) sample(now time.Time) {
	elapsed := now.Sub(s.swing.Start)
	if s.swing.Sampled && elapsed == s.swing.LastSample {
		return
	}

	pose := SwingPose(s.swing.RestRotation, s.swing.Progress(elapsed))
	s.ctx.Visuals.SetRotation(components.PlayerID, components.PartWeapon, pose)

	pos, ok := s.ctx.Visuals.PartWorldPosition(components.PlayerID, components.PartBlade)
	if !ok {
		pos = s.ctx.Session.Player.Position
	}
	s.swing.HitZones = append(s.swing.HitZones, components.HitZone{Position: pos, Elapsed: elapsed})
	s.swing.LastSample = elapsed
	s.swing.Sampled = true
}

func (s *CombatSystem) resolveHits(now time.Time) {
	zones := s.swing.HitZones
	if len(zones) == 0 {
		return
	}

	s.ctx.World.Enemies.Each(func(e *components.Enemy) {
		if !e.Alive {
			return
		}
		body, ok := s.ctx.Visuals.PartWorldPosition(e.ID, components.PartBody)
		if !ok {
			body = e.Position.Add(mgl64.Vec3{0, constants.ZombieBodyHeight, 0})
		}
		if SwingHits(zones, body) {
			s.hit(e, now)
		}
	})
}

func (s *CombatSystem) hit(e *components.Enemy, now time.Time) {
	s.ctx.Audio.Play(service.CueHit)
	e.Health -= constants.AxeDamage
	s.statHits.Add(1)

	id := e.ID
	scale, ok := s.ctx.Visuals.Scale(id, components.PartRoot)
	if !ok {
		scale = mgl64.Vec3{1, 1, 1}
	}
	color, ok := s.ctx.Visuals.Color(id, components.PartBody)
	if !ok {
		color = constants.ZombieBodyColor
	}
	s.ctx.Visuals.SetScale(id, components.PartRoot, scale.Mul(constants.HitShrink))
	s.ctx.Visuals.SetColor(id, components.PartBody, constants.ZombieHitColor)

	s.ctx.Scheduler.After(now, constants.HitFlashDuration, id, func(time.Time) {
		if en, ok := s.ctx.World.Enemies.Get(id); ok && en.Alive {
			s.ctx.Visuals.SetScale(id, components.PartRoot, scale)
			s.ctx.Visuals.SetColor(id, components.PartBody, color)
		}
	})

	s.ctx.Logger.Debug().Uint64("enemy", uint64(id)).Int("health", e.Health).Msg("enemy hit")

	if e.Health <= 0 {
		s.population.Kill(e, now)
	}
}

// SwingPose is the weapon rotation at swing progress p in [0, 1]
// The first half sweeps pitch through π, the second half returns; roll peaks mid-phase
func SwingPose(rest mgl64.Vec3, p float64) mgl64.Vec3 {
	pose := rest
	if p < 0.5 {
		t := p * 2
		pose[0] = rest[0] + math.Pi*t
		pose[2] = math.Sin(t*math.Pi) * constants.AxeSwingTilt
	} else {
		q := (p - 0.5) * 2
		pose[0] = rest[0] + math.Pi - math.Pi*q
		pose[2] = math.Sin((1-q)*math.Pi) * constants.AxeSwingTilt
	}
	return pose
}

// SwingHits reports whether any sampled zone is within reach of target
// Reach is horizontal distance under AxeRange with a vertical gap under AxeVerticalReach
func SwingHits(zones []components.HitZone, target mgl64.Vec3) bool {
	for _, z := range zones {
		if vmath.HorizontalDistance(z.Position, target) < constants.AxeRange &&
			math.Abs(z.Position[1]-target[1]) < constants.AxeVerticalReach {
			return true
		}
	}
	return false
}
