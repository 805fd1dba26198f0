package systems

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/service"
	"github.com/lixenwraith/deadwood/status"
)

func TestDecideAction(t *testing.T) {
	reach := constants.ZombieAttackRange + constants.ZombieAttackSlack
	cases := []struct {
		distance float64
		want     components.EnemyAction
	}{
		{0, components.ActionAttack},
		{1.0, components.ActionAttack},
		{reach, components.ActionAttack},
		{math.Nextafter(reach, math.Inf(1)), components.ActionPursue},
		{30, components.ActionPursue},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DecideAction(tc.distance, constants.ZombieAttackRange), "distance %v", tc.distance)
	}
}

func TestAIPursuesAndFacesPlayer(t *testing.T) {
	h := newHarness(t, 7)
	h.ctx.AddSystem(NewAISystem(h.ctx))
	e := h.addEnemy(mgl64.Vec3{0, 0, -10})

	h.step(100 * time.Millisecond)

	assert.InDelta(t, -10+constants.ZombieSpeed*0.1, e.Position[2], 1e-9)
	assert.InDelta(t, 0, e.Position[0], 1e-12)
	assert.InDelta(t, 0, e.Yaw, 1e-12)
	assert.Equal(t, 1, h.audio.Count(service.CueGrowl))

	proxy, ok := h.graph.Position(e.ID, components.PartRoot)
	require.True(t, ok)
	assert.Equal(t, e.Position, proxy)

	// Next growl waits for the freshly drawn interval
	assert.GreaterOrEqual(t, e.GrowlInterval, constants.ZombieGrowlMin)
	assert.Less(t, e.GrowlInterval, constants.ZombieGrowlMin+constants.ZombieGrowlJitter)
	h.step(100 * time.Millisecond)
	assert.Equal(t, 1, h.audio.Count(service.CueGrowl))
}

func TestAIOutOfDetectionRangeIsSilent(t *testing.T) {
	h := newHarness(t, 7)
	h.ctx.AddSystem(NewAISystem(h.ctx))
	h.addEnemy(mgl64.Vec3{50, 0, 0})

	h.step(100 * time.Millisecond)
	assert.Zero(t, h.audio.Count(service.CueGrowl))
}

func TestAIAttackCooldownAndPulse(t *testing.T) {
	h := newHarness(t, 7)
	h.ctx.AddSystem(NewAISystem(h.ctx))
	e := h.addEnemy(mgl64.Vec3{0, 0, -1})

	h.step(frameStep)
	assert.Equal(t, 85, h.ctx.Session.Player.Health)
	scale, _ := h.graph.Scale(e.ID, components.PartRoot)
	assert.Equal(t, mgl64.Vec3{constants.AttackPulseXZ, constants.AttackPulseY, constants.AttackPulseXZ}, scale)
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, e.Position, "an attacking enemy holds position")

	h.step(constants.AttackPulseDuration)
	scale, _ = h.graph.Scale(e.ID, components.PartRoot)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, scale)

	// Cooldown is strict: exactly 1.5s later is still too soon
	h.step(constants.ZombieAttackCooldown - constants.AttackPulseDuration)
	assert.Equal(t, 85, h.ctx.Session.Player.Health)

	h.step(time.Millisecond)
	assert.Equal(t, 70, h.ctx.Session.Player.Health)
	assert.Equal(t, 2, h.audio.Count(service.CueDamage))
}

func TestAIHaltsAfterGameOver(t *testing.T) {
	h := newHarness(t, 7)
	h.ctx.AddSystem(NewAISystem(h.ctx))
	e := h.addEnemy(mgl64.Vec3{0, 0, -10})

	h.ctx.Session.DamagePlayer(constants.MaxHealth, h.ctx.Now())
	h.step(100 * time.Millisecond)

	assert.Equal(t, mgl64.Vec3{0, 0, -10}, e.Position)
	assert.Zero(t, h.audio.Count(service.CueGrowl))
}

func TestAIStopsOnceAnAttackEndsTheGame(t *testing.T) {
	h := newHarness(t, 7)
	h.ctx.AddSystem(NewAISystem(h.ctx))
	h.ctx.Session.Player.Health = constants.ZombieDamage

	killer := h.addEnemy(mgl64.Vec3{0, 0, -1})
	second := h.addEnemy(mgl64.Vec3{1, 0, 0})
	walker := h.addEnemy(mgl64.Vec3{0, 0, 10})

	h.step(frameStep)

	require.True(t, h.ctx.Session.IsOver())
	assert.False(t, killer.LastAttack.IsZero())

	// Enemies later in the same pass do nothing
	assert.True(t, second.LastAttack.IsZero())
	scale, _ := h.graph.Scale(second.ID, components.PartRoot)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, scale)
	assert.Equal(t, mgl64.Vec3{0, 0, 10}, walker.Position)
	assert.Equal(t, 1, h.audio.Count(service.CueGrowl))
	assert.Equal(t, 1, h.audio.Count(service.CueDamage))

	assert.Equal(t, int64(constants.ZombieDamage), h.ctx.Status.Counter(status.PlayerDamage).Load())
}

func TestAIDamageMetricCountsDealtOnly(t *testing.T) {
	h := newHarness(t, 7)
	h.ctx.AddSystem(NewAISystem(h.ctx))
	h.ctx.Session.Player.Health = 10
	h.addEnemy(mgl64.Vec3{0, 0, -1})

	h.step(frameStep)
	assert.Equal(t, int64(10), h.ctx.Status.Counter(status.PlayerDamage).Load())
}

func TestAIPursuitNeverEntersObstacles(t *testing.T) {
	h := newHarness(t, 7)
	h.ctx.World.Obstacles.Add(components.Obstacle{X: 0, Z: -5, Radius: constants.TreeRadius, Kind: components.ObstacleTree})
	h.ctx.AddSystem(NewAISystem(h.ctx))
	e := h.addEnemy(mgl64.Vec3{0.2, 0, -10})

	minDist := constants.TreeRadius + constants.ZombieRadius
	for i := 0; i < 200; i++ {
		h.step(50 * time.Millisecond)
		if !h.ctx.Session.Alive() {
			break
		}
		d := math.Hypot(e.Position[0], e.Position[2]+5)
		require.GreaterOrEqual(t, d, minDist-1e-9, "frame %d at %v", i, e.Position)
	}
}
