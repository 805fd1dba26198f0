package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/status"
	"github.com/lixenwraith/deadwood/vmath"
)

func TestSpawnRingAroundPlayer(t *testing.T) {
	h := newHarness(t, 11)
	pop := NewPopulationSystem(h.ctx)

	for i := 0; i < 100; i++ {
		e, ok := pop.Spawn(h.ctx.Now())
		require.True(t, ok, "spawns from the centre never reach the edge")
		d := vmath.HorizontalDistance(e.Position, h.ctx.Session.Player.Position)
		assert.GreaterOrEqual(t, d, constants.ZombieSpawnDistance)
		assert.Less(t, d, constants.ZombieSpawnDistance+constants.ZombieSpawnJitter)
		assert.Zero(t, e.Position[1])
		assert.True(t, h.graph.Has(e.ID))
	}
	assert.Equal(t, 100, h.ctx.World.Enemies.AliveCount())
}

func TestSpawnRejectsNearEdge(t *testing.T) {
	h := newHarness(t, 11)
	pop := NewPopulationSystem(h.ctx)
	h.ctx.Session.Player.Position = mgl64.Vec3{80, constants.PlayerHeight, 0}

	const attempts = 200
	spawned := 0
	for i := 0; i < attempts; i++ {
		if e, ok := pop.Spawn(h.ctx.Now()); ok {
			spawned++
			assert.Less(t, vmath.RadialDistance(e.Position), constants.WorldRadius-constants.ZombieSpawnMargin)
		}
	}
	rejected := int(h.ctx.Status.Counter(status.SpawnsRejected).Load())
	assert.Positive(t, rejected)
	assert.Positive(t, spawned)
	assert.Equal(t, attempts, spawned+rejected)
	assert.Equal(t, spawned, h.ctx.World.Enemies.Len())
}

func TestSpawnDeterministicPerSeed(t *testing.T) {
	positions := func(seed uint64) []mgl64.Vec3 {
		h := newHarness(t, seed)
		pop := NewPopulationSystem(h.ctx)
		var out []mgl64.Vec3
		for i := 0; i < 10; i++ {
			e, _ := pop.Spawn(h.ctx.Now())
			out = append(out, e.Position)
		}
		return out
	}
	assert.Equal(t, positions(42), positions(42))
	assert.NotEqual(t, positions(42), positions(43))
}

func TestSpawnNothingAfterGameOver(t *testing.T) {
	h := newHarness(t, 11)
	pop := NewPopulationSystem(h.ctx)
	h.ctx.Session.DamagePlayer(constants.MaxHealth, h.ctx.Now())

	_, ok := pop.Spawn(h.ctx.Now())
	assert.False(t, ok)
	assert.Zero(t, h.ctx.World.Enemies.Len())
}

func TestPopulationWaveAndInterval(t *testing.T) {
	h := newHarness(t, 11)
	h.ctx.AddSystem(NewPopulationSystem(h.ctx))

	h.step(frameStep)
	assert.Equal(t, constants.ZombieCount, h.ctx.World.Enemies.AliveCount())

	h.step(constants.ZombieSpawnInterval - 2*frameStep)
	assert.Equal(t, constants.ZombieCount, h.ctx.World.Enemies.AliveCount())

	h.step(frameStep)
	assert.Equal(t, constants.ZombieCount+1, h.ctx.World.Enemies.AliveCount())
}

func TestPopulationTimerSkipsMissedIntervals(t *testing.T) {
	h := newHarness(t, 11)
	h.ctx.AddSystem(NewPopulationSystem(h.ctx))
	h.step(frameStep)

	attempts := func() int64 {
		return h.ctx.Status.Counter(status.EnemiesSpawned).Load() +
			h.ctx.Status.Counter(status.SpawnsRejected).Load()
	}
	before := attempts()

	// Three and a half intervals in one frame
	h.step(3*constants.ZombieSpawnInterval + constants.ZombieSpawnInterval/2)
	assert.Equal(t, before+1, attempts())

	// Re-armed from that frame
	h.step(constants.ZombieSpawnInterval - frameStep)
	assert.Equal(t, before+1, attempts())
	h.step(frameStep)
	assert.Equal(t, before+2, attempts())
}

func TestPopulationCapCountsLivingOnly(t *testing.T) {
	h := newHarness(t, 11)
	pop := NewPopulationSystem(h.ctx)
	h.ctx.AddSystem(pop)

	h.step(frameStep)
	for h.ctx.World.Enemies.AliveCount() < constants.ZombieCap {
		pop.Spawn(h.ctx.Now())
	}

	h.step(constants.ZombieSpawnInterval)
	assert.Equal(t, constants.ZombieCap, h.ctx.World.Enemies.AliveCount(), "no spawn at the cap")

	var victim *components.Enemy
	h.ctx.World.Enemies.Each(func(e *components.Enemy) {
		if victim == nil {
			victim = e
		}
	})
	pop.Kill(victim, h.ctx.Now())
	require.Equal(t, constants.ZombieCap-1, h.ctx.World.Enemies.AliveCount())

	h.step(constants.ZombieSpawnInterval)
	assert.Equal(t, constants.ZombieCap, h.ctx.World.Enemies.AliveCount(), "a corpse frees its slot")
}

func TestKillAnimatesThenRemoves(t *testing.T) {
	h := newHarness(t, 11)
	pop := NewPopulationSystem(h.ctx)
	e := h.addEnemy(mgl64.Vec3{10, 0, 10})
	id := e.ID

	killedAt := h.ctx.Now()
	pop.Kill(e, killedAt)
	pop.Kill(e, killedAt)
	assert.False(t, e.Alive)
	assert.Equal(t, 1, h.ctx.Session.Kills, "a dead enemy cannot be killed twice")

	// One fall step per 16ms frame; progress passes 1 on the 17th
	const fallFrames = 17
	for i := 0; i < fallFrames-1; i++ {
		h.step(constants.DeathFallInterval)
	}
	assert.Less(t, e.FallProgress, 1.0)
	h.step(constants.DeathFallInterval)
	assert.GreaterOrEqual(t, e.FallProgress, 1.0)

	rot, _ := h.graph.Rotation(id, components.PartRoot)
	assert.InDelta(t, e.FallProgress*1.5707963267948966, rot[0], 1e-12)
	pos, _ := h.graph.Position(id, components.PartRoot)
	assert.Zero(t, pos[1])
	scale, _ := h.graph.Scale(id, components.PartRoot)
	assert.InDelta(t, 1-e.FallProgress*constants.DeathWidthShrink, scale[0], 1e-12)

	// Corpse lingers, then record and proxy go together
	h.step(constants.CorpseLinger - time.Millisecond)
	_, ok := h.ctx.World.Enemies.Get(id)
	assert.True(t, ok)
	assert.True(t, h.graph.Has(id))

	h.step(time.Millisecond)
	_, ok = h.ctx.World.Enemies.Get(id)
	assert.False(t, ok)
	assert.False(t, h.graph.Has(id))
	assert.Zero(t, h.ctx.Scheduler.PendingFor(id))
	assert.Equal(t, int64(1), h.ctx.Status.Counter(status.EnemiesRemoved).Load())
	assert.Equal(t, 1, h.ctx.Session.Kills)
}

func TestRemoveIsIdempotent(t *testing.T) {
	h := newHarness(t, 11)
	pop := NewPopulationSystem(h.ctx)
	e := h.addEnemy(mgl64.Vec3{10, 0, 10})

	assert.True(t, pop.Remove(e.ID))
	assert.False(t, pop.Remove(e.ID))
	assert.False(t, pop.Remove(99999))
}
