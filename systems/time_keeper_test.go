package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
)

func TestTimeKeeperAndMoon(t *testing.T) {
	h := newHarness(t, 5)
	h.ctx.AddSystem(NewTimeKeeperSystem(h.ctx))
	h.ctx.AddSystem(NewSkySystem(h.ctx))

	h.step(61*time.Second + 500*time.Millisecond)
	assert.Equal(t, 61, h.ctx.Session.GameTime)
	assert.Equal(t, "1:01", h.display.State().Time)

	moon, ok := h.graph.Position(components.MoonID, components.PartRoot)
	assert.True(t, ok)
	assert.Equal(t, MoonPosition(61), moon)

	// Both freeze at game over
	h.ctx.Session.DamagePlayer(constants.MaxHealth, h.ctx.Now())
	h.step(30 * time.Second)
	assert.Equal(t, 61, h.ctx.Session.GameTime)
	moon, _ = h.graph.Position(components.MoonID, components.PartRoot)
	assert.Equal(t, MoonPosition(61), moon)
}

func TestMoonPosition(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{constants.MoonOrbitRadius, constants.MoonBaseHeight, 0}, MoonPosition(0))

	p := MoonPosition(3600)
	assert.InDelta(t, constants.MoonOrbitRadius, mgl64.Vec2{p[0], p[2]}.Len(), 1e-9)
	assert.Greater(t, p[1], constants.MoonBaseHeight)
}
