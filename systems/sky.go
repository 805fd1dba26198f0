package systems

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/engine"
)

// SkySystem moves the moon along its orbit as the session clock advances
type SkySystem struct {
	ctx *engine.GameContext
}

func NewSkySystem(ctx *engine.GameContext) *SkySystem {
	return &SkySystem{ctx: ctx}
}

func (s *SkySystem) Priority() int {
	return constants.PrioritySky
}

func (s *SkySystem) Update(now time.Time, dt time.Duration) {
	s.ctx.Visuals.SetPosition(components.MoonID, components.PartRoot, MoonPosition(s.ctx.Session.GameTime))
}

// MoonPosition is the moon's world position after the given whole seconds of play
func MoonPosition(seconds int) mgl64.Vec3 {
	a := float64(seconds) * constants.MoonAngularRate
	return mgl64.Vec3{
		math.Cos(a) * constants.MoonOrbitRadius,
		constants.MoonBaseHeight + math.Sin(a*0.5)*constants.MoonBob,
		math.Sin(a) * constants.MoonOrbitRadius,
	}
}
