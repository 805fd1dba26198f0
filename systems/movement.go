package systems

import (
	"time"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/engine"
	"github.com/lixenwraith/deadwood/service"
	"github.com/lixenwraith/deadwood/vmath"
)

// MovementSystem moves the player from thumbstick input relative to the camera heading
type MovementSystem struct {
	ctx *engine.GameContext
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(ctx *engine.GameContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update applies each source's stick in turn; every source is resolved against the world separately
func (s *MovementSystem) Update(now time.Time, dt time.Duration) {
	session := s.ctx.Session
	if !session.Alive() || !s.ctx.Input.Presenting() {
		return
	}
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}

	player := &session.Player
	moved := false

	for _, src := range s.ctx.Input.Sources() {
		x, z, ok := StickAxes(src)
		if !ok {
			continue
		}
		x = vmath.ApplyDeadzone(x, constants.InputDeadzone)
		z = vmath.ApplyDeadzone(z, constants.InputDeadzone)
		if x == 0 && z == 0 {
			continue
		}

		forward := vmath.Flat(s.ctx.Visuals.CameraForward())
		if forward.Len() == 0 {
			continue
		}
		forward = forward.Normalize()
		right := forward.Cross(vmath.Up)

		step := player.Speed * secs
		disp := forward.Mul(-z * step).Add(right.Mul(x * step))
		player.Position = s.ctx.Resolver.Resolve(player.Position, disp, player.Radius)
		moved = true
	}

	if moved {
		s.ctx.Visuals.SetPosition(components.PlayerID, components.PartRoot, player.Position)
	}
}

// StickAxes picks the stick pair a source drives movement with
// Left-handed sources use axes 2 and 3 (missing reads as 0); others use 0 and 1
// only when they expose no third axis. ok is false for sources that do not move the player
func StickAxes(src service.InputSource) (x, z float64, ok bool) {
	axes := src.Axes
	if len(axes) < 2 {
		return 0, 0, false
	}
	if src.Handedness == service.HandLeft {
		return axisAt(axes, 2), axisAt(axes, 3), true
	}
	if len(axes) > 2 {
		return 0, 0, false
	}
	return axes[0], axes[1], true
}

func axisAt(axes []float64, i int) float64 {
	if i < len(axes) {
		return axes[i]
	}
	return 0
}
