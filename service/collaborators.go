package service

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
)

// Cue names a sound effect
type Cue uint8

const (
	CueSwing Cue = iota
	CueHit
	CueGrowl
	CueDamage
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueSwing:
		return "swing"
	case CueHit:
		return "hit"
	case CueGrowl:
		return "growl"
	case CueDamage:
		return "damage"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Audio plays named cues; implementations must not block the caller
type Audio interface {
	Play(cue Cue)
}

// Display is the heads-up surface for session state
type Display interface {
	// SetHealth shows the numeric health and the bar fill in [0, 1]
	SetHealth(value int, fraction float64)
	SetKills(kills int)
	// SetTime shows the elapsed session time formatted as m:ss
	SetTime(text string)
	SetDamageFlash(on bool)
	ShowGameOver(kills int, survived string)
}

// Presenter renders a frame after the simulation step
type Presenter interface {
	Present()
}

// Handedness of an input source
type Handedness uint8

const (
	HandNone Handedness = iota
	HandLeft
	HandRight
)

// InputSource is one controller with its current axis values
type InputSource struct {
	Handedness Handedness
	Axes       []float64
}

// Input exposes controller state and the activate (trigger) event
type Input interface {
	// Presenting reports whether the immersive session is active; movement is read only then
	Presenting() bool
	Sources() []InputSource
	// OnActivate registers a handler fired on the trigger press
	OnActivate(fn func())
}

// Visuals is the scene collaborator holding proxies for world objects
// Rotation is Euler XYZ in radians
type Visuals interface {
	Create(id components.EntityID, kind components.VisualKind)
	Destroy(id components.EntityID)

	Position(id components.EntityID, part string) (mgl64.Vec3, bool)
	SetPosition(id components.EntityID, part string, p mgl64.Vec3)
	Rotation(id components.EntityID, part string) (mgl64.Vec3, bool)
	SetRotation(id components.EntityID, part string, r mgl64.Vec3)
	Scale(id components.EntityID, part string) (mgl64.Vec3, bool)
	SetScale(id components.EntityID, part string, s mgl64.Vec3)
	Color(id components.EntityID, part string) (uint32, bool)
	SetColor(id components.EntityID, part string, rgb uint32)

	// PartWorldPosition returns the world-space origin of a named part
	PartWorldPosition(id components.EntityID, part string) (mgl64.Vec3, bool)

	// CameraForward is the player's horizontal look direction
	CameraForward() mgl64.Vec3
}
