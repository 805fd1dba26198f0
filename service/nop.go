package service

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
)

// NopAudio discards cues
type NopAudio struct{}

func (NopAudio) Play(Cue) {}

// NopDisplay discards HUD updates
type NopDisplay struct{}

func (NopDisplay) SetHealth(int, float64) {}
func (NopDisplay) SetKills(int) {}
func (NopDisplay) SetTime(string) {}
func (NopDisplay) SetDamageFlash(bool) {}
func (NopDisplay) ShowGameOver(int, string) {}

// NopPresenter renders nothing
type NopPresenter struct{}

func (NopPresenter) Present() {}

// NopInput never presents and has no sources
type NopInput struct{}

func (NopInput) Presenting() bool { return false }
func (NopInput) Sources() []InputSource { return nil }
func (NopInput) OnActivate(func()) {}

// NopVisuals has no proxies; every query misses
type NopVisuals struct{}

func (NopVisuals) Create(components.EntityID, components.VisualKind) {}
func (NopVisuals) Destroy(components.EntityID) {}
func (NopVisuals) Position(components.EntityID, string) (mgl64.Vec3, bool) {
	return mgl64.Vec3{}, false
}
func (NopVisuals) SetPosition(components.EntityID, string, mgl64.Vec3) {}
func (NopVisuals) Rotation(components.EntityID, string) (mgl64.Vec3, bool) {
	return mgl64.Vec3{}, false
}
func (NopVisuals) SetRotation(components.EntityID, string, mgl64.Vec3) {}
func (NopVisuals) Scale(components.EntityID, string) (mgl64.Vec3, bool) {
	return mgl64.Vec3{}, false
}
func (NopVisuals) SetScale(components.EntityID, string, mgl64.Vec3) {}
func (NopVisuals) Color(components.EntityID, string) (uint32, bool) {
	return 0, false
}
func (NopVisuals) SetColor(components.EntityID, string, uint32) {}
func (NopVisuals) PartWorldPosition(components.EntityID, string) (mgl64.Vec3, bool) {
	return mgl64.Vec3{}, false
}
func (NopVisuals) CameraForward() mgl64.Vec3 { return mgl64.Vec3{0, 0, -1} }
