package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
)

// build assembles the node tree for a visual kind
func build(id components.EntityID, kind components.VisualKind) *Object {
	root := newNode("")
	obj := &Object{ID: id, Kind: kind, Root: root, parts: make(map[string]*Node)}

	switch kind {
	case components.VisualPlayer:
		// eye → controller → weapon → blade
		controller := root.attach(newNode("controller"))
		controller.Position = mgl64.Vec3{constants.ControllerOffsetX, constants.ControllerOffsetY, constants.ControllerOffsetZ}
		weapon := controller.attach(newNode(components.PartWeapon))
		weapon.Position = mgl64.Vec3{constants.WeaponOffsetX, constants.WeaponOffsetY, constants.WeaponOffsetZ}
		weapon.Rotation = mgl64.Vec3{constants.WeaponRestPitch, 0, 0}
		weapon.Color = constants.HandleColor
		blade := weapon.attach(newNode(components.PartBlade))
		blade.Position = mgl64.Vec3{0, constants.BladeOffsetY, 0}
		blade.Color = constants.BladeColor
		obj.parts["controller"] = controller
		obj.parts[components.PartWeapon] = weapon
		obj.parts[components.PartBlade] = blade

	case components.VisualZombie:
		body := root.attach(newNode(components.PartBody))
		body.Position = mgl64.Vec3{0, constants.ZombieBodyHeight, 0}
		body.Color = constants.ZombieBodyColor
		head := root.attach(newNode(components.PartHead))
		head.Position = mgl64.Vec3{0, constants.ZombieHeadHeight, 0}
		head.Color = constants.ZombieHeadColor
		obj.parts[components.PartBody] = body
		obj.parts[components.PartHead] = head
		root.Color = constants.ZombieBodyColor

	case components.VisualTree:
		root.Color = constants.TreeColor
	case components.VisualGrave:
		root.Color = constants.GraveColor
	case components.VisualRock:
		root.Color = constants.RockColor
	case components.VisualMoon:
		root.Color = constants.MoonColor
	}
	return obj
}
