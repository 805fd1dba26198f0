package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/vmath"
)

// view projects ground positions onto map cells, heading up
type view struct {
	origin  mgl64.Vec3
	forward mgl64.Vec3
	right   mgl64.Vec3
	frame   frame
}

func newView(origin mgl64.Vec3, yaw float64, f frame) view {
	forward := vmath.ForwardFromYaw(yaw)
	return view{
		origin:  vmath.Flat(origin),
		forward: forward,
		right:   forward.Cross(vmath.Up),
		frame:   f,
	}
}

// cell returns the map cell for a ground position and whether it is on the map
func (v view) cell(p mgl64.Vec3) (int, int, bool) {
	d := vmath.Flat(p).Sub(v.origin)
	x := v.frame.centerX + int(math.Round(d.Dot(v.right)*constants.CellsPerUnit))
	y := v.frame.centerY - int(math.Round(d.Dot(v.forward)*constants.CellsPerUnit*constants.CellAspect))
	ok := x >= 0 && x < v.frame.width && y >= v.frame.mapTop && y < v.frame.mapBottom
	return x, y, ok
}

// ground returns the world position under a map cell
func (v view) ground(x, y int) mgl64.Vec3 {
	across := float64(x-v.frame.centerX) / constants.CellsPerUnit
	ahead := float64(v.frame.centerY-y) / (constants.CellsPerUnit * constants.CellAspect)
	return v.origin.Add(v.right.Mul(across)).Add(v.forward.Mul(ahead))
}

// drawArena draws the ground, the arena edge, obstacles, zombies and the player
func (r *Renderer) drawArena(ctx frame) {
	player, ok := r.scene.Position(components.PlayerID, components.PartRoot)
	if !ok {
		player = mgl64.Vec3{}
	}
	v := newView(player, r.scene.Yaw(), ctx)

	groundBg := Hex(constants.GroundColor)
	if r.hud.flash {
		groundBg = Hex(constants.FlashColor)
	}
	ground := tcell.StyleDefault.Background(groundBg)
	outside := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbOutside)

	for y := ctx.mapTop; y < ctx.mapBottom; y++ {
		for x := 0; x < ctx.width; x++ {
			if vmath.RadialDistance(v.ground(x, y)) >= constants.WorldRadius {
				r.screen.SetContent(x, y, '░', nil, outside)
			} else {
				r.screen.SetContent(x, y, ' ', nil, ground)
			}
		}
	}

	r.enemies = 0
	for _, s := range r.sprites() {
		if s.kind == components.VisualZombie && r.upright(s.id) {
			r.enemies++
		}
		x, y, ok := v.cell(s.world)
		if !ok {
			continue
		}
		glyph, color := r.glyph(s)
		r.screen.SetContent(x, y, glyph, nil, ground.Foreground(color))
	}

	r.screen.SetContent(ctx.centerX, ctx.centerY, '@', nil, ground.Foreground(RgbPlayer).Bold(true))
}

// upright reports whether a zombie is standing; falling corpses pitch forward
func (r *Renderer) upright(id components.EntityID) bool {
	rot, ok := r.scene.Rotation(id, components.PartRoot)
	return !ok || rot.X() == 0
}

func (r *Renderer) glyph(s sprite) (rune, tcell.Color) {
	switch s.kind {
	case components.VisualZombie:
		color := uint32(constants.ZombieBodyColor)
		if c, ok := r.scene.Color(s.id, components.PartBody); ok {
			color = c
		}
		if r.upright(s.id) {
			return 'Z', Hex(color)
		}
		return 'z', Hex(color)
	case components.VisualTree:
		return 'T', Hex(constants.TreeColor)
	case components.VisualGrave:
		return '+', Hex(constants.GraveColor)
	case components.VisualRock:
		return 'o', Hex(constants.RockColor)
	default:
		return '?', RgbStatusDim
	}
}
