package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/world"
)

// Resolver moves circular actors on the XZ plane against the arena edge and static obstacles
// Pure: it reads the world and returns a new position
type Resolver struct {
	arena     world.Arena
	obstacles *world.ObstacleRegistry
}

// NewResolver creates a resolver bound to a world's arena and obstacles
func NewResolver(arena world.Arena, obstacles *world.ObstacleRegistry) *Resolver {
	return &Resolver{arena: arena, obstacles: obstacles}
}

// Resolve applies displacement to pos, then clamps to the arena and pushes out of obstacles
// There is no sub-stepping; per-frame displacement is bounded by speed * MaxFrameDelta
func (r *Resolver) Resolve(pos, displacement mgl64.Vec3, radius float64) mgl64.Vec3 {
	next := pos.Add(displacement)
	next = r.ClampToArena(next, radius)
	next = r.PushOut(next, radius)
	return next
}

// ClampToArena projects a position lying beyond radius from the edge back onto the
// boundary circle along the same angle from the centre
func (r *Resolver) ClampToArena(p mgl64.Vec3, radius float64) mgl64.Vec3 {
	maxR := r.arena.Radius - radius
	d := math.Hypot(p[0], p[2])
	if d <= maxR {
		return p
	}
	angle := math.Atan2(p[2], p[0])
	return mgl64.Vec3{math.Cos(angle) * maxR, p[1], math.Sin(angle) * maxR}
}

// PushOut visits obstacles in registry order and pushes the circle straight out of
// each one it overlaps by the penetration depth plus PushEpsilon
// Pushes are sequential and not re-checked against earlier obstacles
func (r *Resolver) PushOut(p mgl64.Vec3, radius float64) mgl64.Vec3 {
	for _, o := range r.obstacles.All() {
		p = pushFrom(p, radius, o)
	}
	return p
}

func pushFrom(p mgl64.Vec3, radius float64, o components.Obstacle) mgl64.Vec3 {
	dx := p[0] - o.X
	dz := p[2] - o.Z
	d := math.Hypot(dx, dz)
	minDist := radius + o.Radius
	if d >= minDist {
		return p
	}
	if d == 0 {
		// Coincident centres have no direction; push along +X
		return mgl64.Vec3{o.X + minDist + constants.PushEpsilon, p[1], o.Z}
	}
	push := minDist - d + constants.PushEpsilon
	return mgl64.Vec3{p[0] + dx/d*push, p[1], p[2] + dz/d*push}
}
