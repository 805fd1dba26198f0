// Package scene is an in-process scene graph standing in for a 3D engine.
// Every world object is a proxy with a root node and optional named parts
// whose world transforms are resolved on demand.
package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/vmath"
)

// Object is the proxy for one entity
type Object struct {
	ID    components.EntityID
	Kind  components.VisualKind
	Root  *Node
	parts map[string]*Node
}

// Part returns a named part; the empty name is the root
func (o *Object) Part(name string) (*Node, bool) {
	if name == components.PartRoot {
		return o.Root, true
	}
	n, ok := o.parts[name]
	return n, ok
}

// Graph implements service.Visuals
// Readers on other goroutines (the status bar) go through the same lock as the frame loop
type Graph struct {
	mu      sync.RWMutex
	objects map[components.EntityID]*Object
	yaw     float64
}

// NewGraph creates an empty scene
func NewGraph() *Graph {
	return &Graph{objects: make(map[components.EntityID]*Object)}
}

// Create builds the proxy shape for kind; re-creating an id replaces it
func (g *Graph) Create(id components.EntityID, kind components.VisualKind) {
	obj := build(id, kind)
	g.mu.Lock()
	if kind == components.VisualPlayer {
		obj.Root.Rotation[1] = g.yaw
	}
	g.objects[id] = obj
	g.mu.Unlock()
}

// Destroy drops the proxy; unknown ids are ignored
func (g *Graph) Destroy(id components.EntityID) {
	g.mu.Lock()
	delete(g.objects, id)
	g.mu.Unlock()
}

// Len returns the number of live proxies
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.objects)
}

// Has reports whether a proxy exists for id
func (g *Graph) Has(id components.EntityID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.objects[id]
	return ok
}

// Each visits every proxy root in unspecified order; fn must not mutate the graph
func (g *Graph) Each(fn func(id components.EntityID, kind components.VisualKind, world mgl64.Vec3)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for id, o := range g.objects {
		fn(id, o.Kind, o.Root.WorldPosition())
	}
}

func (g *Graph) node(id components.EntityID, part string) (*Node, bool) {
	o, ok := g.objects[id]
	if !ok {
		return nil, false
	}
	return o.Part(part)
}

func (g *Graph) Position(id components.EntityID, part string) (mgl64.Vec3, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.node(id, part); ok {
		return n.Position, true
	}
	return mgl64.Vec3{}, false
}

func (g *Graph) SetPosition(id components.EntityID, part string, p mgl64.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.node(id, part); ok {
		n.Position = p
	}
}

func (g *Graph) Rotation(id components.EntityID, part string) (mgl64.Vec3, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.node(id, part); ok {
		return n.Rotation, true
	}
	return mgl64.Vec3{}, false
}

func (g *Graph) SetRotation(id components.EntityID, part string, r mgl64.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.node(id, part); ok {
		n.Rotation = r
	}
}

func (g *Graph) Scale(id components.EntityID, part string) (mgl64.Vec3, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.node(id, part); ok {
		return n.Scale, true
	}
	return mgl64.Vec3{}, false
}

func (g *Graph) SetScale(id components.EntityID, part string, s mgl64.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.node(id, part); ok {
		n.Scale = s
	}
}

func (g *Graph) Color(id components.EntityID, part string) (uint32, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.node(id, part); ok {
		return n.Color, true
	}
	return 0, false
}

func (g *Graph) SetColor(id components.EntityID, part string, rgb uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.node(id, part); ok {
		n.Color = rgb
	}
}

// PartWorldPosition resolves the part's origin through its parent chain
func (g *Graph) PartWorldPosition(id components.EntityID, part string) (mgl64.Vec3, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.node(id, part); ok {
		return n.WorldPosition(), true
	}
	return mgl64.Vec3{}, false
}

// CameraForward is the horizontal look direction of the player's head
func (g *Graph) CameraForward() mgl64.Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return vmath.ForwardFromYaw(g.yaw)
}

// Yaw returns the current head yaw
func (g *Graph) Yaw() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.yaw
}

// Turn rotates the player's head about the vertical axis by delta radians
func (g *Graph) Turn(delta float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.yaw += delta
	if o, ok := g.objects[components.PlayerID]; ok {
		o.Root.Rotation[1] = g.yaw
	}
}
