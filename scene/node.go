package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Node is one transform in the scene graph
// Rotation is Euler XYZ in radians, applied as Rx·Ry·Rz
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
	Color    uint32

	parent   *Node
	children []*Node
}

func newNode(name string) *Node {
	return &Node{Name: name, Scale: mgl64.Vec3{1, 1, 1}}
}

// attach adds child under n
func (n *Node) attach(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Local returns the node's transform relative to its parent: T·Rx·Ry·Rz·S
func (n *Node) Local() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := mgl64.HomogRotate3DX(n.Rotation[0]).
		Mul4(mgl64.HomogRotate3DY(n.Rotation[1])).
		Mul4(mgl64.HomogRotate3DZ(n.Rotation[2]))
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// World returns the node's transform in world space
func (n *Node) World() mgl64.Mat4 {
	m := n.Local()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Local().Mul4(m)
	}
	return m
}

// WorldPosition is the node's origin in world space
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.World().Col(3).Vec3()
}
