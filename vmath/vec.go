package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis; gameplay happens on the XZ plane
var Up = mgl64.Vec3{0, 1, 0}

// Flat drops the vertical component
func Flat(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// HorizontalDistance is the distance between a and b on the XZ plane
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a[0]-b[0], a[2]-b[2])
}

// RadialDistance is the horizontal distance from the world origin
func RadialDistance(p mgl64.Vec3) float64 {
	return math.Hypot(p[0], p[2])
}

// HorizontalDirection returns the unit XZ vector from a to b and the distance between them
// Coincident points yield a zero vector
func HorizontalDirection(from, to mgl64.Vec3) (mgl64.Vec3, float64) {
	d := Flat(to.Sub(from))
	l := d.Len()
	if l == 0 {
		return mgl64.Vec3{}, 0
	}
	return d.Mul(1 / l), l
}

// YawTowards is the heading that turns local +Z onto the XZ direction dir
func YawTowards(dir mgl64.Vec3) float64 {
	return math.Atan2(dir[0], dir[2])
}

// ForwardFromYaw is the horizontal look direction for a camera with the given yaw
// Yaw zero looks down -Z
func ForwardFromYaw(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
}

// ApplyDeadzone zeroes an axis value whose magnitude is below the threshold
func ApplyDeadzone(v, threshold float64) float64 {
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
