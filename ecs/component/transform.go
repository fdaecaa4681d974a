package component

import "github.com/go-gl/mathgl/mgl64"

// Up is the world's vertical axis; yaw rotates about it.
var Up = mgl64.Vec3{0, 1, 0}

// Transform is a world position plus a rotation about the vertical axis.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

// Orientation returns the yaw as a quaternion.
func (t Transform) Orientation() mgl64.Quat {
	return mgl64.QuatRotate(t.Yaw, Up)
}

// Rotate turns a local-space vector into world orientation (no translation).
func (t Transform) Rotate(local mgl64.Vec3) mgl64.Vec3 {
	return t.Orientation().Rotate(local)
}

// Apply maps a local-space point into world space.
func (t Transform) Apply(local mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotate(local))
}

var TransformComponent = NewComponent[Transform]()
