package component

import "github.com/go-gl/mathgl/mgl64"

type Camera struct {
	TargetName string
	// Offset is the ideal camera position in the target's local space.
	Offset     mgl64.Vec3
	LookHeight float64
	Smoothing  float64
	FOV        float64 // vertical, degrees
	Near       float64
	Far        float64
	Aspect     float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
}

var CameraComponent = NewComponent[Camera]()

// Viewport is the drawable surface size in pixels.
type Viewport struct {
	Width  int
	Height int
}

var ViewportComponent = NewComponent[Viewport]()
