package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

type PartKind int

const (
	PartBox PartKind = iota
	PartCylinder
	PartSphere
)

// MeshPart is one primitive of a model, positioned in the owner's local space.
type MeshPart struct {
	Name   string
	Kind   PartKind
	Offset mgl64.Vec3
	// Size is width/height/depth for boxes. Cylinders use Radius and Size[1] as height.
	Size     mgl64.Vec3
	Radius   float64
	Segments int
	// RotZ rotates the part about its local Z axis before the offset is applied.
	RotZ     float64
	Color    color.NRGBA
	Emissive color.NRGBA
}

type Mesh struct {
	Parts []MeshPart
}

var MeshComponent = NewComponent[Mesh]()
