package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

type Fog struct {
	Color color.NRGBA
	Near  float64
	Far   float64
}

type Light struct {
	Color     color.NRGBA
	Intensity float64
	// Position is only meaningful for directional lights, which shine from it toward the origin.
	Position mgl64.Vec3
}

type Environment struct {
	ClearColor color.NRGBA
	Fog        Fog
	Ambient    Light
	Sun        Light
}

var EnvironmentComponent = NewComponent[Environment]()
