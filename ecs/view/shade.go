package view

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs/component"
)

// Shade applies Lambert lighting: ambient plus one directional light shining from
// env.Sun.Position toward the origin, then adds the emissive colour.
func Shade(base, emissive color.NRGBA, normal mgl64.Vec3, env component.Environment) color.NRGBA {
	diffuse := 0.0
	if sun := env.Sun.Position; sun.Len() > 0 {
		diffuse = math.Max(0, normal.Dot(sun.Normalize()))
	}
	light := func(b, amb, sun, emi uint8) uint8 {
		v := unit(b)*(unit(amb)*env.Ambient.Intensity+unit(sun)*env.Sun.Intensity*diffuse) + unit(emi)
		return toByte(v)
	}
	return color.NRGBA{
		R: light(base.R, env.Ambient.Color.R, env.Sun.Color.R, emissive.R),
		G: light(base.G, env.Ambient.Color.G, env.Sun.Color.G, emissive.G),
		B: light(base.B, env.Ambient.Color.B, env.Sun.Color.B, emissive.B),
		A: base.A,
	}
}

// FogFactor is the linear fog amount at distance d: 0 before fog.Near, 1 past fog.Far.
func FogFactor(d float64, fog component.Fog) float64 {
	if fog.Far <= fog.Near {
		return 0
	}
	return mgl64.Clamp((d-fog.Near)/(fog.Far-fog.Near), 0, 1)
}

// Fogged blends c toward the fog colour for an object at distance d. Alpha is kept.
func Fogged(c color.NRGBA, d float64, fog component.Fog) color.NRGBA {
	f := FogFactor(d, fog)
	mix := func(a, b uint8) uint8 {
		return toByte(unit(a)*(1-f) + unit(b)*f)
	}
	return color.NRGBA{
		R: mix(c.R, fog.Color.R),
		G: mix(c.G, fog.Color.G),
		B: mix(c.B, fog.Color.B),
		A: c.A,
	}
}

func unit(b uint8) float64 {
	return float64(b) / 255
}

func toByte(v float64) uint8 {
	return uint8(math.Round(mgl64.Clamp(v, 0, 1) * 255))
}
