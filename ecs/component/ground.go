package component

import "image/color"

type Ground struct {
	GridSize    float64
	Divisions   int
	CenterColor color.NRGBA
	LineColor   color.NRGBA

	PlaneSize  float64
	PlaneColor color.NRGBA
	PlaneY     float64
}

var GroundComponent = NewComponent[Ground]()
