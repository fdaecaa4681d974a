package view

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs/component"
)

// Line is a coloured world-space segment.
type Line struct {
	A, B  mgl64.Vec3
	Color color.NRGBA
}

// GridLines lays out Divisions+1 lines along each axis on y = 0, centred on the origin.
// The two lines through the origin use the centre colour.
func GridLines(g component.Ground) []Line {
	if g.Divisions <= 0 || g.GridSize <= 0 {
		return nil
	}
	half := g.GridSize / 2
	step := g.GridSize / float64(g.Divisions)
	lines := make([]Line, 0, 2*(g.Divisions+1))
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float64(i)*step
		c := g.LineColor
		if 2*i == g.Divisions {
			c = g.CenterColor
		}
		lines = append(lines,
			Line{A: mgl64.Vec3{-half, 0, k}, B: mgl64.Vec3{half, 0, k}, Color: c},
			Line{A: mgl64.Vec3{k, 0, -half}, B: mgl64.Vec3{k, 0, half}, Color: c},
		)
	}
	return lines
}

// PlaneCorners returns the ground plane as a quad, wound counter-clockwise seen from above.
func PlaneCorners(g component.Ground) []mgl64.Vec3 {
	h := g.PlaneSize / 2
	y := g.PlaneY
	return []mgl64.Vec3{{-h, y, -h}, {-h, y, h}, {h, y, h}, {h, y, -h}}
}
