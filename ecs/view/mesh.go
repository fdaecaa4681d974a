package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs/component"
)

// Edge is one wireframe line of a mesh in world space. Normal points away from the
// part's centre and is used for shading.
type Edge struct {
	A, B   mgl64.Vec3
	Normal mgl64.Vec3
	Part   int
}

// MeshEdges tessellates every part of mesh and places it with t.
func MeshEdges(mesh component.Mesh, t component.Transform) []Edge {
	var edges []Edge
	for i, part := range mesh.Parts {
		var local [][2]mgl64.Vec3
		switch part.Kind {
		case component.PartBox:
			local = boxEdges(part.Size)
		case component.PartCylinder:
			local = cylinderEdges(part.Radius, part.Size.Y(), part.Segments)
		case component.PartSphere:
			local = sphereEdges(part.Radius, part.Segments)
		}

		rot := mgl64.QuatRotate(part.RotZ, mgl64.Vec3{0, 0, 1})
		for _, e := range local {
			mid := e[0].Add(e[1]).Mul(0.5)
			normal := mgl64.Vec3{0, 1, 0}
			if mid.Len() > 1e-9 {
				normal = mid.Normalize()
			}
			edges = append(edges, Edge{
				A:      t.Apply(rot.Rotate(e[0]).Add(part.Offset)),
				B:      t.Apply(rot.Rotate(e[1]).Add(part.Offset)),
				Normal: t.Rotate(rot.Rotate(normal)),
				Part:   i,
			})
		}
	}
	return edges
}

func boxEdges(size mgl64.Vec3) [][2]mgl64.Vec3 {
	h := size.Mul(0.5)
	corner := func(sx, sy, sz float64) mgl64.Vec3 {
		return mgl64.Vec3{sx * h.X(), sy * h.Y(), sz * h.Z()}
	}
	var edges [][2]mgl64.Vec3
	for _, s := range []float64{-1, 1} {
		for _, u := range []float64{-1, 1} {
			edges = append(edges,
				[2]mgl64.Vec3{corner(-1, s, u), corner(1, s, u)},
				[2]mgl64.Vec3{corner(s, -1, u), corner(s, 1, u)},
				[2]mgl64.Vec3{corner(s, u, -1), corner(s, u, 1)},
			)
		}
	}
	return edges
}

// cylinderEdges builds a prism around the local Y axis: two rings and the verticals.
func cylinderEdges(radius, height float64, segments int) [][2]mgl64.Vec3 {
	ring := circle(radius, segments)
	top := mgl64.Vec3{0, height / 2, 0}
	bottom := mgl64.Vec3{0, -height / 2, 0}

	edges := make([][2]mgl64.Vec3, 0, 3*len(ring))
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		edges = append(edges,
			[2]mgl64.Vec3{p.Add(top), q.Add(top)},
			[2]mgl64.Vec3{p.Add(bottom), q.Add(bottom)},
			[2]mgl64.Vec3{p.Add(bottom), p.Add(top)},
		)
	}
	return edges
}

// sphereEdges approximates a sphere with its three axis-aligned great circles.
func sphereEdges(radius float64, segments int) [][2]mgl64.Vec3 {
	ring := circle(radius, segments)
	edges := make([][2]mgl64.Vec3, 0, 3*len(ring))
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		edges = append(edges,
			[2]mgl64.Vec3{p, q},
			[2]mgl64.Vec3{{p.X(), p.Z(), 0}, {q.X(), q.Z(), 0}},
			[2]mgl64.Vec3{{0, p.X(), p.Z()}, {0, q.X(), q.Z()}},
		)
	}
	return edges
}

// circle returns points on a ring in the XZ plane.
func circle(radius float64, segments int) []mgl64.Vec3 {
	if segments < 3 {
		segments = 3
	}
	pts := make([]mgl64.Vec3, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = mgl64.Vec3{radius * math.Cos(a), 0, radius * math.Sin(a)}
	}
	return pts
}
