package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/milk9111/stardrive/ecs/view"
)

const (
	gridPieces = 10
	lineWidth  = 1
	edgeWidth  = 1.5
)

// RenderSystem draws the scene from the first camera.
type RenderSystem struct {
	camEntity ecs.Entity
	white     *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &RenderSystem{
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	env := component.Environment{}
	if e, ok := ecs.First(w, component.EnvironmentComponent.Kind()); ok {
		if c, ok := ecs.Get(w, e, component.EnvironmentComponent.Kind()); ok {
			env = *c
		}
	}
	screen.Fill(env.ClearColor)

	if !ecs.IsAlive(w, r.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		r.camEntity = camEntity
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	vp := component.Viewport{Width: screen.Bounds().Dx(), Height: screen.Bounds().Dy()}
	proj := view.NewProjector(*cam, vp)

	ecs.ForEach(w, component.GroundComponent.Kind(), func(e ecs.Entity, g *component.Ground) {
		r.drawGround(screen, proj, *g, env.Fog)
	})

	ecs.ForEach2(w, component.StarComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Star, t *component.Transform) {
		r.drawStar(screen, proj, *s, t.Position, env.Fog)
	})

	ecs.ForEach2(w, component.MeshComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Mesh, t *component.Transform) {
		r.drawMesh(screen, proj, *m, *t, env)
	})
}

func (r *RenderSystem) drawGround(screen *ebiten.Image, proj *view.Projector, g component.Ground, fog component.Fog) {
	if poly := proj.Polygon(view.PlaneCorners(g)); len(poly) >= 3 {
		r.fillPolygon(screen, poly, g.PlaneColor)
	}

	eye := proj.Eye()
	for _, line := range view.GridLines(g) {
		// split so fog can vary along the line
		step := line.B.Sub(line.A).Mul(1.0 / gridPieces)
		for i := 0; i < gridPieces; i++ {
			a := line.A.Add(step.Mul(float64(i)))
			b := a.Add(step)
			pa, pb, ok := proj.Segment(a, b)
			if !ok {
				continue
			}
			d := a.Add(b).Mul(0.5).Sub(eye).Len()
			vector.StrokeLine(screen, pa.X, pa.Y, pb.X, pb.Y, lineWidth, view.Fogged(line.Color, d, fog), true)
		}
	}
}

func (r *RenderSystem) drawStar(screen *ebiten.Image, proj *view.Projector, s component.Star, pos mgl64.Vec3, fog component.Fog) {
	pt, depth, ok := proj.Project(pos)
	if !ok {
		return
	}
	radius := proj.Radius(s.Radius, depth)
	if radius < 1 {
		radius = 1
	}
	c := view.Fogged(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, pos.Sub(proj.Eye()).Len(), fog)
	c.A = uint8(clamp01(s.Opacity)*255 + 0.5)
	vector.FillCircle(screen, pt.X, pt.Y, radius, c, true)
}

func (r *RenderSystem) drawMesh(screen *ebiten.Image, proj *view.Projector, m component.Mesh, t component.Transform, env component.Environment) {
	eye := proj.Eye()
	for _, edge := range view.MeshEdges(m, t) {
		pa, pb, ok := proj.Segment(edge.A, edge.B)
		if !ok {
			continue
		}
		part := m.Parts[edge.Part]
		c := view.Shade(part.Color, part.Emissive, edge.Normal, env)
		d := edge.A.Add(edge.B).Mul(0.5).Sub(eye).Len()
		vector.StrokeLine(screen, pa.X, pa.Y, pb.X, pb.Y, edgeWidth, view.Fogged(c, d, env.Fog), true)
	}
}

// fillPolygon fills a convex screen polygon as a triangle fan.
func (r *RenderSystem) fillPolygon(screen *ebiten.Image, poly []view.ScreenPoint, c color.NRGBA) {
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vertices := make([]ebiten.Vertex, len(poly))
	for i, p := range poly {
		vertices[i] = ebiten.Vertex{
			DstX: p.X, DstY: p.Y,
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	indices := make([]uint16, 0, 3*(len(poly)-2))
	for i := 1; i+1 < len(poly); i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(vertices, indices, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func clamp01(v float64) float64 {
	return mgl64.Clamp(v, 0, 1)
}
