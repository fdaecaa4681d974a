package view

import (
	"math"

	"github.com/EngoEngine/glm"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs/component"
)

// ScreenPoint is a position in pixels, origin top-left.
type ScreenPoint struct {
	X, Y float32
}

// Projector maps world space to screen pixels for one camera and viewport. Simulation
// state stays float64; the conversion to the renderer's float32 matrices happens here.
type Projector struct {
	viewProj glm.Mat4
	width    float32
	height   float32
	near     float32
	focal    float32
	eye      mgl64.Vec3
}

func NewProjector(cam component.Camera, vp component.Viewport) *Projector {
	aspect := cam.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	fovY := mgl64.DegToRad(cam.FOV)

	proj := glm.Perspective(float32(fovY), float32(aspect), float32(cam.Near), float32(cam.Far))
	eye := toGLM(cam.Position)
	center := toGLM(cam.Target)
	up := glm.Vec3{0, 1, 0}
	lookAt := glm.LookAtV(&eye, &center, &up)

	return &Projector{
		viewProj: proj.Mul4(&lookAt),
		width:    float32(vp.Width),
		height:   float32(vp.Height),
		near:     float32(cam.Near),
		focal:    float32(float64(vp.Height) / 2 / math.Tan(fovY/2)),
		eye:      cam.Position,
	}
}

// Eye returns the camera position the projector was built from.
func (p *Projector) Eye() mgl64.Vec3 {
	return p.eye
}

// Clip returns the homogeneous clip-space position of a world point. W is the distance
// in front of the camera along its view axis.
func (p *Projector) Clip(pt mgl64.Vec3) glm.Vec4 {
	v := glm.Vec4{float32(pt.X()), float32(pt.Y()), float32(pt.Z()), 1}
	return p.viewProj.Mul4x1(&v)
}

// Project maps a world point to the screen. ok is false when the point is behind the
// near plane.
func (p *Projector) Project(pt mgl64.Vec3) (ScreenPoint, float32, bool) {
	c := p.Clip(pt)
	if c[3] < p.near {
		return ScreenPoint{}, 0, false
	}
	return p.toScreen(c), c[3], true
}

// Segment projects a line, clipping it against the near plane.
func (p *Projector) Segment(a, b mgl64.Vec3) (ScreenPoint, ScreenPoint, bool) {
	ca, cb := p.Clip(a), p.Clip(b)
	switch {
	case ca[3] < p.near && cb[3] < p.near:
		return ScreenPoint{}, ScreenPoint{}, false
	case ca[3] < p.near:
		ca = lerp4(ca, cb, (p.near-ca[3])/(cb[3]-ca[3]))
	case cb[3] < p.near:
		cb = lerp4(cb, ca, (p.near-cb[3])/(ca[3]-cb[3]))
	}
	return p.toScreen(ca), p.toScreen(cb), true
}

// Polygon projects a convex polygon, clipping it against the near plane
// (Sutherland–Hodgman). The result is empty when nothing is in front of the camera.
func (p *Projector) Polygon(pts []mgl64.Vec3) []ScreenPoint {
	if len(pts) < 3 {
		return nil
	}
	in := make([]glm.Vec4, len(pts))
	for i, pt := range pts {
		in[i] = p.Clip(pt)
	}

	var clipped []glm.Vec4
	for i := range in {
		cur, next := in[i], in[(i+1)%len(in)]
		curIn, nextIn := cur[3] >= p.near, next[3] >= p.near
		if curIn {
			clipped = append(clipped, cur)
		}
		if curIn != nextIn {
			clipped = append(clipped, lerp4(cur, next, (p.near-cur[3])/(next[3]-cur[3])))
		}
	}
	if len(clipped) < 3 {
		return nil
	}

	out := make([]ScreenPoint, len(clipped))
	for i, c := range clipped {
		out[i] = p.toScreen(c)
	}
	return out
}

// Radius converts a world-space radius at clip depth w into pixels.
func (p *Projector) Radius(world float64, w float32) float32 {
	if w <= 0 {
		return 0
	}
	return float32(world) * p.focal / w
}

func (p *Projector) toScreen(c glm.Vec4) ScreenPoint {
	return ScreenPoint{
		X: (c[0]/c[3]*0.5 + 0.5) * p.width,
		Y: (0.5 - c[1]/c[3]*0.5) * p.height,
	}
}

func lerp4(a, b glm.Vec4, t float32) glm.Vec4 {
	return glm.Vec4{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	}
}

func toGLM(v mgl64.Vec3) glm.Vec3 {
	return glm.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
