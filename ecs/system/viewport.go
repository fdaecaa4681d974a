package system

import (
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
)

// ApplyResize records a new output size and updates every camera's aspect ratio. It
// reports whether anything changed; non-positive sizes are ignored.
func ApplyResize(w *ecs.World, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	changed := false
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.ViewportComponent.Kind(), func(e ecs.Entity, cam *component.Camera, vp *component.Viewport) {
		if vp.Width == width && vp.Height == height {
			return
		}
		vp.Width = width
		vp.Height = height
		cam.Aspect = float64(width) / float64(height)
		changed = true
	})
	return changed
}
