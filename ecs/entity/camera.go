package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/milk9111/stardrive/prefabs"
)

func NewCamera(w *ecs.World, width, height int) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec, width, height)
}

func NewCameraFromSpec(w *ecs.World, cameraSpec *prefabs.CameraSpec, width, height int) (ecs.Entity, error) {
	cam := cameraLens(cameraSpec)
	cam.Position = cameraSpec.Start.Vec3()
	cam.Aspect = 1
	if width > 0 && height > 0 {
		cam.Aspect = float64(width) / float64(height)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.ViewportComponent.Kind(), &component.Viewport{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("camera: add viewport: %w", err)
	}

	return camera, nil
}

// ReloadCamera re-reads camera.yaml and updates the follow and lens settings. Position,
// target and aspect are left alone so the camera keeps easing from where it is.
func ReloadCamera(w *ecs.World) error {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return fmt.Errorf("camera: reload spec: %w", err)
	}
	lens := cameraLens(cameraSpec)
	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, cam *component.Camera) {
		cam.TargetName = lens.TargetName
		cam.Offset = lens.Offset
		cam.LookHeight = lens.LookHeight
		cam.Smoothing = lens.Smoothing
		cam.FOV = lens.FOV
		cam.Near = lens.Near
		cam.Far = lens.Far
	})
	return nil
}

func cameraLens(cameraSpec *prefabs.CameraSpec) component.Camera {
	offset := cameraSpec.Offset.Vec3()
	if offset == (mgl64.Vec3{}) {
		offset = mgl64.Vec3{0, 8, -10}
	}
	smooth := cameraSpec.Smoothing
	if smooth == 0 {
		smooth = 0.1
	}
	fov := cameraSpec.FOV
	if fov == 0 {
		fov = 75
	}
	near := cameraSpec.Near
	if near == 0 {
		near = 0.1
	}
	far := cameraSpec.Far
	if far == 0 {
		far = 1000
	}
	lookHeight := cameraSpec.LookHeight
	if lookHeight == 0 {
		lookHeight = 2
	}
	return component.Camera{
		TargetName: cameraSpec.Target,
		Offset:     offset,
		LookHeight: lookHeight,
		Smoothing:  smooth,
		FOV:        fov,
		Near:       near,
		Far:        far,
	}
}
