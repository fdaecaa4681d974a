package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward its ideal chase position behind the target and aims it
// just above the target.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if !ecs.IsAlive(w, cs.targetEntity) {
		targetEntity := findEntityByNameOrTag(w, cam.TargetName)
		if !targetEntity.Valid() {
			return
		}
		cs.targetEntity = targetEntity
	}

	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	Follow(cam, *target)
}

// Follow moves cam a fixed fraction of the remaining distance toward the ideal chase
// position. The easing is per frame, not per second.
func Follow(cam *component.Camera, target component.Transform) {
	ideal := target.Apply(cam.Offset)
	cam.Position = Lerp(cam.Position, ideal, cam.Smoothing)
	cam.Target = target.Position.Add(mgl64.Vec3{0, cam.LookHeight, 0})
}

// Lerp returns a + t*(b-a).
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	switch name {
	case "", "car":
		if e, ok := ecs.First(w, component.CarTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
