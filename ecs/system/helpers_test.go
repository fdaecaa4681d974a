package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/stretchr/testify/require"
)

func addCar(t *testing.T, w *ecs.World, tr component.Transform) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	tuning := component.DefaultCarTuning()
	require.NoError(t, ecs.Add(w, e, component.CarTagComponent.Kind(), &component.CarTag{}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.InputState{}))
	require.NoError(t, ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &tr))
	require.NoError(t, ecs.Add(w, e, component.CarTuningComponent.Kind(), &tuning))
	require.NoError(t, ecs.Add(w, e, component.SpeedometerComponent.Kind(), &component.Speedometer{}))
	return e
}

func chaseCamera() component.Camera {
	return component.Camera{
		TargetName: "car",
		Offset:     mgl64.Vec3{0, 8, -10},
		LookHeight: 2,
		Smoothing:  0.1,
		FOV:        75,
		Near:       0.1,
		Far:        1000,
		Aspect:     16.0 / 9.0,
		Position:   mgl64.Vec3{0, 8, 10},
	}
}

func addCamera(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	cam := chaseCamera()
	require.NoError(t, ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &cam))
	require.NoError(t, ecs.Add(w, e, component.ViewportComponent.Kind(), &component.Viewport{Width: 1600, Height: 900}))
	return e
}

func addHUD(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{}))
	return e
}
