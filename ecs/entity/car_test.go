package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/milk9111/stardrive/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuningDefaults(t *testing.T) {
	assert.Equal(t, component.DefaultCarTuning(), Tuning(prefabs.TuningSpec{}))

	got := Tuning(prefabs.TuningSpec{MaxSpeed: 1, Friction: 0.9})
	want := component.DefaultCarTuning()
	want.MaxSpeed = 1
	want.Friction = 0.9
	assert.Equal(t, want, got)
}

func TestNewCarFromSpec(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.CarSpec{
		Transform: prefabs.TransformSpec{Position: prefabs.Vec3Spec{X: 1, Z: 2}, Yaw: 0.5},
		Parts: []prefabs.PartSpec{
			{Name: "body", Kind: "box", Size: prefabs.Vec3Spec{X: 2, Y: 1, Z: 4}},
			{Name: "wheel", Kind: "Cylinder", Radius: 0.3, Segments: 1},
			{Name: "lamp", Kind: "sphere", Radius: 0.1, Segments: 12},
		},
	}

	car, err := NewCarFromSpec(w, spec)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, car, component.TransformComponent.Kind())
	assert.Equal(t, component.Transform{Position: mgl64.Vec3{1, 0, 2}, Yaw: 0.5}, *tr)

	mesh, _ := ecs.Get(w, car, component.MeshComponent.Kind())
	require.Len(t, mesh.Parts, 3)
	assert.Equal(t, component.PartBox, mesh.Parts[0].Kind)
	assert.Equal(t, component.PartCylinder, mesh.Parts[1].Kind)
	assert.Equal(t, 8, mesh.Parts[1].Segments)
	assert.Equal(t, component.PartSphere, mesh.Parts[2].Kind)
	assert.Equal(t, 12, mesh.Parts[2].Segments)
	assert.Equal(t, uint8(0xff), mesh.Parts[0].Color.A)

	_, err = NewCarFromSpec(w, &prefabs.CarSpec{Parts: []prefabs.PartSpec{{Name: "fin", Kind: "cone"}}})
	assert.ErrorContains(t, err, `part "fin"`)
}

func TestResetCar(t *testing.T) {
	w := ecs.NewWorld()
	car, err := NewCar(w)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, car, component.TransformComponent.Kind())
	vel, _ := ecs.Get(w, car, component.VelocityComponent.Kind())
	meter, _ := ecs.Get(w, car, component.SpeedometerComponent.Kind())
	spawn := *tr

	tr.Position = mgl64.Vec3{40, 0, -12}
	tr.Yaw = 2
	vel.Linear = cp.Vector{X: 0.1, Y: -0.3}
	meter.Speed = 300

	ResetCar(w)

	assert.Equal(t, spawn, *tr)
	assert.Equal(t, component.Velocity{}, *vel)
	assert.Zero(t, meter.Speed)
}

func TestReloadKeepsCameraPosition(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w, 800, 600)
	require.NoError(t, err)

	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	cam.Position = mgl64.Vec3{1, 2, 3}
	cam.Smoothing = 0.5

	require.NoError(t, ReloadCamera(w))
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, cam.Position)
	assert.Equal(t, 0.1, cam.Smoothing)
	assert.InDelta(t, 800.0/600.0, cam.Aspect, 1e-12)
}

func TestCameraSpecDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCameraFromSpec(w, &prefabs.CameraSpec{}, 800, 600)
	require.NoError(t, err)

	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	assert.Equal(t, mgl64.Vec3{0, 8, -10}, cam.Offset)
	assert.Equal(t, 2.0, cam.LookHeight)
	assert.Equal(t, 0.1, cam.Smoothing)
	assert.Equal(t, 75.0, cam.FOV)

	e, err = NewCameraFromSpec(w, &prefabs.CameraSpec{LookHeight: 3.5}, 800, 600)
	require.NoError(t, err)
	cam, _ = ecs.Get(w, e, component.CameraComponent.Kind())
	assert.Equal(t, 3.5, cam.LookHeight)
}

func TestReloadCarTuning(t *testing.T) {
	w := ecs.NewWorld()
	car, err := NewCar(w)
	require.NoError(t, err)

	tuning, _ := ecs.Get(w, car, component.CarTuningComponent.Kind())
	tuning.MaxSpeed = 9

	require.NoError(t, ReloadCarTuning(w))
	assert.Equal(t, component.DefaultCarTuning(), *tuning)
}
