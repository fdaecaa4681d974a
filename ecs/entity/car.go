package entity

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/milk9111/stardrive/prefabs"
)

func NewCar(w *ecs.World) (ecs.Entity, error) {
	carSpec, err := prefabs.LoadCarSpec()
	if err != nil {
		return 0, fmt.Errorf("car: load spec: %w", err)
	}
	return NewCarFromSpec(w, carSpec)
}

func NewCarFromSpec(w *ecs.World, carSpec *prefabs.CarSpec) (ecs.Entity, error) {
	mesh, err := buildMesh(carSpec.Parts)
	if err != nil {
		return 0, fmt.Errorf("car: build mesh: %w", err)
	}

	start := component.Transform{
		Position: carSpec.Transform.Position.Vec3(),
		Yaw:      carSpec.Transform.Yaw,
	}
	tuning := Tuning(carSpec.Tuning)

	car := ecs.CreateEntity(w)
	if err := ecs.Add(w, car, component.CarTagComponent.Kind(), &component.CarTag{}); err != nil {
		return 0, fmt.Errorf("car: add car tag: %w", err)
	}
	if err := ecs.Add(w, car, component.InputComponent.Kind(), &component.InputState{}); err != nil {
		return 0, fmt.Errorf("car: add input: %w", err)
	}
	if err := ecs.Add(w, car, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("car: add velocity: %w", err)
	}
	transform := start
	if err := ecs.Add(w, car, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("car: add transform: %w", err)
	}
	if err := ecs.Add(w, car, component.SpawnPointComponent.Kind(), &component.SpawnPoint{Transform: start}); err != nil {
		return 0, fmt.Errorf("car: add spawn point: %w", err)
	}
	if err := ecs.Add(w, car, component.CarTuningComponent.Kind(), &tuning); err != nil {
		return 0, fmt.Errorf("car: add tuning: %w", err)
	}
	if err := ecs.Add(w, car, component.SpeedometerComponent.Kind(), &component.Speedometer{}); err != nil {
		return 0, fmt.Errorf("car: add speedometer: %w", err)
	}
	if err := ecs.Add(w, car, component.MeshComponent.Kind(), mesh); err != nil {
		return 0, fmt.Errorf("car: add mesh: %w", err)
	}

	return car, nil
}

// Tuning converts a spec to integrator constants; zero fields keep the defaults.
func Tuning(s prefabs.TuningSpec) component.CarTuning {
	t := component.DefaultCarTuning()
	setIfNonZero(&t.Acceleration, s.Acceleration)
	setIfNonZero(&t.ReverseFactor, s.ReverseFactor)
	setIfNonZero(&t.MaxSpeed, s.MaxSpeed)
	setIfNonZero(&t.Friction, s.Friction)
	setIfNonZero(&t.TurnSpeed, s.TurnSpeed)
	setIfNonZero(&t.BrakeFactor, s.BrakeFactor)
	setIfNonZero(&t.DeadZone, s.DeadZone)
	setIfNonZero(&t.SpeedScale, s.SpeedScale)
	return t
}

// ReloadCarTuning re-reads car.yaml and replaces the tuning of every car in place.
func ReloadCarTuning(w *ecs.World) error {
	carSpec, err := prefabs.LoadCarSpec()
	if err != nil {
		return fmt.Errorf("car: reload spec: %w", err)
	}
	tuning := Tuning(carSpec.Tuning)
	ecs.ForEach(w, component.CarTuningComponent.Kind(), func(e ecs.Entity, t *component.CarTuning) {
		*t = tuning
	})
	return nil
}

// ResetCar puts every car back at its spawn point, at rest.
func ResetCar(w *ecs.World) {
	ecs.ForEach2(w, component.SpawnPointComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, spawn *component.SpawnPoint, t *component.Transform) {
		*t = spawn.Transform
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			*vel = component.Velocity{}
		}
		if meter, ok := ecs.Get(w, e, component.SpeedometerComponent.Kind()); ok {
			meter.Speed = 0
		}
	})
}

func buildMesh(parts []prefabs.PartSpec) (*component.Mesh, error) {
	mesh := &component.Mesh{Parts: make([]component.MeshPart, 0, len(parts))}
	for _, p := range parts {
		kind, err := partKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", p.Name, err)
		}
		segments := p.Segments
		if segments < 3 {
			segments = 8
		}
		mesh.Parts = append(mesh.Parts, component.MeshPart{
			Name:     p.Name,
			Kind:     kind,
			Offset:   p.Offset.Vec3(),
			Size:     p.Size.Vec3(),
			Radius:   p.Radius,
			Segments: segments,
			RotZ:     p.RotZ,
			Color:    p.Color.Or(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
			Emissive: p.Emissive.Or(color.NRGBA{}),
		})
	}
	return mesh, nil
}

func partKind(s string) (component.PartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "box", "":
		return component.PartBox, nil
	case "cylinder":
		return component.PartCylinder, nil
	case "sphere":
		return component.PartSphere, nil
	}
	return 0, fmt.Errorf("unknown part kind %q", s)
}

func setIfNonZero(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
