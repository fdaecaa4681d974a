package entity

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/milk9111/stardrive/prefabs"
)

// Scene holds the handles of the singleton entities.
type Scene struct {
	Car    ecs.Entity
	Camera ecs.Entity
	HUD    ecs.Entity
	Ground ecs.Entity
	Sky    ecs.Entity
}

// BuildScene creates every entity of the demo from the prefabs.
func BuildScene(w *ecs.World, rng *rand.Rand, width, height int) (Scene, error) {
	var scene Scene

	sceneSpec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return scene, fmt.Errorf("scene: load spec: %w", err)
	}

	if scene.Sky, err = NewEnvironment(w, sceneSpec); err != nil {
		return scene, err
	}
	if scene.Ground, err = NewGround(w, sceneSpec.Ground); err != nil {
		return scene, err
	}
	if err := NewStars(w, sceneSpec.Stars, rng); err != nil {
		return scene, err
	}
	if scene.Car, err = NewCar(w); err != nil {
		return scene, err
	}
	if scene.Camera, err = NewCamera(w, width, height); err != nil {
		return scene, err
	}
	if scene.HUD, err = NewHUD(w); err != nil {
		return scene, err
	}
	return scene, nil
}

// NewEnvironment creates the entity carrying clear colour, fog, lights and twinkle settings.
func NewEnvironment(w *ecs.World, sceneSpec *prefabs.SceneSpec) (ecs.Entity, error) {
	night := color.NRGBA{R: 0x00, G: 0x00, B: 0x11, A: 0xff}

	fog := component.Fog{
		Color: sceneSpec.Fog.Color.Or(night),
		Near:  sceneSpec.Fog.Near,
		Far:   sceneSpec.Fog.Far,
	}
	if fog.Far <= fog.Near {
		fog.Near, fog.Far = 1, 100
	}

	env := component.Environment{
		ClearColor: sceneSpec.ClearColor.Or(night),
		Fog:        fog,
		Ambient: component.Light{
			Color:     sceneSpec.Lights.Ambient.Color.Or(color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}),
			Intensity: sceneSpec.Lights.Ambient.Intensity,
		},
		Sun: component.Light{
			Color:     sceneSpec.Lights.Directional.Color.Or(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
			Intensity: sceneSpec.Lights.Directional.Intensity,
			Position:  sceneSpec.Lights.Directional.Position.Vec3(),
		},
	}
	if env.Sun.Position == (mgl64.Vec3{}) {
		env.Sun.Position = mgl64.Vec3{10, 10, 5}
	}

	twinkle := component.Twinkle{
		Chance:     sceneSpec.Stars.TwinkleChance,
		MinOpacity: sceneSpec.Stars.MinOpacity,
	}
	if twinkle.Chance == 0 {
		twinkle.Chance = 0.01
	}
	if twinkle.MinOpacity == 0 {
		twinkle.MinOpacity = 0.3
	}

	sky := ecs.CreateEntity(w)
	if err := ecs.Add(w, sky, component.EnvironmentComponent.Kind(), &env); err != nil {
		return 0, fmt.Errorf("environment: add environment: %w", err)
	}
	if err := ecs.Add(w, sky, component.TwinkleComponent.Kind(), &twinkle); err != nil {
		return 0, fmt.Errorf("environment: add twinkle: %w", err)
	}
	return sky, nil
}

// NewStars scatters stars above the ground: x and z uniform in [-spread/2, spread/2),
// y uniform in [min_y, min_y+range_y).
func NewStars(w *ecs.World, stars prefabs.StarsSpec, rng *rand.Rand) error {
	count := stars.Count
	if count <= 0 {
		count = 1000
	}
	spread := stars.SpreadXZ
	if spread == 0 {
		spread = 200
	}
	minY := stars.MinY
	if minY == 0 {
		minY = 20
	}
	rangeY := stars.RangeY
	if rangeY == 0 {
		rangeY = 100
	}
	radius := stars.Radius
	if radius == 0 {
		radius = 0.1
	}

	for i := 0; i < count; i++ {
		star := ecs.CreateEntity(w)
		pos := mgl64.Vec3{
			(rng.Float64() - 0.5) * spread,
			rng.Float64()*rangeY + minY,
			(rng.Float64() - 0.5) * spread,
		}
		if err := ecs.Add(w, star, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
			return fmt.Errorf("stars: add transform: %w", err)
		}
		if err := ecs.Add(w, star, component.StarComponent.Kind(), &component.Star{Radius: radius, Opacity: 1}); err != nil {
			return fmt.Errorf("stars: add star: %w", err)
		}
	}
	return nil
}

func NewGround(w *ecs.World, g prefabs.GroundSpec) (ecs.Entity, error) {
	ground := component.Ground{
		GridSize:    g.GridSize,
		Divisions:   g.Divisions,
		CenterColor: g.CenterColor.Or(color.NRGBA{R: 0x33, G: 0x33, B: 0x66, A: 0xff}),
		LineColor:   g.LineColor.Or(color.NRGBA{R: 0x11, G: 0x11, B: 0x33, A: 0xff}),
		PlaneSize:   g.PlaneSize,
		PlaneColor:  g.PlaneColor.Or(color.NRGBA{R: 0x00, G: 0x11, B: 0x22, A: 0xff}),
		PlaneY:      g.PlaneY,
	}
	if ground.GridSize == 0 {
		ground.GridSize = 100
	}
	if ground.Divisions <= 0 {
		ground.Divisions = 50
	}
	if ground.PlaneSize == 0 {
		ground.PlaneSize = 200
	}
	if g.PlaneOpacity > 0 && g.PlaneOpacity <= 1 {
		ground.PlaneColor.A = uint8(g.PlaneOpacity*255 + 0.5)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GroundComponent.Kind(), &ground); err != nil {
		return 0, fmt.Errorf("ground: add ground: %w", err)
	}
	return e, nil
}

func NewHUD(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{}); err != nil {
		return 0, fmt.Errorf("hud: add hud: %w", err)
	}
	return e, nil
}
