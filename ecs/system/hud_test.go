package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: 0, want: 0},
		{in: 2.5, want: 3},
		{in: -2.5, want: -2},
		{in: -2.51, want: -3},
		{in: -0.4, want: 0},
		{in: 123.4, want: 123},
		{in: 9.5, want: 10},
		{in: -0.5, want: 0},
		// 0.49999999999999994+0.5 rounds up to 1 in float64
		{in: 0.49999999999999994, want: 0},
		{in: -1.5000000000000002, want: -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp(tt.in), "RoundHalfUp(%v)", tt.in)
	}
}

func TestHUDSystemReadsCar(t *testing.T) {
	w := ecs.NewWorld()
	car := addCar(t, w, component.Transform{Position: mgl64.Vec3{-2.5, 0, 17.6}})
	meter, _ := ecs.Get(w, car, component.SpeedometerComponent.Kind())
	meter.Speed = 123.4
	hudEntity := addHUD(t, w)

	NewHUDSystem().Update(w)

	hud, _ := ecs.Get(w, hudEntity, component.HUDComponent.Kind())
	assert.Equal(t, component.HUD{Speed: 123, X: -2, Z: 18}, *hud)
	assert.Equal(t, "speed=123 x=-2 z=18", FormatTelemetry(*hud))
}

func TestHUDSystemWithoutCar(t *testing.T) {
	w := ecs.NewWorld()
	hudEntity := addHUD(t, w)

	NewHUDSystem().Update(w)

	hud, _ := ecs.Get(w, hudEntity, component.HUDComponent.Kind())
	assert.Equal(t, component.HUD{}, *hud)
}
