package system

import (
	"fmt"
	"math"

	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
)

// HUDSystem rounds the car's speed and ground position for display.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{}
}

func (h *HUDSystem) Update(w *ecs.World) {
	hudEntity, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	hud, _ := ecs.Get(w, hudEntity, component.HUDComponent.Kind())

	car, ok := ecs.First(w, component.CarTagComponent.Kind())
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, car, component.TransformComponent.Kind()); ok {
		hud.X = RoundHalfUp(t.Position.X())
		hud.Z = RoundHalfUp(t.Position.Z())
	}
	if meter, ok := ecs.Get(w, car, component.SpeedometerComponent.Kind()); ok {
		hud.Speed = RoundHalfUp(meter.Speed)
	}
}

// RoundHalfUp rounds to the nearest integer with ties toward +Inf, so -2.5 becomes -2.
// The fraction is compared directly since v+0.5 can itself round up.
func RoundHalfUp(v float64) int {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return int(f)
}

// FormatTelemetry renders the HUD values in the form copied to the clipboard.
func FormatTelemetry(h component.HUD) string {
	return fmt.Sprintf("speed=%d x=%d z=%d", h.Speed, h.X, h.Z)
}
