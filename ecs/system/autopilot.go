package system

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/milk9111/stardrive/prefabs"
)

// A script defines drive(frame, telemetry) and returns a map of held keys.
const autopilotDispatchScript = `
__input = drive(__frame, __telemetry)
`

// Telemetry is the car state exposed to autopilot scripts.
type Telemetry struct {
	Speed float64
	X     float64
	Z     float64
	Yaw   float64
}

// CarTelemetry reads the first car's state from w.
func CarTelemetry(w *ecs.World) Telemetry {
	car, ok := ecs.First(w, component.CarTagComponent.Kind())
	if !ok {
		return Telemetry{}
	}
	var tel Telemetry
	if t, ok := ecs.Get(w, car, component.TransformComponent.Kind()); ok {
		tel.X = t.Position.X()
		tel.Z = t.Position.Z()
		tel.Yaw = t.Yaw
	}
	if meter, ok := ecs.Get(w, car, component.SpeedometerComponent.Kind()); ok {
		tel.Speed = meter.Speed
	}
	return tel
}

// Autopilot is an InputSource driven by a tengo script.
type Autopilot struct {
	name      string
	compiled  *tengo.Compiled
	telemetry func() Telemetry
}

// LoadAutopilot compiles a script from prefabs/scripts.
func LoadAutopilot(name string, telemetry func() Telemetry) (*Autopilot, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("autopilot: load %s: %w", name, err)
	}
	return NewAutopilot(name, src, telemetry)
}

func NewAutopilot(name string, src []byte, telemetry func() Telemetry) (*Autopilot, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), autopilotDispatchScript...))
	_ = script.Add("__frame", 0)
	_ = script.Add("__telemetry", map[string]any{})
	_ = script.Add("__input", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}

	return &Autopilot{name: name, compiled: compiled, telemetry: telemetry}, nil
}

func (a *Autopilot) Name() string {
	return a.name
}

func (a *Autopilot) Poll(frame int) (component.InputState, error) {
	tel := Telemetry{}
	if a.telemetry != nil {
		tel = a.telemetry()
	}

	if err := a.compiled.Set("__frame", frame); err != nil {
		return component.InputState{}, err
	}
	if err := a.compiled.Set("__telemetry", map[string]any{
		"speed": tel.Speed,
		"x":     tel.X,
		"z":     tel.Z,
		"yaw":   tel.Yaw,
	}); err != nil {
		return component.InputState{}, err
	}
	// RunContext turns VM panics (e.g. integer division by zero) into errors
	if err := a.compiled.RunContext(context.Background()); err != nil {
		return component.InputState{}, fmt.Errorf("autopilot: run %s: %w", a.name, err)
	}

	keys := a.compiled.Get("__input").Map()
	return component.InputState{
		Forward:  keyHeld(keys, "forward"),
		Backward: keyHeld(keys, "backward"),
		Left:     keyHeld(keys, "left"),
		Right:    keyHeld(keys, "right"),
		Brake:    keyHeld(keys, "brake"),
	}, nil
}

func keyHeld(keys map[string]any, name string) bool {
	held, ok := keys[name].(bool)
	return ok && held
}
