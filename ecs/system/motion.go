package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
)

var (
	localForward = mgl64.Vec3{0, 0, 1}
	localLateral = mgl64.Vec3{1, 0, 0}
)

// MotionSystem integrates held input into velocity and car transform once per frame.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	ecs.ForEach4(w,
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.TransformComponent.Kind(),
		component.CarTuningComponent.Kind(),
		func(e ecs.Entity, input *component.InputState, vel *component.Velocity, t *component.Transform, tuning *component.CarTuning) {
			var speed float64
			*vel, *t, speed = Integrate(*input, *tuning, *vel, *t)
			if meter, ok := ecs.Get(w, e, component.SpeedometerComponent.Kind()); ok {
				meter.Speed = speed
			}
		})
}

// Integrate advances one frame. The step order is fixed: throttle, reverse, steering,
// brake, friction, clamp, then translation. It returns the new velocity, transform and
// display speed.
func Integrate(input component.InputState, tuning component.CarTuning, vel component.Velocity, t component.Transform) (component.Velocity, component.Transform, float64) {
	v := vel.Linear

	if input.Forward {
		v.Y -= tuning.Acceleration
	}
	if input.Backward {
		v.Y += tuning.Acceleration * tuning.ReverseFactor
	}

	// no steering while nearly stationary
	if math.Abs(v.Y) > tuning.DeadZone && tuning.MaxSpeed > 0 {
		turn := tuning.TurnSpeed * math.Abs(v.Y) / tuning.MaxSpeed
		if input.Left {
			t.Yaw += turn
		}
		if input.Right {
			t.Yaw -= turn
		}
	}

	// braking stacks with friction
	if input.Brake {
		v = v.Mult(tuning.BrakeFactor)
	}
	v = v.Mult(tuning.Friction)
	v = v.Clamp(tuning.MaxSpeed)

	forward := t.Rotate(localForward)
	lateral := t.Rotate(localLateral)
	t.Position = t.Position.Add(forward.Mul(-v.Y)).Add(lateral.Mul(v.X))

	return component.Velocity{Linear: v}, t, DisplaySpeed(v.Y, tuning.SpeedScale)
}

// DisplaySpeed converts a longitudinal velocity into the HUD's km/h-like scale.
func DisplaySpeed(longitudinal, scale float64) float64 {
	return math.Abs(longitudinal) * scale
}
