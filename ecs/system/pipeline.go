package system

import (
	"math/rand/v2"

	"github.com/milk9111/stardrive/ecs"
	"github.com/rs/zerolog"
)

// Pipeline is the per-frame simulation order: input snapshot, integration, camera
// follow, star twinkle, HUD values.
type Pipeline struct {
	*ecs.Scheduler
	Input *InputSystem
}

func NewPipeline(source InputSource, rng *rand.Rand, logger zerolog.Logger) *Pipeline {
	input := NewInputSystem(source, logger)
	return &Pipeline{
		Scheduler: ecs.NewScheduler(
			input,
			NewMotionSystem(),
			NewCameraSystem(),
			NewTwinkleSystem(rng),
			NewHUDSystem(),
		),
		Input: input,
	}
}
