package system

import (
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/rs/zerolog"
)

// InputSource produces the held-key snapshot for a frame.
type InputSource interface {
	Poll(frame int) (component.InputState, error)
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func(frame int) (component.InputState, error)

func (f InputSourceFunc) Poll(frame int) (component.InputState, error) {
	return f(frame)
}

// InputSystem snapshots the active source into every InputState component. It runs first
// so later systems only ever read the snapshot.
type InputSystem struct {
	source InputSource
	logger zerolog.Logger
	frame  int
	failed bool
}

func NewInputSystem(source InputSource, logger zerolog.Logger) *InputSystem {
	return &InputSystem{source: source, logger: logger}
}

// SetSource swaps the input source, e.g. after an autopilot script reload.
func (i *InputSystem) SetSource(source InputSource) {
	i.source = source
	i.failed = false
}

func (i *InputSystem) Frame() int {
	return i.frame
}

func (i *InputSystem) Update(w *ecs.World) {
	var state component.InputState
	if i.source != nil {
		polled, err := i.source.Poll(i.frame)
		switch {
		case err != nil && !i.failed:
			// log the first failure only, the script runs every frame
			i.logger.Error().Err(err).Int("frame", i.frame).Msg("input: poll failed")
			i.failed = true
		case err == nil:
			state = polled
			i.failed = false
		}
	}
	i.frame++

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.InputState) {
		*input = state
	})
}
