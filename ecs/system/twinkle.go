package system

import (
	"math/rand/v2"

	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
)

// TwinkleSystem randomly re-rolls star opacity.
type TwinkleSystem struct {
	rng *rand.Rand
}

func NewTwinkleSystem(rng *rand.Rand) *TwinkleSystem {
	return &TwinkleSystem{rng: rng}
}

func (ts *TwinkleSystem) Update(w *ecs.World) {
	cfg := component.Twinkle{Chance: 0.01, MinOpacity: 0.3}
	if e, ok := ecs.First(w, component.TwinkleComponent.Kind()); ok {
		if c, ok := ecs.Get(w, e, component.TwinkleComponent.Kind()); ok {
			cfg = *c
		}
	}

	ecs.ForEach(w, component.StarComponent.Kind(), func(e ecs.Entity, star *component.Star) {
		if ts.rng.Float64() < cfg.Chance {
			star.Opacity = cfg.MinOpacity + ts.rng.Float64()*(1-cfg.MinOpacity)
		}
	})
}
