package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func starWorld(t *testing.T, n int, cfg *component.Twinkle) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	for i := 0; i < n; i++ {
		e := ecs.CreateEntity(w)
		require.NoError(t, ecs.Add(w, e, component.StarComponent.Kind(), &component.Star{Radius: 0.1, Opacity: 1}))
	}
	if cfg != nil {
		e := ecs.CreateEntity(w)
		require.NoError(t, ecs.Add(w, e, component.TwinkleComponent.Kind(), cfg))
	}
	return w
}

func opacities(w *ecs.World) []float64 {
	var out []float64
	ecs.ForEach(w, component.StarComponent.Kind(), func(e ecs.Entity, s *component.Star) {
		out = append(out, s.Opacity)
	})
	return out
}

func TestTwinkleStaysInRange(t *testing.T) {
	w := starWorld(t, 200, &component.Twinkle{Chance: 1, MinOpacity: 0.3})
	ts := NewTwinkleSystem(rand.New(rand.NewPCG(7, 7)))

	for frame := 0; frame < 20; frame++ {
		ts.Update(w)
		for _, o := range opacities(w) {
			assert.GreaterOrEqual(t, o, 0.3)
			assert.LessOrEqual(t, o, 1.0)
		}
	}
}

func TestTwinkleZeroChanceLeavesStars(t *testing.T) {
	w := starWorld(t, 50, &component.Twinkle{Chance: 0, MinOpacity: 0.3})
	NewTwinkleSystem(rand.New(rand.NewPCG(1, 2))).Update(w)

	for _, o := range opacities(w) {
		assert.Equal(t, 1.0, o)
	}
}

func TestTwinkleDefaultChance(t *testing.T) {
	w := starWorld(t, 1000, nil)
	NewTwinkleSystem(rand.New(rand.NewPCG(3, 4))).Update(w)

	changed := 0
	for _, o := range opacities(w) {
		if o != 1 {
			changed++
		}
	}
	// about 1% of stars per frame
	assert.Greater(t, changed, 0)
	assert.Less(t, changed, 40)
}

func TestTwinkleIsDeterministicPerSeed(t *testing.T) {
	cfg := component.Twinkle{Chance: 0.5, MinOpacity: 0.3}
	a := starWorld(t, 100, &cfg)
	b := starWorld(t, 100, &cfg)

	ta := NewTwinkleSystem(rand.New(rand.NewPCG(42, 42)))
	tb := NewTwinkleSystem(rand.New(rand.NewPCG(42, 42)))
	for i := 0; i < 10; i++ {
		ta.Update(a)
		tb.Update(b)
	}
	assert.Equal(t, opacities(a), opacities(b))
}
