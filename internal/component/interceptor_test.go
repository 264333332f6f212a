package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptor_ClimbsTowardTap(t *testing.T) {
	origin := Position{X: 20, Y: 510}
	i := NewInterceptor(origin, Position{X: 120, Y: 480})

	angle := math.Atan((120.0 - 20.0) / (480.0 - 510.0))
	assert.InDelta(t, angle, i.Angle(), 1e-12)

	for n := 1; n <= 10; n++ {
		i.Update()
		require.False(t, i.Exploded(), "tick %d", n)
		assert.InDelta(t, math.Cos(angle)*(-float64(n)*i.Speed)+510, i.Pos().Y, 1e-9, "tick %d", n)
		assert.InDelta(t, math.Sin(angle)*(-float64(n)*i.Speed)+20, i.Pos().X, 1e-9, "tick %d", n)
	}

	i.Update()
	assert.True(t, i.Exploded())
	assert.Less(t, i.Pos().Y, 480.0)
	assert.Equal(t, PhaseGrowing, i.Phase())
	assert.Equal(t, i.ExplosionSpeed, i.Radius(), "blast starts growing on the detonation tick")
}

func TestInterceptor_RadiusLifecycle(t *testing.T) {
	i := NewInterceptor(Position{X: 200, Y: 400}, Position{X: 200, Y: 300})

	for !i.Exploded() {
		i.Update()
	}
	frozen := i.Pos()

	peaked := false
	prev := i.Radius()
	for ticks := 0; !i.Spent(); ticks++ {
		require.Less(t, ticks, 1000, "blast never collapsed")
		i.Update()
		r := i.Radius()

		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, i.FullRadius)
		if peaked {
			assert.Less(t, r, prev, "radius must not grow after the peak")
		}
		if r >= i.FullRadius {
			peaked = true
		}
		prev = r
		assert.Equal(t, frozen, i.Pos(), "position is frozen once exploded")
	}
	assert.True(t, peaked)
	assert.LessOrEqual(t, i.Radius(), 1.0)
	assert.False(t, i.Expanding())
}

func TestInterceptor_BlastOnlyWhenExploded(t *testing.T) {
	i := NewInterceptor(Position{X: 200, Y: 400}, Position{X: 200, Y: 300})
	_, ok := i.Blast()
	assert.False(t, ok)
	assert.Equal(t, PhaseTraveling, i.Phase())

	for !i.Exploded() {
		i.Update()
	}
	b, ok := i.Blast()
	require.True(t, ok)
	assert.Equal(t, i.Pos(), b.Center)
	assert.Equal(t, i.Radius(), b.Radius)
}

func TestInterceptor_TapBelowLauncherDetonatesAtOnce(t *testing.T) {
	// The two-quadrant angle sends a downward shot upward; it is already
	// above the target altitude after the first tick.
	i := NewInterceptor(Position{X: 225, Y: 530}, Position{X: 300, Y: 550})
	i.Update()

	assert.True(t, i.Exploded())
	assert.Less(t, i.Pos().Y, 530.0)
}

func TestInterceptor_HorizontalTapStaysFinite(t *testing.T) {
	i := NewInterceptor(Position{X: 225, Y: 530}, Position{X: 400, Y: 530})
	i.Update()

	pos := i.Pos()
	assert.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y))
	assert.False(t, math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0))
}
