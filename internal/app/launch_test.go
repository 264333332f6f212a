package app

import (
	"math"
	"testing"

	"go-missile-command/internal/component"
	"go-missile-command/internal/config"
	"go-missile-command/internal/defs"
	"go-missile-command/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunch_NearestLauncher(t *testing.T) {
	level := defs.LevelDescriptor{
		Launchers: []defs.Point{{X: 10, Y: 510}, {X: 400, Y: 510}},
	}
	sim, rec := newRecordedSimulation(t, level)

	id, err := sim.Launch(component.Position{X: 120, Y: 480})
	require.NoError(t, err)
	require.Len(t, sim.World.Interceptors, 1)

	i := sim.World.Interceptors[0]
	assert.Equal(t, id, i.ID)
	assert.Equal(t, component.Position{X: 20, Y: 510}, i.Origin())
	assert.InDelta(t, math.Atan(100.0/-30.0), i.Angle(), 1e-12)
	assert.Equal(t, 1, rec.count(event.InterceptorLaunched))

	sim.Tick()
	sim.Tick()
	want := math.Cos(i.Angle())*(-2*config.InterceptorSpeed) + 510
	assert.InDelta(t, want, sim.World.Interceptors[0].Pos().Y, 1e-9)

	_, err = sim.Launch(component.Position{X: 380, Y: 100})
	require.NoError(t, err)
	assert.Equal(t, component.Position{X: 410, Y: 510}, sim.World.Interceptors[1].Origin())
}

func TestLaunch_NoLauncher(t *testing.T) {
	sim := NewSimulation(defs.LevelDescriptor{Homes: []defs.Point{{X: 55, Y: 520}}}, WithSeed(1))

	_, err := sim.Launch(component.Position{X: 100, Y: 100})
	assert.ErrorIs(t, err, ErrNoLauncher)
	assert.Empty(t, sim.World.Interceptors)
}

func TestLaunch_AfterSessionEnded(t *testing.T) {
	sim := NewSimulation(defs.DefaultLevel(), WithSeed(1), WithWaveTable(defs.NewWaveTable(0)))
	sim.Tick()
	require.Equal(t, component.OutcomeVictory, sim.Outcome())

	_, err := sim.Launch(component.Position{X: 120, Y: 480})
	assert.ErrorIs(t, err, ErrSessionEnded)
	assert.Empty(t, sim.World.Interceptors)
	assert.Zero(t, sim.Stats().Launched)
}

func TestRandomTarget(t *testing.T) {
	sim := NewSimulation(defs.LevelDescriptor{}, WithSeed(1))
	_, ok := sim.RandomTarget()
	assert.False(t, ok)

	sim = NewSimulation(defs.DefaultLevel(), WithSeed(1))
	seen := make(map[uint64]bool)
	for n := 0; n < 200; n++ {
		target, ok := sim.RandomTarget()
		require.True(t, ok)
		seen[uint64(target.ID)] = true
	}
	assert.Len(t, seen, len(sim.World.Targets))
}

func TestFrame_Snapshot(t *testing.T) {
	level := defs.DefaultLevel()
	sim := NewSimulation(level, WithSeed(9))
	_, err := sim.Launch(component.Position{X: 100, Y: 100})
	require.NoError(t, err)
	sim.Tick()
	sim.Tick()

	f := sim.Frame()
	assert.EqualValues(t, 2, f.Tick)
	assert.Equal(t, 10, f.Quota)
	assert.Equal(t, 1, f.Spawned)
	assert.Equal(t, level.RocketCount, f.RocketCount)
	assert.Equal(t, level.Timer, f.Timer)
	assert.Len(t, f.Targets, len(sim.World.Targets))
	require.Len(t, f.Projectiles, 1)
	require.Len(t, f.Interceptors, 1)
	assert.False(t, f.Interceptors[0].Exploded)

	// The snapshot is detached from the world.
	f.Projectiles[0].X = -1
	assert.NotEqual(t, -1.0, sim.Frame().Projectiles[0].X)
}
