package app

import (
	"testing"

	"go-missile-command/internal/component"
	"go-missile-command/internal/config"
	"go-missile-command/internal/defs"
	"go-missile-command/internal/event"
	"go-missile-command/internal/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecordedSimulation(t *testing.T, level defs.LevelDescriptor, opts ...Option) (*Simulation, *recorder) {
	t.Helper()
	sim := NewSimulation(level, append([]Option{WithSeed(42)}, opts...)...)
	rec := &recorder{}
	sim.Dispatcher.Subscribe(rec, event.All...)
	return sim, rec
}

func TestNewSimulation_PlacesTargets(t *testing.T) {
	level := defs.DefaultLevel()
	sim := NewSimulation(level, WithSeed(1))

	require.Len(t, sim.World.Targets, len(level.Launchers)+len(level.Homes))
	assert.Equal(t, component.KindLauncher, sim.World.Targets[0].Kind())
	assert.Equal(t, component.KindHome, sim.World.Targets[len(level.Launchers)].Kind())
	assert.Equal(t, component.OutcomeRunning, sim.Outcome())
	assert.Equal(t, component.WaveState{}, sim.WaveState())
}

func TestSimulation_FirstSpawnOnSecondTick(t *testing.T) {
	sim, rec := newRecordedSimulation(t, defs.DefaultLevel())

	sim.Tick()
	assert.Empty(t, sim.World.Projectiles)
	assert.InDelta(t, -config.TickMillis, sim.WaveState().Countdown, 1e-9)

	sim.Tick()
	require.Len(t, sim.World.Projectiles, 1)
	assert.Equal(t, 1, rec.count(event.ProjectileSpawned))

	p := sim.World.Projectiles[0]
	assert.Equal(t, 0.0, p.Origin().Y)
	assert.GreaterOrEqual(t, p.Origin().X, 0.0)
	assert.Less(t, p.Origin().X, float64(config.ScreenWidth))
	assert.InDelta(t, 1.9, p.Distance(), 1e-9, "a projectile moves on the tick it spawns")
	assert.Equal(t, 1, sim.WaveState().Spawned)
}

func TestSimulation_EmptyTickOnlyCountsDown(t *testing.T) {
	sim, rec := newRecordedSimulation(t, defs.DefaultLevel())
	before := sim.WaveState()

	sim.Tick()

	after := sim.WaveState()
	assert.Equal(t, before.Level, after.Level)
	assert.Equal(t, before.Spawned, after.Spawned)
	assert.Equal(t, before.Destroyed, after.Destroyed)
	assert.InDelta(t, before.Countdown-config.TickMillis, after.Countdown, 1e-9)
	assert.Empty(t, sim.World.Projectiles)
	assert.Empty(t, sim.World.Interceptors)
	assert.Equal(t, 1, rec.count(event.TickCompleted))
	assert.Len(t, rec.events, 1)
}

func TestSimulation_LostWithoutTargets(t *testing.T) {
	sim, rec := newRecordedSimulation(t, defs.LevelDescriptor{})

	sim.Tick()
	assert.Equal(t, component.OutcomeRunning, sim.Outcome())

	sim.Tick()
	assert.Equal(t, component.OutcomeLost, sim.Outcome())
	require.Equal(t, 1, rec.count(event.SessionEnded))
	assert.Equal(t, component.OutcomeLost, rec.events[len(rec.events)-1].Data)
	assert.Equal(t, 0, sim.WaveState().Spawned)

	ticks := sim.Ticks()
	sim.Tick()
	assert.Equal(t, ticks, sim.Ticks(), "ended session does not tick")
}

func TestSimulation_VictoryOnExhaustedTable(t *testing.T) {
	sim, rec := newRecordedSimulation(t, defs.DefaultLevel(), WithWaveTable(defs.NewWaveTable(0)))

	sim.Tick()
	assert.Equal(t, component.OutcomeVictory, sim.Outcome())
	assert.Equal(t, 1, rec.count(event.SessionEnded))
	assert.Equal(t, component.OutcomeVictory, sim.Frame().Outcome)
}

func TestSimulation_PauseSkipsTicks(t *testing.T) {
	sim := NewSimulation(defs.DefaultLevel(), WithSeed(3))

	sim.Pause()
	sim.Tick()
	assert.Zero(t, sim.Ticks())
	assert.True(t, sim.Frame().Paused)

	assert.False(t, sim.TogglePause())
	sim.Tick()
	assert.EqualValues(t, 1, sim.Ticks())

	sim.Pause()
	sim.Resume()
	assert.False(t, sim.Paused())
}

func TestSimulation_Interception(t *testing.T) {
	level := defs.LevelDescriptor{
		Launchers: []defs.Point{{X: 190, Y: 530}},
		Homes:     []defs.Point{{X: 55, Y: 540}},
	}
	sim, rec := newRecordedSimulation(t, level)

	target := component.NewHome(component.Position{X: 190, Y: 540})
	pid := sim.World.AddProjectile(component.NewProjectile(component.Position{X: 200, Y: 0}, 0, target, 10))

	_, err := sim.Launch(component.Position{X: 200, Y: 300})
	require.NoError(t, err)

	for n := 0; n < 60 && sim.Stats().Intercepted == 0; n++ {
		sim.Tick()
	}

	stats := sim.Stats()
	assert.Equal(t, 1, stats.Intercepted)
	assert.Zero(t, stats.Impacted)
	assert.Equal(t, 1, stats.Launched)
	assert.Equal(t, 1, sim.WaveState().Destroyed)
	for _, p := range sim.World.Projectiles {
		assert.NotEqual(t, pid, p.ID)
	}

	require.Equal(t, 1, rec.count(event.ProjectileIntercepted))
	for _, e := range rec.events {
		if e.Type == event.ProjectileIntercepted {
			hit := e.Data.(system.Hit)
			assert.Equal(t, pid, hit.ProjectileID)
		}
	}
	assert.Equal(t, 1, rec.count(event.InterceptorDetonated))
}

func TestSimulation_ImpactLeavesTarget(t *testing.T) {
	level := defs.LevelDescriptor{Homes: []defs.Point{{X: 190, Y: 100}}}
	sim, rec := newRecordedSimulation(t, level)

	home := sim.World.Targets[0]
	sim.World.AddProjectile(component.NewProjectile(component.Position{X: 200, Y: 0}, home.ID, home.GroundTarget, 10))

	for n := 0; n < 10; n++ {
		sim.Tick()
	}

	assert.Equal(t, 1, sim.Stats().Impacted)
	assert.Equal(t, 1, sim.WaveState().Destroyed, "impacts count toward the quota")
	assert.Equal(t, 1, rec.count(event.ProjectileImpacted))
	require.Len(t, sim.World.Targets, 1, "targets are never destroyed")
}

func TestSimulation_WaveAdvanceEvent(t *testing.T) {
	sim, rec := newRecordedSimulation(t, defs.DefaultLevel(), WithWaveTable(defs.NewWaveTable(2)))

	// Reach the quota directly; the next tick advances.
	for n := 0; n < 10; n++ {
		sim.WaveSystem.RecordHit(&sim.wave)
	}
	sim.Tick()

	assert.Equal(t, 1, sim.WaveState().Level)
	assert.Equal(t, 1, rec.count(event.WaveAdvanced))
	assert.Equal(t, 1, sim.Stats().WavesCompleted)
	assert.Equal(t, 11, sim.Frame().Quota)
}
