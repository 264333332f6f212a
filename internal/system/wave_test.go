package system

import (
	"errors"
	"testing"

	"go-missile-command/internal/component"
	"go-missile-command/internal/config"
	"go-missile-command/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnCounter struct {
	calls int
	err   error
}

func (c *spawnCounter) spawn(defs.WaveDefinition) error {
	if c.err != nil {
		return c.err
	}
	c.calls++
	return nil
}

func newWaveSystem() *WaveSystem {
	return NewWaveSystem(defs.DefaultWaveTable(), config.TickMillis)
}

func TestWaveSystem_FirstTickOnlyCountsDown(t *testing.T) {
	ws := newWaveSystem()
	state := component.WaveState{}
	c := &spawnCounter{}

	res, err := ws.Update(&state, c.spawn)
	require.NoError(t, err)

	assert.False(t, res.Advanced)
	assert.False(t, res.Spawned)
	assert.Equal(t, 0, c.calls)
	assert.Equal(t, component.WaveState{Countdown: -config.TickMillis}, state)
}

func TestWaveSystem_SpawnAddsInterval(t *testing.T) {
	ws := newWaveSystem()
	state := component.WaveState{Countdown: -1}
	c := &spawnCounter{}

	res, err := ws.Update(&state, c.spawn)
	require.NoError(t, err)

	assert.True(t, res.Spawned)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, 1, state.Spawned)
	assert.InDelta(t, -1+3000-config.TickMillis, state.Countdown, 1e-9)
}

func TestWaveSystem_StopsSpawningAtQuota(t *testing.T) {
	ws := newWaveSystem()
	state := component.WaveState{Countdown: -1, Spawned: 10, Destroyed: 4}
	c := &spawnCounter{}

	for i := 0; i < 50; i++ {
		res, err := ws.Update(&state, c.spawn)
		require.NoError(t, err)
		assert.False(t, res.Advanced, "spawned == quota must not advance the wave")
	}
	assert.Equal(t, 0, c.calls)
	assert.Equal(t, 0, state.Level)
}

func TestWaveSystem_AdvancesExactlyAtQuota(t *testing.T) {
	ws := newWaveSystem()
	state := component.WaveState{Countdown: 500, Spawned: 10, Destroyed: 9}
	c := &spawnCounter{}

	_, err := ws.Update(&state, c.spawn)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Level)

	ws.RecordHit(&state)
	assert.Equal(t, 10, state.Destroyed)
	assert.Equal(t, 0.0, state.Countdown)

	res, err := ws.Update(&state, c.spawn)
	require.NoError(t, err)
	assert.True(t, res.Advanced)
	assert.Equal(t, 11, res.Wave.ProjectilesToDestroy)
	assert.Equal(t, component.WaveState{Level: 1, Countdown: -config.TickMillis}, state)
}

func TestWaveSystem_RecordHitOpensSpawnWindow(t *testing.T) {
	ws := newWaveSystem()
	state := component.WaveState{Countdown: 2000, Spawned: 3, Destroyed: 1}
	c := &spawnCounter{}

	ws.RecordHit(&state)
	_, err := ws.Update(&state, c.spawn) // 0 -> -tick
	require.NoError(t, err)
	assert.Equal(t, 0, c.calls)

	res, err := ws.Update(&state, c.spawn)
	require.NoError(t, err)
	assert.True(t, res.Spawned)
	assert.Equal(t, 4, state.Spawned)
}

func TestWaveSystem_ExhaustedTable(t *testing.T) {
	ws := NewWaveSystem(defs.NewWaveTable(1), config.TickMillis)
	state := component.WaveState{Spawned: 10, Destroyed: 10}
	c := &spawnCounter{}

	res, err := ws.Update(&state, c.spawn)
	assert.ErrorIs(t, err, defs.ErrWaveTableExhausted)
	assert.True(t, res.Advanced)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 0.0, state.Countdown)
}

func TestWaveSystem_SpawnErrorLeavesCounters(t *testing.T) {
	ws := newWaveSystem()
	state := component.WaveState{Countdown: -1}
	boom := errors.New("no targets")
	c := &spawnCounter{err: boom}

	_, err := ws.Update(&state, c.spawn)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, component.WaveState{Countdown: -1}, state)
}
