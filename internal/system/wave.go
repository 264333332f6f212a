// internal/system/wave.go
package system

import (
	"go-missile-command/internal/component"
	"go-missile-command/internal/defs"
)

// SpawnFunc creates one projectile for the given wave.
type SpawnFunc func(wave defs.WaveDefinition) error

// WaveResult reports what one WaveSystem.Update did.
type WaveResult struct {
	Advanced bool
	Spawned  bool
	Wave     defs.WaveDefinition
}

// WaveSystem paces spawning and decides when a wave is complete.
type WaveSystem struct {
	waves      *defs.WaveTable
	tickMillis float64
}

func NewWaveSystem(waves *defs.WaveTable, tickMillis float64) *WaveSystem {
	return &WaveSystem{waves: waves, tickMillis: tickMillis}
}

// Update runs, in order: the wave-advance check, the spawn check and the
// countdown decrement. It returns defs.ErrWaveTableExhausted once the level
// runs past the table, or the spawn error; in both cases the countdown is
// left untouched.
func (s *WaveSystem) Update(state *component.WaveState, spawn SpawnFunc) (WaveResult, error) {
	var res WaveResult

	wave, err := s.waves.Wave(state.Level)
	if err != nil {
		return res, err
	}

	if state.Destroyed == wave.ProjectilesToDestroy {
		state.Level++
		state.Reset()
		res.Advanced = true

		wave, err = s.waves.Wave(state.Level)
		if err != nil {
			return res, err
		}
	}
	res.Wave = wave

	if state.Countdown < 0 && state.Spawned < wave.ProjectilesToDestroy {
		if err := spawn(wave); err != nil {
			return res, err
		}
		state.Spawned++
		state.Countdown += wave.SpawnIntervalMs
		res.Spawned = true
	}

	state.Countdown -= s.tickMillis
	return res, nil
}

// RecordHit counts a destroyed projectile and opens the spawn window at once.
func (s *WaveSystem) RecordHit(state *component.WaveState) {
	state.Destroyed++
	state.Countdown = 0
}

// Current returns the definition for the state's level.
func (s *WaveSystem) Current(state component.WaveState) (defs.WaveDefinition, error) {
	return s.waves.Wave(state.Level)
}
