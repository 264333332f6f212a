package defs

import (
	"errors"
	"fmt"
)

// TotalWaves is the number of levels the default table generates.
const TotalWaves = 40

// ErrWaveTableExhausted is returned for a level past the generated table.
var ErrWaveTableExhausted = errors.New("wave table exhausted")

// WaveDefinition describes the spawn parameters of one level.
type WaveDefinition struct {
	ProjectilesToDestroy int     // Quota that completes the wave
	SplitChance          int     // Percent, split-warhead variant
	SecondaryChance      int     // Percent, secondary-warhead variant
	FastChance           int     // Percent, fast variant
	SpawnIntervalMs      float64 // Countdown added after each spawn
	ProjectileSpeed      float64 // Distance per tick
}

// WaveTable is generated once and read-only afterwards.
type WaveTable struct {
	waves []WaveDefinition
}

// NewWaveTable generates the closed-form parameters for levels [0, levels).
func NewWaveTable(levels int) *WaveTable {
	if levels < 0 {
		levels = 0
	}
	waves := make([]WaveDefinition, levels)
	for i := range waves {
		waves[i] = WaveDefinition{
			ProjectilesToDestroy: 10 + i,
			SplitChance:          30 + i*4,
			SecondaryChance:      i * 2,
			FastChance:           5,
			SpawnIntervalMs:      float64(3000 - i*200),
			ProjectileSpeed:      1.9 + float64(i)/4,
		}
	}
	return &WaveTable{waves: waves}
}

// DefaultWaveTable returns the TotalWaves-level table.
func DefaultWaveTable() *WaveTable {
	return NewWaveTable(TotalWaves)
}

// Len returns the number of generated levels.
func (t *WaveTable) Len() int {
	return len(t.waves)
}

// Wave returns the definition for level, or ErrWaveTableExhausted.
func (t *WaveTable) Wave(level int) (WaveDefinition, error) {
	if level < 0 || level >= len(t.waves) {
		return WaveDefinition{}, fmt.Errorf("level %d: %w", level, ErrWaveTableExhausted)
	}
	return t.waves[level], nil
}
