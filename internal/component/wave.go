package component

// WaveState tracks progress through the current level. Countdown is in
// milliseconds; a spawn is due once it drops below zero.
type WaveState struct {
	Level     int
	Countdown float64
	Spawned   int
	Destroyed int
}

// Reset clears the per-wave counters, keeping the level.
func (w *WaveState) Reset() {
	w.Countdown = 0
	w.Spawned = 0
	w.Destroyed = 0
}
