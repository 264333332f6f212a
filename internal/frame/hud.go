package frame

import (
	"fmt"

	"go-missile-command/internal/component"
)

// HUDLines is the debug readout drawn in the top-left corner.
func HUDLines(f Frame) []string {
	return []string{
		fmt.Sprintf("Missile launched = %d/%d", f.Spawned, f.Quota),
		fmt.Sprintf("Level = %d", f.Level),
		fmt.Sprintf("Destroyed = %d", f.Destroyed),
		fmt.Sprintf("Rockets = %d  Rate = %g  Timer = %d", f.RocketCount, f.AttackRate, f.Timer),
	}
}

// Banner is the centred message for paused and finished sessions.
func Banner(f Frame) (string, bool) {
	switch f.Outcome {
	case component.OutcomeVictory:
		return "ALL WAVES CLEARED - R to restart, Q to quit", true
	case component.OutcomeLost:
		return "DEFENCES LOST - R to restart, Q to quit", true
	}
	if f.Paused {
		return "PAUSED", true
	}
	return "", false
}
