package component

// Outcome is the session state seen by the loop and renderers.
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeVictory         // wave table exhausted
	OutcomeLost            // no ground target left to attack
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeVictory:
		return "victory"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}
