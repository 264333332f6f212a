// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PauseState must satisfy State.
var _ State = (*PauseState)(nil)

// PauseState freezes the simulation; the frame carries the paused flag so
// the game view draws the banner itself.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.Simulation().Pause()
}

func (s *PauseState) Update() error {
	resume := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	for _, p := range s.previousState.justPressed() {
		if s.previousState.onButton(p[0], p[1]) {
			resume = true
		}
	}
	if resume {
		if s.previousState.button != nil {
			s.previousState.button.Toggle()
		}
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
}

func (s *PauseState) Exit() {
	s.previousState.Simulation().Resume()
}
