// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState keeps showing the final frame until the player restarts or quits.
type GameOverState struct {
	sm   *StateMachine
	game *GameState
}

func NewGameOverState(sm *StateMachine, game *GameState) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (s *GameOverState) Enter() {
	stats := s.game.Simulation().Stats()
	s.game.logger.Info().
		Str("outcome", s.game.Simulation().Outcome().String()).
		Int("waves", stats.WavesCompleted).
		Int("launched", stats.Launched).
		Msg("Game over")
}

func (s *GameOverState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.game.newSession, s.game.renderer, s.game.button, s.game.logger))
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
}

func (s *GameOverState) Exit() {}
