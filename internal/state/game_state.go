// internal/state/game_state.go
package state

import (
	"go-missile-command/internal/app"
	"go-missile-command/internal/component"
	"go-missile-command/internal/render"
	"go-missile-command/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// SessionFactory builds a fresh simulation for a new game.
type SessionFactory func() *app.Simulation

// GameState drives one simulation: one ebiten Update is one tick.
type GameState struct {
	sm         *StateMachine
	sim        *app.Simulation
	renderer   *render.Renderer
	button     *ui.PauseButton // optional
	newSession SessionFactory
	logger     zerolog.Logger
	touches    []ebiten.TouchID
}

func NewGameState(sm *StateMachine, newSession SessionFactory, renderer *render.Renderer, button *ui.PauseButton, logger zerolog.Logger) *GameState {
	return &GameState{
		sm:         sm,
		sim:        newSession(),
		renderer:   renderer,
		button:     button,
		newSession: newSession,
		logger:     logger,
	}
}

func (g *GameState) Simulation() *app.Simulation {
	return g.sim
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return nil
	}

	for _, p := range g.justPressed() {
		if g.onButton(p[0], p[1]) {
			g.pause()
			return nil
		}
		g.launch(p[0], p[1])
	}

	g.sim.Tick()

	if g.sim.Outcome() != component.OutcomeRunning {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
	return nil
}

// justPressed collects this frame's new mouse and touch presses.
func (g *GameState) justPressed() [][2]int {
	var points [][2]int
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, [2]int{x, y})
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		points = append(points, [2]int{x, y})
	}
	return points
}

func (g *GameState) onButton(x, y int) bool {
	return g.button != nil && g.button.Contains(x, y)
}

func (g *GameState) pause() {
	if g.button != nil {
		g.button.Toggle()
	}
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) launch(x, y int) {
	if _, err := g.sim.Launch(component.Position{X: float64(x), Y: float64(y)}); err != nil {
		g.logger.Warn().Err(err).Int("x", x).Int("y", y).Msg("Launch ignored")
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.Frame())
	if g.button != nil && g.sim.Outcome() == component.OutcomeRunning {
		g.button.Draw(screen, g.sim.Paused())
	}
}

func (g *GameState) Exit() {}
