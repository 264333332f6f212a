// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go-missile-command/internal/app"
	"go-missile-command/internal/config"
	"go-missile-command/internal/render"
	"go-missile-command/internal/state"
	"go-missile-command/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // skip the title screen

type AppGame struct {
	stateMachine  *state.StateMachine
	width, height int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configDir := flag.String("config", ".", "directory holding the settings file")
	flag.Parse()

	boot, err := app.Load(*configDir, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	defer boot.Close()

	width, height := boot.Settings.Screen.Width, boot.Settings.Screen.Height
	renderer := render.NewRenderer(width, height, boot.Gradient)
	button := ui.NewPauseButton(
		float32(width)-config.PauseButtonOffset, config.PauseButtonOffset, config.PauseButtonSize,
		config.TextColor, config.ProjectileColor,
	)

	sm := state.NewStateMachine()
	newSession := func() *app.Simulation { return boot.NewSimulation() }
	startGame := func() state.State { return state.NewGameState(sm, newSession, renderer, button, boot.Logger) }
	if startFromGame {
		sm.SetState(startGame())
	} else {
		sm.SetState(state.NewMenuState(sm, startGame))
	}

	ebiten.SetTPS(boot.Settings.TickRate)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Missile Command")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, width: width, height: height}); err != nil {
		boot.Logger.Error().Err(err).Msg("Game loop failed")
		boot.Close()
		os.Exit(1)
	}
}
