// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-missile-command/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState is the title screen shown before play.
type MenuState struct {
	sm    *StateMachine
	start func() State
}

func NewMenuState(sm *StateMachine, start func() State) *MenuState {
	return &MenuState{sm: sm, start: start}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.start())
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	msg := "MISSILE COMMAND - click or press Space"
	bounds := text.BoundString(basicfont.Face7x13, msg)
	text.Draw(screen, msg, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextColor)
}

func (m *MenuState) Exit() {}
