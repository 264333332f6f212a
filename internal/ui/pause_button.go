// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton is a round pause/play toggle for pointer and touch input.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastToggleTime time.Time
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Contains reports whether a screen point is on the button.
func (b *PauseButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

// Toggle starts the click pulse.
func (b *PauseButton) Toggle() {
	b.LastToggleTime = time.Now()
}

// Scale is the pulse factor: 1.3 right after a toggle, decaying to 1.
func (b *PauseButton) Scale(now time.Time) float32 {
	if b.LastToggleTime.IsZero() {
		return 1
	}
	elapsed := now.Sub(b.LastToggleTime).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

// Draw shows a play triangle while paused and two bars otherwise.
func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	size := b.Size * b.Scale(time.Now())

	if paused {
		// Play triangle.
		x1, y1 := b.X-size*0.6, b.Y-size*0.8
		x2, y2 := b.X-size*0.6, b.Y+size*0.8
		x3, y3 := b.X+size*0.8, b.Y
		vector.StrokeLine(screen, x1, y1, x2, y2, 2, b.PlayColor, true)
		vector.StrokeLine(screen, x2, y2, x3, y3, 2, b.PlayColor, true)
		vector.StrokeLine(screen, x3, y3, x1, y1, 2, b.PlayColor, true)
		return
	}

	// Pause bars.
	width := size * 0.4
	height := size * 1.4
	spacing := size * 0.3
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}
