// internal/render/renderer.go
package render

import (
	"image"

	"go-missile-command/internal/component"
	"go-missile-command/internal/config"
	"go-missile-command/internal/frame"
	"go-missile-command/pkg/palette"
	pkgRender "go-missile-command/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws frames onto an ebiten screen.
type Renderer struct {
	width, height int
	background    *ebiten.Image
	fontFace      font.Face
	colors        pkgRender.Colors
}

// NewRenderer pre-renders the level background once.
func NewRenderer(width, height int, gradient *palette.Gradient) *Renderer {
	return &Renderer{
		width:      width,
		height:     height,
		background: ebiten.NewImageFromImage(BackgroundImage(width, height, gradient)),
		fontFace:   basicfont.Face7x13,
		colors:     config.Palette(),
	}
}

// BackgroundImage paints the vertical gradient into an RGBA image.
func BackgroundImage(width, height int, gradient *palette.Gradient) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, c := range gradient.Column(height) {
		rgba := pkgRender.ToRGBA(c)
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, rgba)
		}
	}
	return img
}

func (r *Renderer) Draw(screen *ebiten.Image, f frame.Frame) {
	screen.DrawImage(r.background, nil)

	for _, t := range f.Targets {
		c := r.colors.Home
		if t.Kind == component.KindLauncher {
			c = r.colors.Launcher
		}
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.W), float32(t.H), c, false)
	}

	trail := pkgRender.DarkenColor(r.colors.Projectile)
	for _, p := range f.Projectiles {
		vector.StrokeLine(screen, float32(p.OriginX), float32(p.OriginY), float32(p.X), float32(p.Y), config.TrailWidth, trail, true)
		vector.DrawFilledRect(screen, float32(p.X)-1, float32(p.Y)-1, 2, 2, r.colors.Projectile, false)
	}

	for _, i := range f.Interceptors {
		if !i.Exploded {
			vector.StrokeLine(screen, float32(i.OriginX), float32(i.OriginY), float32(i.X), float32(i.Y), config.TrailWidth, r.colors.Interceptor, true)
			continue
		}
		c := pkgRender.BlastAlpha(r.colors.Blast, i.Radius, config.InterceptorFullRadius)
		vector.DrawFilledCircle(screen, float32(i.X), float32(i.Y), float32(i.Radius), c, true)
	}

	for n, line := range frame.HUDLines(f) {
		y := config.HUDOffsetY + (n+1)*config.HUDLineHeight
		text.Draw(screen, line, r.fontFace, config.HUDOffsetX, y, r.colors.Text)
	}

	if msg, ok := frame.Banner(f); ok {
		vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), r.colors.Overlay, false)
		c := r.colors.Text
		switch f.Outcome {
		case component.OutcomeVictory:
			c = r.colors.Victory
		case component.OutcomeLost:
			c = r.colors.Defeat
		}
		bounds := text.BoundString(r.fontFace, msg)
		x := (r.width - bounds.Dx()) / 2
		text.Draw(screen, msg, r.fontFace, x, r.height/2, c)
	}
}
