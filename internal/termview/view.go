// internal/termview/view.go
package termview

import (
	"image/color"
	"math"

	"go-missile-command/internal/component"
	"go-missile-command/internal/frame"
	"go-missile-command/pkg/palette"
	pkgRender "go-missile-command/pkg/render"
	"go-missile-command/pkg/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	targetRune      = '█'
	projectileRune  = '*'
	projectileTrail = '.'
	interceptorRune = '^'
	interceptTrail  = '\''
	blastRune       = 'o'
)

// View maps the simulation surface onto a terminal grid.
type View struct {
	screen   tcell.Screen
	surfaceW float64
	surfaceH float64
	gradient *palette.Gradient
	colors   pkgRender.Colors
}

func New(screen tcell.Screen, surfaceW, surfaceH float64, gradient *palette.Gradient, colors pkgRender.Colors) *View {
	return &View{
		screen:   screen,
		surfaceW: surfaceW,
		surfaceH: surfaceH,
		gradient: gradient,
		colors:   colors,
	}
}

// ToCell converts a surface position to a cell, clamped to the grid.
func (v *View) ToCell(p component.Position) (col, row int) {
	cols, rows := v.screen.Size()
	col = utils.ClampInt(int(p.X/v.surfaceW*float64(cols)), 0, cols-1)
	row = utils.ClampInt(int(p.Y/v.surfaceH*float64(rows)), 0, rows-1)
	return col, row
}

// ToSurface returns the surface position at the centre of a cell.
func (v *View) ToSurface(col, row int) component.Position {
	cols, rows := v.screen.Size()
	return component.Position{
		X: (float64(col) + 0.5) * v.surfaceW / float64(cols),
		Y: (float64(row) + 0.5) * v.surfaceH / float64(rows),
	}
}

// Draw paints one frame and shows it.
func (v *View) Draw(f frame.Frame) {
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	bg := v.gradient.Column(rows)
	for row := 0; row < rows; row++ {
		style := tcell.StyleDefault.Background(toTcell(pkgRender.ToRGBA(bg[row])))
		for col := 0; col < cols; col++ {
			v.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	for _, t := range f.Targets {
		c := v.colors.Home
		if t.Kind == component.KindLauncher {
			c = v.colors.Launcher
		}
		c0, r0 := v.ToCell(component.Position{X: t.X, Y: t.Y})
		c1, r1 := v.ToCell(component.Position{X: t.X + t.W - 1e-9, Y: t.Y + t.H - 1e-9})
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				v.put(col, row, targetRune, c, bg[row])
			}
		}
	}

	trail := pkgRender.DarkenColor(v.colors.Projectile)
	for _, p := range f.Projectiles {
		v.line(p.OriginX, p.OriginY, p.X, p.Y, projectileTrail, trail, bg)
		col, row := v.ToCell(component.Position{X: p.X, Y: p.Y})
		v.put(col, row, projectileRune, v.colors.Projectile, bg[row])
	}

	for _, i := range f.Interceptors {
		if !i.Exploded {
			v.line(i.OriginX, i.OriginY, i.X, i.Y, interceptTrail, v.colors.Interceptor, bg)
			col, row := v.ToCell(component.Position{X: i.X, Y: i.Y})
			v.put(col, row, interceptorRune, v.colors.Interceptor, bg[row])
			continue
		}
		v.blast(i, bg)
	}

	hud := tcell.StyleDefault.Foreground(toTcell(v.colors.Text))
	for n, line := range frame.HUDLines(f) {
		if n >= rows {
			break
		}
		v.text(1, n, line, hud.Background(toTcell(pkgRender.ToRGBA(bg[n]))))
	}

	if msg, ok := frame.Banner(f); ok {
		c := v.colors.Text
		switch f.Outcome {
		case component.OutcomeVictory:
			c = v.colors.Victory
		case component.OutcomeLost:
			c = v.colors.Defeat
		}
		row := rows / 2
		style := tcell.StyleDefault.Foreground(toTcell(c)).Reverse(true)
		v.text((cols-len(msg))/2, row, msg, style)
	}

	v.screen.Show()
}

func (v *View) blast(i frame.InterceptorState, bg []colorful.Color) {
	c0, r0 := v.ToCell(component.Position{X: i.X - i.Radius, Y: i.Y - i.Radius})
	c1, r1 := v.ToCell(component.Position{X: i.X + i.Radius, Y: i.Y + i.Radius})
	center := component.Position{X: i.X, Y: i.Y}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if v.ToSurface(col, row).DistanceTo(center) < i.Radius {
				v.put(col, row, blastRune, v.colors.Blast, bg[row])
			}
		}
	}
}

// line marks the cells between two surface points, excluding the last one.
func (v *View) line(x0, y0, x1, y1 float64, r rune, c color.RGBA, bg []colorful.Color) {
	ca, ra := v.ToCell(component.Position{X: x0, Y: y0})
	cb, rb := v.ToCell(component.Position{X: x1, Y: y1})
	steps := max(utils.Abs(cb-ca), utils.Abs(rb-ra))
	for s := 0; s < steps; s++ {
		t := float64(s) / float64(steps)
		col := ca + int(math.Round(t*float64(cb-ca)))
		row := ra + int(math.Round(t*float64(rb-ra)))
		v.put(col, row, r, c, bg[row])
	}
}

func (v *View) put(col, row int, r rune, fg color.RGBA, bg colorful.Color) {
	style := tcell.StyleDefault.
		Foreground(toTcell(fg)).
		Background(toTcell(pkgRender.ToRGBA(bg)))
	v.screen.SetContent(col, row, r, nil, style)
}

func (v *View) text(col, row int, s string, style tcell.Style) {
	cols, _ := v.screen.Size()
	for _, r := range s {
		if col >= cols {
			return
		}
		if col >= 0 {
			v.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
