// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors holds the colours a frame renderer needs.
type Colors struct {
	Launcher    color.RGBA
	Home        color.RGBA
	Projectile  color.RGBA
	Interceptor color.RGBA
	Blast       color.RGBA
	Text        color.RGBA
	Overlay     color.RGBA
	Victory     color.RGBA
	Defeat      color.RGBA
}

// ToRGBA converts a gradient sample to an opaque RGBA.
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// BlastAlpha fades a blast as it shrinks: full at fullRadius, half at zero.
func BlastAlpha(c color.RGBA, radius, fullRadius float64) color.RGBA {
	if fullRadius <= 0 {
		return c
	}
	k := 0.5 + 0.5*radius/fullRadius
	if k > 1 {
		k = 1
	}
	c.A = uint8(float64(c.A) * k)
	return c
}
