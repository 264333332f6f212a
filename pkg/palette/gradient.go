// pkg/palette/gradient.go
package palette

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColour is returned for colour strings ParseColour cannot read.
var ErrInvalidColour = errors.New("invalid colour")

// ParseColour reads "#rrggbb", "#rgb" or "rgb(r, g, b)".
func ParseColour(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColour)
		}
		return c, nil
	}

	var r, g, b int
	compact := strings.ReplaceAll(s, " ", "")
	if _, err := fmt.Sscanf(compact, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
		return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColour)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return colorful.Color{}, fmt.Errorf("%q: component %d out of range: %w", s, v, ErrInvalidColour)
		}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}

// Stop is a colour at a position in [0, 1].
type Stop struct {
	Position float64
	Colour   colorful.Color
}

// Gradient is a vertical linear gradient, top (0) to bottom (1).
type Gradient struct {
	stops []Stop
}

// New sorts a copy of stops by position. Equal positions keep their order.
func New(stops ...Stop) *Gradient {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b Stop) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})
	return &Gradient{stops: sorted}
}

// At samples the gradient. Outside the first and last stop the end colours
// extend; an empty gradient is black.
func (g *Gradient) At(t float64) colorful.Color {
	if len(g.stops) == 0 {
		return colorful.Color{}
	}
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Position {
		return first.Colour
	}
	if t >= last.Position {
		return last.Colour
	}

	for i := 0; i < len(g.stops)-1; i++ {
		a, b := g.stops[i], g.stops[i+1]
		if t < a.Position || t >= b.Position {
			continue
		}
		span := b.Position - a.Position
		if span == 0 {
			return b.Colour
		}
		return a.Colour.BlendRgb(b.Colour, (t-a.Position)/span).Clamped()
	}
	return last.Colour
}

// Column samples n evenly spaced rows, at each row's centre.
func (g *Gradient) Column(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = g.At((float64(i) + 0.5) / float64(n))
	}
	return out
}
