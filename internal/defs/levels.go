// internal/defs/levels.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-missile-command/pkg/palette"
)

//go:embed levels/default.json
var defaultLevel []byte

// ErrInvalidGradient is returned for a background stop outside [0, 1].
var ErrInvalidGradient = errors.New("gradient stop position out of range")

// Point is a top-left placement in surface coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GradientStop is one background colour stop.
type GradientStop struct {
	Position float64 `json:"position"`
	Colour   string  `json:"colour"`
}

// LevelDescriptor is the session layout. RocketCount, AttackRate and Timer
// are advisory and only passed through to the HUD.
type LevelDescriptor struct {
	Launchers   []Point        `json:"launchers"`
	Homes       []Point        `json:"homes"`
	Background  []GradientStop `json:"background"`
	RocketCount int            `json:"rocketCount"`
	AttackRate  float64        `json:"attackRate"`
	Timer       int            `json:"timer"`
}

// Validate checks the gradient stops.
func (l LevelDescriptor) Validate() error {
	_, err := l.Gradient()
	return err
}

// Gradient parses the background stops.
func (l LevelDescriptor) Gradient() (*palette.Gradient, error) {
	stops := make([]palette.Stop, 0, len(l.Background))
	for i, stop := range l.Background {
		if stop.Position < 0 || stop.Position > 1 {
			return nil, fmt.Errorf("background stop %d at %v: %w", i, stop.Position, ErrInvalidGradient)
		}
		c, err := palette.ParseColour(stop.Colour)
		if err != nil {
			return nil, fmt.Errorf("background stop %d: %w", i, err)
		}
		stops = append(stops, palette.Stop{Position: stop.Position, Colour: c})
	}
	return palette.New(stops...), nil
}

// ParseLevel decodes and validates a level descriptor.
func ParseLevel(data []byte) (LevelDescriptor, error) {
	var level LevelDescriptor
	if err := json.Unmarshal(data, &level); err != nil {
		return LevelDescriptor{}, fmt.Errorf("failed to unmarshal level descriptor: %w", err)
	}
	if err := level.Validate(); err != nil {
		return LevelDescriptor{}, err
	}
	return level, nil
}

// LoadLevel reads a level descriptor file.
func LoadLevel(path string) (LevelDescriptor, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return LevelDescriptor{}, fmt.Errorf("failed to read level descriptor: %w", err)
	}
	return ParseLevel(file)
}

// DefaultLevel returns the built-in first level.
func DefaultLevel() LevelDescriptor {
	level, err := ParseLevel(defaultLevel)
	if err != nil {
		panic(fmt.Sprintf("embedded level is invalid: %v", err))
	}
	return level
}
