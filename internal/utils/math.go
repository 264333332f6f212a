// internal/utils/math.go
package utils

import (
	"math"

	"go-missile-command/internal/config"
)

// LaunchAngle returns atan(dx/dy), the heading shared by projectiles and
// interceptors. It is the two-quadrant form: a shot whose target lies above
// its origin gets the same angle as the mirrored shot below it, and callers
// rely on the sign of their distance to pick the direction.
// A zero dy is replaced by config.AngleEpsilon so the angle stays finite.
func LaunchAngle(dx, dy float64) float64 {
	if dy == 0 {
		dy = config.AngleEpsilon
	}
	return math.Atan(dx / dy)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp maps t in [0, 1] onto [from, to].
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
