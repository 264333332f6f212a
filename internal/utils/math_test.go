package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchAngle_TwoQuadrant(t *testing.T) {
	assert.InDelta(t, math.Atan(100.0/-30.0), LaunchAngle(100, -30), 1e-12)
	assert.InDelta(t, math.Pi/4, LaunchAngle(10, 10), 1e-12)

	// Mirrored through the origin yields the same angle.
	assert.Equal(t, LaunchAngle(10, 10), LaunchAngle(-10, -10))
}

func TestLaunchAngle_ZeroVerticalDelta(t *testing.T) {
	right := LaunchAngle(50, 0)
	left := LaunchAngle(-50, 0)
	still := LaunchAngle(0, 0)

	assert.False(t, math.IsNaN(right) || math.IsInf(right, 0))
	assert.InDelta(t, math.Pi/2, right, 1e-6)
	assert.InDelta(t, -math.Pi/2, left, 1e-6)
	assert.Equal(t, 0.0, still)
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 15.0, Lerp(10, 20, 0.5))
}
