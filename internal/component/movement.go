// component/movement.go
package component

import "math"

// Position is a point in surface coordinates, y grows downward.
type Position struct {
	X, Y float64
}

// Along returns the point reached after travelling distance from p along angle,
// where the angle is measured from the +Y axis: (sin a, cos a).
func (p Position) Along(angle, distance float64) Position {
	return Position{
		X: math.Sin(angle)*distance + p.X,
		Y: math.Cos(angle)*distance + p.Y,
	}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Position) DistanceTo(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
