package component

import (
	"math"

	"go-missile-command/internal/types"
	"go-missile-command/internal/utils"
)

// Projectile is a descending hostile shot. Its position is derived from
// origin, angle and distance; angle never changes and distance only grows.
type Projectile struct {
	TargetID types.EntityID
	Target   GroundTarget
	Speed    float64

	origin   Position
	angle    float64
	distance float64
}

// NewProjectile aims a projectile from origin at the target's aim point.
func NewProjectile(origin Position, targetID types.EntityID, target GroundTarget, speed float64) *Projectile {
	aim := target.AimPoint()
	return &Projectile{
		TargetID: targetID,
		Target:   target,
		Speed:    speed,
		origin:   origin,
		angle:    utils.LaunchAngle(aim.X-origin.X, aim.Y-origin.Y),
	}
}

func (p *Projectile) Kind() Kind        { return KindProjectile }
func (p *Projectile) Origin() Position  { return p.origin }
func (p *Projectile) Angle() float64    { return p.angle }
func (p *Projectile) Distance() float64 { return p.distance }

// Pos is origin + distance·(sin θ, cos θ).
func (p *Projectile) Pos() Position {
	return p.origin.Along(p.angle, p.distance)
}

// PrevPos is where the projectile was one tick ago, never before its origin.
func (p *Projectile) PrevPos() Position {
	return p.origin.Along(p.angle, math.Max(0, p.distance-p.Speed))
}

// Update moves the projectile one tick along its heading.
func (p *Projectile) Update() {
	p.distance += p.Speed
}
