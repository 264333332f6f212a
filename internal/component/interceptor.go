package component

import (
	"go-missile-command/internal/config"
	"go-missile-command/internal/utils"
)

// InterceptorPhase is the lifecycle of an interceptor.
type InterceptorPhase uint8

const (
	PhaseTraveling InterceptorPhase = iota
	PhaseGrowing
	PhaseShrinking
	PhaseSpent // pending removal
)

func (p InterceptorPhase) String() string {
	switch p {
	case PhaseTraveling:
		return "traveling"
	case PhaseGrowing:
		return "growing"
	case PhaseShrinking:
		return "shrinking"
	case PhaseSpent:
		return "spent"
	default:
		return "unknown"
	}
}

// Blast is the circular collision region of a detonated interceptor.
type Blast struct {
	Center Position
	Radius float64
}

// Interceptor is a player shot that detonates at the target altitude.
// distance counts down from zero: the stored value grows more negative.
type Interceptor struct {
	Target         Position
	Speed          float64
	FullRadius     float64
	ExplosionSpeed float64

	origin    Position
	angle     float64
	distance  float64
	exploded  bool
	expanding bool
	radius    float64
}

// NewInterceptor aims an interceptor from origin at the pointer position.
func NewInterceptor(origin, target Position) *Interceptor {
	return &Interceptor{
		Target:         target,
		Speed:          config.InterceptorSpeed,
		FullRadius:     config.InterceptorFullRadius,
		ExplosionSpeed: config.InterceptorExplosionSpeed,
		origin:         origin,
		angle:          utils.LaunchAngle(target.X-origin.X, target.Y-origin.Y),
		expanding:      true,
	}
}

func (i *Interceptor) Kind() Kind        { return KindInterceptor }
func (i *Interceptor) Origin() Position  { return i.origin }
func (i *Interceptor) Angle() float64    { return i.angle }
func (i *Interceptor) Distance() float64 { return i.distance }
func (i *Interceptor) Exploded() bool    { return i.exploded }
func (i *Interceptor) Expanding() bool   { return i.expanding }
func (i *Interceptor) Radius() float64   { return i.radius }

// Pos is derived like a projectile's; it freezes once exploded.
func (i *Interceptor) Pos() Position {
	return i.origin.Along(i.angle, i.distance)
}

// Phase reports the lifecycle stage.
func (i *Interceptor) Phase() InterceptorPhase {
	switch {
	case !i.exploded:
		return PhaseTraveling
	case i.expanding:
		return PhaseGrowing
	case i.radius <= config.InterceptorSpentRadius:
		return PhaseSpent
	default:
		return PhaseShrinking
	}
}

// Spent reports whether the blast has collapsed and the entity can be pruned.
func (i *Interceptor) Spent() bool {
	return i.Phase() == PhaseSpent
}

// Blast returns the collision circle while exploded.
func (i *Interceptor) Blast() (Blast, bool) {
	if !i.exploded {
		return Blast{}, false
	}
	return Blast{Center: i.Pos(), Radius: i.radius}, true
}

// Update advances travel, then the blast radius. The radius starts growing on
// the same tick the interceptor detonates.
func (i *Interceptor) Update() {
	if !i.exploded {
		i.distance -= i.Speed
		if i.Pos().Y < i.Target.Y {
			i.exploded = true
		}
	}
	if !i.exploded {
		return
	}
	if i.expanding {
		i.radius = utils.Clamp(i.radius+i.ExplosionSpeed, 0, i.FullRadius)
		if i.radius >= i.FullRadius {
			i.expanding = false
		}
		return
	}
	i.radius = utils.Clamp(i.radius-i.ExplosionSpeed, 0, i.FullRadius)
}
