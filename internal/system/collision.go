package system

import (
	"go-missile-command/internal/component"
	"go-missile-command/internal/entity"
	"go-missile-command/internal/types"
	"go-missile-command/internal/utils"
)

// HitCause tells why a projectile was removed.
type HitCause uint8

const (
	HitIntercepted HitCause = iota // inside a blast
	HitImpact                      // reached its ground target
)

// Hit is one projectile removed during a tick.
type Hit struct {
	ProjectileID  types.EntityID
	Cause         HitCause
	InterceptorID types.EntityID // set for HitIntercepted
	TargetID      types.EntityID // set for HitImpact
	Pos           component.Position
}

// PointInTarget is the projectile-vs-target test. It is one-sided in x:
// any point at or right of the left edge within the vertical span hits.
func PointInTarget(p component.Position, t component.GroundTarget) bool {
	return p.X >= t.TopLeft.X &&
		p.Y >= t.TopLeft.Y &&
		p.Y <= t.TopLeft.Y+t.Height
}

// SweptTarget extends PointInTarget over one tick of travel from prev to cur.
// A step that crosses the top edge hits when the crossing lies at or right
// of the left edge, so fast projectiles cannot skip the target's band.
func SweptTarget(prev, cur component.Position, t component.GroundTarget) bool {
	if PointInTarget(cur, t) {
		return true
	}
	top := t.TopLeft.Y
	if prev.Y >= top || cur.Y <= top {
		return false
	}
	x := utils.Lerp(prev.X, cur.X, (top-prev.Y)/(cur.Y-prev.Y))
	return x >= t.TopLeft.X
}

// PointInBlast reports whether p lies strictly inside the blast circle.
func PointInBlast(p component.Position, b component.Blast) bool {
	return p.DistanceTo(b.Center) < b.Radius
}

// CollisionSystem resolves projectiles against blasts, then against targets.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Update returns at most one Hit per projectile, in projectile order.
// Every projectile is checked against every blast before any target test.
func (s *CollisionSystem) Update(projectiles []entity.Projectile, interceptors []entity.Interceptor) []Hit {
	if len(projectiles) == 0 {
		return nil
	}

	type blast struct {
		id types.EntityID
		component.Blast
	}
	blasts := make([]blast, 0, len(interceptors))
	for _, i := range interceptors {
		if b, ok := i.Blast(); ok {
			blasts = append(blasts, blast{id: i.ID, Blast: b})
		}
	}

	hits := make([]*Hit, len(projectiles))
	for n, p := range projectiles {
		pos := p.Pos()
		for _, b := range blasts {
			if PointInBlast(pos, b.Blast) {
				hits[n] = &Hit{ProjectileID: p.ID, Cause: HitIntercepted, InterceptorID: b.id, Pos: pos}
				break
			}
		}
	}

	for n, p := range projectiles {
		if hits[n] != nil {
			continue
		}
		pos := p.Pos()
		if SweptTarget(p.PrevPos(), pos, p.Target) {
			hits[n] = &Hit{ProjectileID: p.ID, Cause: HitImpact, TargetID: p.TargetID, Pos: pos}
		}
	}

	var out []Hit
	for _, h := range hits {
		if h != nil {
			out = append(out, *h)
		}
	}
	return out
}
