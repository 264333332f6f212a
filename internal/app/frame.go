package app

import (
	"go-missile-command/internal/component"
	"go-missile-command/internal/frame"
)

// Frame snapshots the session for renderers. The returned value owns its
// slices.
func (s *Simulation) Frame() frame.Frame {
	f := frame.Frame{
		Tick:        s.tick,
		Level:       s.wave.Level,
		Spawned:     s.wave.Spawned,
		Destroyed:   s.wave.Destroyed,
		Outcome:     s.outcome,
		Paused:      s.paused,
		RocketCount: s.level.RocketCount,
		AttackRate:  s.level.AttackRate,
		Timer:       s.level.Timer,

		Targets:      make([]frame.TargetState, 0, len(s.World.Targets)),
		Projectiles:  make([]frame.ProjectileState, 0, len(s.World.Projectiles)),
		Interceptors: make([]frame.InterceptorState, 0, len(s.World.Interceptors)),
	}
	if wave, err := s.WaveSystem.Current(s.wave); err == nil {
		f.Quota = wave.ProjectilesToDestroy
	}

	for _, d := range s.World.Drawables() {
		pos := d.Pos()
		switch d.Kind() {
		case component.KindLauncher, component.KindHome:
			t := d.Drawable.(component.GroundTarget)
			f.Targets = append(f.Targets, frame.TargetState{
				ID: d.ID, Kind: t.Kind(), X: pos.X, Y: pos.Y, W: t.Width, H: t.Height,
			})
		case component.KindProjectile:
			origin := d.Drawable.(*component.Projectile).Origin()
			f.Projectiles = append(f.Projectiles, frame.ProjectileState{
				ID: d.ID, OriginX: origin.X, OriginY: origin.Y, X: pos.X, Y: pos.Y,
			})
		case component.KindInterceptor:
			i := d.Drawable.(*component.Interceptor)
			origin := i.Origin()
			f.Interceptors = append(f.Interceptors, frame.InterceptorState{
				ID: d.ID, OriginX: origin.X, OriginY: origin.Y, X: pos.X, Y: pos.Y,
				Exploded: i.Exploded(), Radius: i.Radius(),
			})
		}
	}
	return f
}
