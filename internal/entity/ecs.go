package entity

import (
	"go-missile-command/internal/component"
	"go-missile-command/internal/types"
)

// Target is a placed ground target.
type Target struct {
	ID types.EntityID
	component.GroundTarget
}

// Projectile is a live projectile.
type Projectile struct {
	ID types.EntityID
	*component.Projectile
}

// Interceptor is a live interceptor.
type Interceptor struct {
	ID types.EntityID
	*component.Interceptor
}

// World owns the live entity collections of one session. Slices keep
// insertion order so random selection and iteration are reproducible.
type World struct {
	NextID       types.EntityID
	Targets      []Target
	Projectiles  []Projectile
	Interceptors []Interceptor
}

func NewWorld() *World {
	return &World{
		NextID:       1,
		Targets:      make([]Target, 0, 8),
		Projectiles:  make([]Projectile, 0, 32),
		Interceptors: make([]Interceptor, 0, 16),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) AddTarget(t component.GroundTarget) types.EntityID {
	id := w.NewEntity()
	w.Targets = append(w.Targets, Target{ID: id, GroundTarget: t})
	return id
}

func (w *World) AddProjectile(p *component.Projectile) types.EntityID {
	id := w.NewEntity()
	w.Projectiles = append(w.Projectiles, Projectile{ID: id, Projectile: p})
	return id
}

func (w *World) AddInterceptor(i *component.Interceptor) types.EntityID {
	id := w.NewEntity()
	w.Interceptors = append(w.Interceptors, Interceptor{ID: id, Interceptor: i})
	return id
}

// Launchers returns the targets of the launcher variant.
func (w *World) Launchers() []Target {
	var out []Target
	for _, t := range w.Targets {
		if t.Variant == component.KindLauncher {
			out = append(out, t)
		}
	}
	return out
}

// Drawn pairs an entity id with its drawable view.
type Drawn struct {
	ID types.EntityID
	component.Drawable
}

// Drawables lists every entity in draw order: targets, projectiles, interceptors.
func (w *World) Drawables() []Drawn {
	out := make([]Drawn, 0, len(w.Targets)+len(w.Projectiles)+len(w.Interceptors))
	for _, t := range w.Targets {
		out = append(out, Drawn{ID: t.ID, Drawable: t.GroundTarget})
	}
	for _, p := range w.Projectiles {
		out = append(out, Drawn{ID: p.ID, Drawable: p.Projectile})
	}
	for _, i := range w.Interceptors {
		out = append(out, Drawn{ID: i.ID, Drawable: i.Interceptor})
	}
	return out
}

// RemoveProjectiles compacts the projectile slice, dropping ids.
// Called after a scan completes, never during one.
func (w *World) RemoveProjectiles(ids []types.EntityID) {
	if len(ids) == 0 {
		return
	}
	drop := toSet(ids)
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if _, ok := drop[p.ID]; !ok {
			kept = append(kept, p)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

// RemoveInterceptors compacts the interceptor slice, dropping ids.
func (w *World) RemoveInterceptors(ids []types.EntityID) {
	if len(ids) == 0 {
		return
	}
	drop := toSet(ids)
	kept := w.Interceptors[:0]
	for _, i := range w.Interceptors {
		if _, ok := drop[i.ID]; !ok {
			kept = append(kept, i)
		}
	}
	clear(w.Interceptors[len(kept):])
	w.Interceptors = kept
}

func toSet(ids []types.EntityID) map[types.EntityID]struct{} {
	set := make(map[types.EntityID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
