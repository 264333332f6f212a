package app

import (
	"errors"

	"go-missile-command/internal/component"
	"go-missile-command/internal/entity"
	"go-missile-command/internal/event"
	"go-missile-command/internal/types"
)

var (
	// ErrNoLauncher is returned by Launch when the level placed no launcher.
	ErrNoLauncher = errors.New("no launcher available")
	// ErrNoTargets ends a session: there is nothing left to attack.
	ErrNoTargets = errors.New("no ground targets")
	// ErrSessionEnded is returned by Launch once the outcome is decided.
	ErrSessionEnded = errors.New("session ended")
)

// Launch fires an interceptor from the launcher nearest to pointer. The
// pointer is used as-is; taps below the launcher detonate immediately.
func (s *Simulation) Launch(pointer component.Position) (types.EntityID, error) {
	if s.outcome != component.OutcomeRunning {
		return 0, ErrSessionEnded
	}
	launcher, ok := s.nearestLauncher(pointer)
	if !ok {
		return 0, ErrNoLauncher
	}

	id := s.World.AddInterceptor(component.NewInterceptor(launcher.LaunchPoint(), pointer))
	s.stats.Launched++
	s.dispatch(event.InterceptorLaunched, id)
	s.logger.Debug().
		Uint64("id", uint64(id)).
		Float64("x", pointer.X).
		Float64("y", pointer.Y).
		Msg("Interceptor launched")
	return id, nil
}

func (s *Simulation) nearestLauncher(pointer component.Position) (entity.Target, bool) {
	var (
		best     entity.Target
		bestDist float64
		found    bool
	)
	for _, t := range s.World.Launchers() {
		d := t.LaunchPoint().DistanceTo(pointer)
		if !found || d < bestDist {
			best, bestDist, found = t, d, true
		}
	}
	return best, found
}

// RandomTarget picks a ground target uniformly; false when none exist.
func (s *Simulation) RandomTarget() (entity.Target, bool) {
	n := len(s.World.Targets)
	if n == 0 {
		return entity.Target{}, false
	}
	return s.World.Targets[s.rng.Intn(n)], true
}
