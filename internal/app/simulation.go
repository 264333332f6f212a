// internal/app/simulation.go
package app

import (
	"errors"
	"time"

	"go-missile-command/internal/component"
	"go-missile-command/internal/config"
	"go-missile-command/internal/defs"
	"go-missile-command/internal/entity"
	"go-missile-command/internal/event"
	"go-missile-command/internal/system"
	"go-missile-command/internal/types"
	"go-missile-command/internal/utils"

	"github.com/rs/zerolog"
)

// Stats are running totals for one session.
type Stats struct {
	Spawned        int
	Intercepted    int
	Impacted       int
	Launched       int
	WavesCompleted int
}

// Simulation owns the whole state of one session and advances it one tick
// at a time. It is not safe for concurrent use; the driver calls Tick and
// Launch from a single goroutine.
type Simulation struct {
	World      *entity.World
	Dispatcher *event.Dispatcher

	wave  component.WaveState
	waves *defs.WaveTable
	level defs.LevelDescriptor

	WaveSystem      *system.WaveSystem
	MovementSystem  *system.MovementSystem
	CollisionSystem *system.CollisionSystem
	CleanupSystem   *system.CleanupSystem

	rng        *utils.PRNGService
	logger     zerolog.Logger
	width      float64
	tickMillis float64

	tick    uint64
	paused  bool
	outcome component.Outcome
	stats   Stats
}

// Option configures a Simulation.
type Option func(*Simulation)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulation) { s.logger = logger }
}

// WithSeed fixes the PRNG seed; zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = utils.NewPRNGService(seed) }
}

func WithTickMillis(ms float64) Option {
	return func(s *Simulation) {
		if ms > 0 {
			s.tickMillis = ms
		}
	}
}

// WithSurfaceWidth sets the span projectiles spawn across.
func WithSurfaceWidth(width float64) Option {
	return func(s *Simulation) {
		if width > 0 {
			s.width = width
		}
	}
}

func WithWaveTable(waves *defs.WaveTable) Option {
	return func(s *Simulation) {
		if waves != nil {
			s.waves = waves
		}
	}
}

func WithDispatcher(d *event.Dispatcher) Option {
	return func(s *Simulation) {
		if d != nil {
			s.Dispatcher = d
		}
	}
}

// NewSimulation places the level's launchers, then its homes, and starts at
// level 0 with a zero countdown.
func NewSimulation(level defs.LevelDescriptor, opts ...Option) *Simulation {
	s := &Simulation{
		World:      entity.NewWorld(),
		Dispatcher: event.NewDispatcher(),
		waves:      defs.DefaultWaveTable(),
		level:      level,
		logger:     zerolog.Nop(),
		width:      config.ScreenWidth,
		tickMillis: config.TickMillis,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = utils.NewPRNGService(0)
	}

	s.WaveSystem = system.NewWaveSystem(s.waves, s.tickMillis)
	s.MovementSystem = system.NewMovementSystem()
	s.CollisionSystem = system.NewCollisionSystem()
	s.CleanupSystem = system.NewCleanupSystem()

	for _, p := range level.Launchers {
		s.World.AddTarget(component.NewLauncher(component.Position{X: p.X, Y: p.Y}))
	}
	for _, p := range level.Homes {
		s.World.AddTarget(component.NewHome(component.Position{X: p.X, Y: p.Y}))
	}

	s.logger.Debug().
		Int("launchers", len(level.Launchers)).
		Int("homes", len(level.Homes)).
		Int("waves", s.waves.Len()).
		Msg("Simulation created")
	return s
}

// Tick advances the session by one fixed step. It is a no-op while paused or
// once the session has ended.
func (s *Simulation) Tick() {
	if s.paused || s.outcome != component.OutcomeRunning {
		return
	}
	start := time.Now()
	s.tick++

	res, err := s.WaveSystem.Update(&s.wave, s.spawn)
	if res.Advanced {
		s.stats.WavesCompleted++
		s.dispatch(event.WaveAdvanced, s.wave.Level)
		s.logger.Info().Int("wave", s.wave.Level).Uint64("tick", s.tick).Msg("Wave advanced")
	}
	if err != nil {
		s.end(err)
		return
	}

	for _, id := range s.MovementSystem.Update(s.World.Projectiles, s.World.Interceptors) {
		s.dispatch(event.InterceptorDetonated, id)
	}

	hits := s.CollisionSystem.Update(s.World.Projectiles, s.World.Interceptors)
	removed := make([]types.EntityID, 0, len(hits))
	for _, hit := range hits {
		s.WaveSystem.RecordHit(&s.wave)
		removed = append(removed, hit.ProjectileID)
		switch hit.Cause {
		case system.HitIntercepted:
			s.stats.Intercepted++
			s.dispatch(event.ProjectileIntercepted, hit)
		case system.HitImpact:
			s.stats.Impacted++
			s.dispatch(event.ProjectileImpacted, hit)
		}
	}
	s.World.RemoveProjectiles(removed)

	spent := s.CleanupSystem.Update(s.World.Interceptors)
	for _, id := range spent {
		s.dispatch(event.InterceptorExpired, id)
	}
	s.World.RemoveInterceptors(spent)

	s.dispatch(event.TickCompleted, time.Since(start))
}

// spawn creates one projectile at a random x on the top edge, aimed at a
// random target.
func (s *Simulation) spawn(wave defs.WaveDefinition) error {
	target, ok := s.RandomTarget()
	if !ok {
		return ErrNoTargets
	}
	origin := component.Position{X: s.rng.Range(0, s.width), Y: 0}
	id := s.World.AddProjectile(component.NewProjectile(origin, target.ID, target.GroundTarget, wave.ProjectileSpeed))
	s.stats.Spawned++
	s.dispatch(event.ProjectileSpawned, id)
	return nil
}

// end records the terminal outcome for a tick error.
func (s *Simulation) end(err error) {
	switch {
	case errors.Is(err, defs.ErrWaveTableExhausted):
		s.outcome = component.OutcomeVictory
	case errors.Is(err, ErrNoTargets):
		s.outcome = component.OutcomeLost
	default:
		s.outcome = component.OutcomeLost
		s.logger.Error().Err(err).Msg("Unexpected tick error")
	}
	s.logger.Info().
		Str("outcome", s.outcome.String()).
		Int("wave", s.wave.Level).
		Int("intercepted", s.stats.Intercepted).
		Int("impacted", s.stats.Impacted).
		Msg("Session ended")
	s.dispatch(event.SessionEnded, s.outcome)
}

func (s *Simulation) dispatch(t event.EventType, data any) {
	s.Dispatcher.Dispatch(event.Event{Type: t, Tick: s.tick, Data: data})
}

func (s *Simulation) Pause()  { s.paused = true }
func (s *Simulation) Resume() { s.paused = false }

// TogglePause flips the pause flag and returns the new value.
func (s *Simulation) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

func (s *Simulation) Paused() bool                   { return s.paused }
func (s *Simulation) Outcome() component.Outcome     { return s.outcome }
func (s *Simulation) WaveState() component.WaveState { return s.wave }
func (s *Simulation) Stats() Stats                   { return s.stats }
func (s *Simulation) Ticks() uint64                  { return s.tick }
func (s *Simulation) Level() defs.LevelDescriptor    { return s.level }
