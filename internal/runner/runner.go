// internal/runner/runner.go
package runner

import (
	"context"
	"fmt"
	"time"

	"go-missile-command/internal/component"
	"go-missile-command/internal/frame"

	"github.com/rs/zerolog"
)

// Session is the part of a simulation the runner drives.
type Session interface {
	Tick()
	Frame() frame.Frame
	Outcome() component.Outcome
}

// Command mutates the session between ticks, on the runner goroutine.
type Command func()

// FrameFunc receives the frame after every tick. An error stops the runner.
type FrameFunc func(f frame.Frame) error

// Runner ticks a session at a fixed period until the context is cancelled,
// the session ends or MaxTicks is reached.
type Runner struct {
	session  Session
	period   time.Duration
	maxTicks uint64
	onFrame  FrameFunc
	commands chan Command
	logger   zerolog.Logger
}

type Option func(*Runner)

// WithMaxTicks stops the runner after n ticks; zero means unbounded.
func WithMaxTicks(n uint64) Option {
	return func(r *Runner) { r.maxTicks = n }
}

func WithFrameFunc(fn FrameFunc) Option {
	return func(r *Runner) { r.onFrame = fn }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

func New(session Session, period time.Duration, opts ...Option) *Runner {
	r := &Runner{
		session:  session,
		period:   period,
		commands: make(chan Command, 16),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Submit queues cmd for the next loop iteration. It blocks while the queue
// is full.
func (r *Runner) Submit(ctx context.Context, cmd Command) error {
	select {
	case r.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit queues cmd unless the queue is full.
func (r *Runner) TrySubmit(cmd Command) bool {
	select {
	case r.commands <- cmd:
		return true
	default:
		return false
	}
}

// Run blocks until the loop stops. It returns ctx.Err() on cancellation,
// the frame sink's error, or nil when the session ended or hit MaxTicks.
func (r *Runner) Run(ctx context.Context) error {
	if r.period <= 0 {
		return fmt.Errorf("tick period must be positive, got %v", r.period)
	}

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.commands:
			cmd()
		case <-ticker.C:
			r.session.Tick()
			ticks++

			if r.onFrame != nil {
				if err := r.onFrame(r.session.Frame()); err != nil {
					return fmt.Errorf("frame sink at tick %d: %w", ticks, err)
				}
			}
			if outcome := r.session.Outcome(); outcome != component.OutcomeRunning {
				r.logger.Info().Str("outcome", outcome.String()).Uint64("ticks", ticks).Msg("Runner stopped: session ended")
				return nil
			}
			if r.maxTicks > 0 && ticks >= r.maxTicks {
				r.logger.Info().Uint64("ticks", ticks).Msg("Runner stopped: tick limit")
				return nil
			}
		}
	}
}
