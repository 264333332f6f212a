package app

import (
	"go-missile-command/internal/component"
	"go-missile-command/internal/event"
	"go-missile-command/internal/system"
	"go-missile-command/internal/types"

	"github.com/rs/zerolog"
)

// GameEventListener writes a trace of simulation events to the log.
type GameEventListener struct {
	logger zerolog.Logger
}

func NewGameEventListener(logger zerolog.Logger) *GameEventListener {
	return &GameEventListener{logger: logger}
}

// Subscribe registers the listener for every event except per-tick timing.
func (l *GameEventListener) Subscribe(d *event.Dispatcher) {
	for _, t := range event.All {
		if t == event.TickCompleted {
			continue
		}
		d.Subscribe(l, t)
	}
}

func (l *GameEventListener) OnEvent(e event.Event) {
	ev := l.logger.Debug().Str("event", string(e.Type)).Uint64("tick", e.Tick)
	switch data := e.Data.(type) {
	case types.EntityID:
		ev = ev.Uint64("id", uint64(data))
	case system.Hit:
		ev = ev.Uint64("id", uint64(data.ProjectileID)).
			Float64("x", data.Pos.X).
			Float64("y", data.Pos.Y)
		if data.Cause == system.HitIntercepted {
			ev = ev.Uint64("interceptor", uint64(data.InterceptorID))
		} else {
			ev = ev.Uint64("target", uint64(data.TargetID))
		}
	case int:
		ev = ev.Int("wave", data)
	case component.Outcome:
		ev = ev.Str("outcome", data.String())
	}
	ev.Msg("Simulation event")
}
