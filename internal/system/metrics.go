package system

import (
	"context"
	"fmt"
	"time"

	"go-missile-command/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-missile-command/internal/system"

// Meter returns the global OTel meter (no-op if not configured).
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// MetricsSystem turns simulation events into OTel instruments.
type MetricsSystem struct {
	ctx context.Context

	spawned      metric.Int64Counter
	destroyed    metric.Int64Counter
	launched     metric.Int64Counter
	waves        metric.Int64Counter
	tickDuration metric.Float64Histogram
}

func NewMetricsSystem(ctx context.Context, m metric.Meter) (*MetricsSystem, error) {
	s := &MetricsSystem{ctx: ctx}

	var err error
	s.spawned, err = m.Int64Counter(
		"simulation.projectiles.spawned",
		metric.WithDescription("Projectiles spawned"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	s.destroyed, err = m.Int64Counter(
		"simulation.projectiles.destroyed",
		metric.WithDescription("Projectiles removed, by cause"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating destroyed counter: %w", err)
	}

	s.launched, err = m.Int64Counter(
		"simulation.interceptors.launched",
		metric.WithDescription("Interceptors launched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating launched counter: %w", err)
	}

	s.waves, err = m.Int64Counter(
		"simulation.waves.advanced",
		metric.WithDescription("Waves completed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating waves counter: %w", err)
	}

	s.tickDuration, err = m.Float64Histogram(
		"simulation.tick.duration",
		metric.WithDescription("Wall time spent in one tick"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick histogram: %w", err)
	}

	return s, nil
}

// Subscribe registers the system for the events it measures.
func (s *MetricsSystem) Subscribe(d *event.Dispatcher) {
	d.Subscribe(s,
		event.ProjectileSpawned,
		event.ProjectileIntercepted,
		event.ProjectileImpacted,
		event.InterceptorLaunched,
		event.WaveAdvanced,
		event.TickCompleted,
	)
}

func (s *MetricsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileSpawned:
		s.spawned.Add(s.ctx, 1)
	case event.ProjectileIntercepted:
		s.destroyed.Add(s.ctx, 1, metric.WithAttributes(attribute.String("cause", "intercepted")))
	case event.ProjectileImpacted:
		s.destroyed.Add(s.ctx, 1, metric.WithAttributes(attribute.String("cause", "impact")))
	case event.InterceptorLaunched:
		s.launched.Add(s.ctx, 1)
	case event.WaveAdvanced:
		level, _ := e.Data.(int)
		s.waves.Add(s.ctx, 1, metric.WithAttributes(attribute.Int("level", level)))
	case event.TickCompleted:
		if d, ok := e.Data.(time.Duration); ok {
			s.tickDuration.Record(s.ctx, float64(d)/float64(time.Millisecond))
		}
	}
}
