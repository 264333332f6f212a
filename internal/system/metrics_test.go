package system

import (
	"context"
	"testing"
	"time"

	"go-missile-command/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestMetricsSystem_HandlesEveryEvent(t *testing.T) {
	m, err := NewMetricsSystem(context.Background(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	d := event.NewDispatcher()
	m.Subscribe(d)

	assert.NotPanics(t, func() {
		d.Dispatch(event.Event{Type: event.ProjectileSpawned, Data: uint64(1)})
		d.Dispatch(event.Event{Type: event.ProjectileIntercepted, Data: Hit{}})
		d.Dispatch(event.Event{Type: event.ProjectileImpacted, Data: Hit{Cause: HitImpact}})
		d.Dispatch(event.Event{Type: event.InterceptorLaunched})
		d.Dispatch(event.Event{Type: event.WaveAdvanced, Data: 3})
		d.Dispatch(event.Event{Type: event.TickCompleted, Data: 2 * time.Millisecond})
		d.Dispatch(event.Event{Type: event.TickCompleted, Data: "ignored"})
	})
}

func TestMeter_GlobalProvider(t *testing.T) {
	_, err := NewMetricsSystem(context.Background(), Meter())
	assert.NoError(t, err)
}
