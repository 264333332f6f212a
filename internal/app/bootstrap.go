package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go-missile-command/internal/config"
	"go-missile-command/internal/defs"
	"go-missile-command/internal/logging"
	"go-missile-command/internal/system"
	"go-missile-command/pkg/palette"

	"github.com/rs/zerolog"
)

// Bootstrap holds what every front-end needs before it can start sessions.
type Bootstrap struct {
	Settings config.Settings
	Logger   zerolog.Logger
	Level    defs.LevelDescriptor
	Gradient *palette.Gradient
	Metrics  *system.MetricsSystem // nil unless metrics.enabled

	logFile io.Closer
}

// Load reads settings from configDir, opens the log and loads the level.
// Logs go to logOut unless the settings name a log file.
func Load(configDir string, logOut io.Writer) (*Bootstrap, error) {
	settings, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	b := &Bootstrap{Settings: settings}
	if settings.LogFile != "" {
		f, err := logging.OpenFile(resolve(configDir, settings.LogFile))
		if err != nil {
			return nil, err
		}
		b.logFile = f
		logOut = f
	}
	b.Logger = logging.New(logOut, settings.LogLevel, settings.LogPretty)

	if settings.Level == "" {
		b.Level = defs.DefaultLevel()
	} else {
		b.Level, err = defs.LoadLevel(resolve(configDir, settings.Level))
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("load level %q: %w", settings.Level, err)
		}
	}
	b.Gradient, err = b.Level.Gradient()
	if err != nil {
		b.Close()
		return nil, err
	}

	if settings.Metrics.Enabled {
		b.Metrics, err = system.NewMetricsSystem(context.Background(), system.Meter())
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("init metrics: %w", err)
		}
	}

	b.Logger.Info().
		Str("level", settings.Level).
		Int("tickRate", settings.TickRate).
		Int64("seed", settings.Seed).
		Bool("metrics", settings.Metrics.Enabled).
		Msg("Configuration loaded")
	return b, nil
}

// NewSimulation starts a session with the loaded settings. Extra options
// are applied last.
func (b *Bootstrap) NewSimulation(opts ...Option) *Simulation {
	base := []Option{
		WithLogger(b.Logger),
		WithSeed(b.Settings.Seed),
		WithTickMillis(b.Settings.TickMillis()),
		WithSurfaceWidth(float64(b.Settings.Screen.Width)),
	}
	sim := NewSimulation(b.Level, append(base, opts...)...)

	NewGameEventListener(b.Logger).Subscribe(sim.Dispatcher)
	if b.Metrics != nil {
		b.Metrics.Subscribe(sim.Dispatcher)
	}
	return sim
}

func (b *Bootstrap) Close() error {
	if b.logFile == nil {
		return nil
	}
	return b.logFile.Close()
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
