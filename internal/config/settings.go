package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the settings file looked up in the config directory.
const FileName = "missile_command.cfg.json"

// ScreenSettings holds the logical surface size.
type ScreenSettings struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// MetricsSettings toggles the OpenTelemetry instruments.
type MetricsSettings struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// Settings are the runtime knobs read from FileName.
type Settings struct {
	LogLevel  string          `json:"logLevel" mapstructure:"logLevel"`
	LogPretty bool            `json:"logPretty" mapstructure:"logPretty"`
	LogFile   string          `json:"logFile" mapstructure:"logFile"`
	Seed      int64           `json:"seed" mapstructure:"seed"`
	Level     string          `json:"level" mapstructure:"level"`
	TickRate  int             `json:"tickRate" mapstructure:"tickRate"`
	Screen    ScreenSettings  `json:"screen" mapstructure:"screen"`
	Metrics   MetricsSettings `json:"metrics" mapstructure:"metrics"`
}

// TickMillis is the duration of one simulation tick.
func (s Settings) TickMillis() float64 {
	return 1000.0 / float64(s.TickRate)
}

// Load reads FileName from configDir on top of the defaults.
// A missing file is not an error; the defaults are returned.
func Load(configDir string) (Settings, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logPretty", true)
	v.SetDefault("logFile", "")
	v.SetDefault("seed", 0)
	v.SetDefault("level", "")
	v.SetDefault("tickRate", TicksPerSecond)
	v.SetDefault("screen.width", ScreenWidth)
	v.SetDefault("screen.height", ScreenHeight)
	v.SetDefault("metrics.enabled", false)

	path := filepath.Join(configDir, FileName)
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("error checking config file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.TickRate <= 0 {
		return Settings{}, fmt.Errorf("tickRate must be positive, got %d", s.TickRate)
	}
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return Settings{}, fmt.Errorf("screen size must be positive, got %dx%d", s.Screen.Width, s.Screen.Height)
	}
	return s, nil
}
