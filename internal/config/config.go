// internal/config/config.go
package config

import (
	"image/color"

	"go-missile-command/pkg/render"
)

const (
	ScreenWidth  = 450
	ScreenHeight = 560

	TicksPerSecond = 30
	TickMillis     = 1000.0 / TicksPerSecond

	LauncherWidth  = 20.0
	LauncherHeight = 20.0
	HomeWidth      = 20.0
	HomeHeight     = 10.0

	InterceptorSpeed          = 10.0
	InterceptorFullRadius     = 30.0
	InterceptorExplosionSpeed = 2.0
	InterceptorSpentRadius    = 1.0

	// AngleEpsilon replaces a zero vertical delta in launch-angle math.
	AngleEpsilon = 1e-6

	TrailWidth    = 1.0
	HUDLineHeight = 14
	HUDOffsetX    = 10
	HUDOffsetY    = 6

	PauseButtonOffset = 20.0 // from the top-right corner
	PauseButtonSize   = 10.0
)

var (
	BackgroundColor  = color.RGBA{0, 5, 20, 255}
	LauncherColor    = color.RGBA{255, 0, 0, 255}
	HomeColor        = color.RGBA{0, 100, 250, 255}
	ProjectileColor  = color.RGBA{0, 255, 0, 255}
	InterceptorColor = color.RGBA{255, 255, 255, 255}
	BlastColor       = color.RGBA{255, 255, 255, 255}
	TextColor        = color.RGBA{255, 255, 255, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	VictoryColor     = color.RGBA{50, 205, 50, 255}
	DefeatColor      = color.RGBA{220, 60, 60, 255}
)

// Palette groups the entity colours for the frame renderers.
func Palette() render.Colors {
	return render.Colors{
		Launcher:    LauncherColor,
		Home:        HomeColor,
		Projectile:  ProjectileColor,
		Interceptor: InterceptorColor,
		Blast:       BlastColor,
		Text:        TextColor,
		Overlay:     OverlayColor,
		Victory:     VictoryColor,
		Defeat:      DefeatColor,
	}
}
