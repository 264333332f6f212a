package component

import "go-missile-command/internal/config"

// GroundTarget is a defended structure. It never moves and is never destroyed.
type GroundTarget struct {
	Variant Kind // KindLauncher or KindHome
	TopLeft Position
	Width   float64
	Height  float64
}

// NewLauncher places a launcher with its top-left corner at pos.
func NewLauncher(pos Position) GroundTarget {
	return GroundTarget{
		Variant: KindLauncher,
		TopLeft: pos,
		Width:   config.LauncherWidth,
		Height:  config.LauncherHeight,
	}
}

// NewHome places a home with its top-left corner at pos.
func NewHome(pos Position) GroundTarget {
	return GroundTarget{
		Variant: KindHome,
		TopLeft: pos,
		Width:   config.HomeWidth,
		Height:  config.HomeHeight,
	}
}

func (t GroundTarget) Kind() Kind    { return t.Variant }
func (t GroundTarget) Pos() Position { return t.TopLeft }

// AimPoint is where projectiles are aimed: horizontal centre of the top edge.
func (t GroundTarget) AimPoint() Position {
	return Position{X: t.TopLeft.X + t.Width/2, Y: t.TopLeft.Y}
}

// LaunchPoint is where interceptors leave a launcher.
func (t GroundTarget) LaunchPoint() Position {
	return t.AimPoint()
}
