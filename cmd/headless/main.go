// cmd/headless/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-missile-command/internal/app"
	"go-missile-command/internal/component"
	"go-missile-command/internal/frame"
	"go-missile-command/internal/runner"
)

func main() {
	configDir := flag.String("config", ".", "directory holding the settings file")
	ticks := flag.Uint64("ticks", 3000, "stop after this many ticks (0 = until the session ends)")
	autofire := flag.Uint64("autofire", 0, "every N ticks, fire at the lowest projectile (0 = off)")
	speed := flag.Float64("speed", 1, "tick rate multiplier")
	quiet := flag.Bool("quiet", false, "do not stream frames to stdout")
	flag.Parse()

	if err := run(*configDir, *ticks, *autofire, *speed, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "headless: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir string, ticks, autofire uint64, speed float64, quiet bool) error {
	if speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", speed)
	}

	boot, err := app.Load(configDir, os.Stderr)
	if err != nil {
		return err
	}
	defer boot.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	enc := frame.NewEncoder(out)

	sim := boot.NewSimulation()
	period := time.Duration(boot.Settings.TickMillis() / speed * float64(time.Millisecond))
	r := runner.New(sim, period,
		runner.WithMaxTicks(ticks),
		runner.WithLogger(boot.Logger),
		runner.WithFrameFunc(func(f frame.Frame) error {
			if autofire > 0 && f.Tick%autofire == 0 {
				fireAtLowest(sim, f)
			}
			if quiet {
				return nil
			}
			return enc.Encode(f)
		}),
	)

	err = r.Run(ctx)
	stats := sim.Stats()
	boot.Logger.Info().
		Str("outcome", sim.Outcome().String()).
		Uint64("ticks", sim.Ticks()).
		Int("wave", sim.WaveState().Level).
		Int("spawned", stats.Spawned).
		Int("intercepted", stats.Intercepted).
		Int("impacted", stats.Impacted).
		Int("launched", stats.Launched).
		Msg("Headless session finished")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// fireAtLowest aims at the projectile closest to the ground. It runs on the
// runner goroutine, between ticks.
func fireAtLowest(sim *app.Simulation, f frame.Frame) {
	var (
		target component.Position
		found  bool
	)
	for _, p := range f.Projectiles {
		if !found || p.Y > target.Y {
			target = component.Position{X: p.X, Y: p.Y}
			found = true
		}
	}
	if !found {
		return
	}
	_, _ = sim.Launch(target)
}
