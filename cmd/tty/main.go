// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-missile-command/internal/app"
	"go-missile-command/internal/config"
	"go-missile-command/internal/frame"
	"go-missile-command/internal/runner"
	"go-missile-command/internal/termview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configDir := flag.String("config", ".", "directory holding the settings file")
	flag.Parse()

	if err := run(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "tty: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir string) error {
	// The terminal owns stdout; logs only go somewhere if a log file is configured.
	boot, err := app.Load(configDir, io.Discard)
	if err != nil {
		return err
	}
	defer boot.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	view := termview.New(screen,
		float64(boot.Settings.Screen.Width),
		float64(boot.Settings.Screen.Height),
		boot.Gradient,
		config.Palette(),
	)

	for {
		restart, err := play(ctx, screen, view, boot, events)
		if err != nil || !restart {
			return err
		}
	}
}

// play runs one session and reports whether the player asked for another.
func play(ctx context.Context, screen tcell.Screen, view *termview.View, boot *app.Bootstrap, events <-chan tcell.Event) (bool, error) {
	sim := boot.NewSimulation()
	period := time.Duration(boot.Settings.TickMillis() * float64(time.Millisecond))
	r := runner.New(sim, period,
		runner.WithLogger(boot.Logger),
		runner.WithFrameFunc(func(f frame.Frame) error {
			view.Draw(f)
			return nil
		}),
	)

	sessionCtx, stop := context.WithCancel(ctx)
	defer stop()
	done := make(chan error, 1)
	go func() { done <- r.Run(sessionCtx) }()

	var (
		ended   bool
		buttons tcell.ButtonMask
	)
	for {
		select {
		case <-ctx.Done():
			return false, nil

		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				return false, err
			}
			ended = true
			view.Draw(sim.Frame())

		case ev, ok := <-events:
			if !ok {
				return false, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return false, nil
				case ev.Rune() == 'r' && ended:
					return true, nil
				case ev.Rune() == 'p' && !ended:
					r.TrySubmit(func() {
						sim.TogglePause()
						view.Draw(sim.Frame())
					})
				}
			case *tcell.EventMouse:
				pressed := ev.Buttons()&tcell.Button1 != 0 && buttons&tcell.Button1 == 0
				buttons = ev.Buttons()
				if !pressed || ended {
					continue
				}
				pointer := view.ToSurface(ev.Position())
				r.TrySubmit(func() {
					if sim.Paused() {
						return
					}
					if _, err := sim.Launch(pointer); err != nil {
						boot.Logger.Warn().Err(err).Msg("Launch ignored")
					}
				})
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}
