// Package term plays the game in a terminal through tcell.
package term

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"gridsnake/internal/game"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Runner drives one game on a tcell screen. Key events latch directions and
// every frame advances the clock and redraws, all on the Loop goroutine.
type Runner struct {
	screen tcell.Screen
	game   *game.Game
	segs   []game.Point
}

func NewRunner(screen tcell.Screen, g *game.Game) *Runner {
	return &Runner{screen: screen, game: g}
}

// HandleEvent applies ev and reports whether the loop should keep running.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if d := keyDirection(ev); d != game.DirNone {
			r.game.RequestDirection(d)
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

// Frame advances the game by dt seconds and redraws it.
func (r *Runner) Frame(dt float64) {
	r.game.Update(dt)
	v := r.game.View(r.segs)
	r.segs = v.Segments[:0]
	draw(r.screen, v)
}

// Loop runs frames until ctx is done or a quit key arrives.
func (r *Runner) Loop(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	r.Frame(0)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !r.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.Frame(dt)
		}
	}
}

// Run plays on the controlling terminal until quit. tcell owns the terminal
// while running, so console events are held and written to console after the
// screen is released.
func Run(ctx context.Context, cfg game.Config, console io.Writer) error {
	var lines bytes.Buffer
	bus := game.NewEventBus()
	game.SubscribeConsole(bus, &lines)
	g, err := game.New(cfg, rand.New(rand.NewSource(cfg.Seed)), bus)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	func() {
		defer screen.Fini()
		NewRunner(screen, g).Loop(ctx)
	}()

	_, err = lines.WriteTo(console)
	return err
}
