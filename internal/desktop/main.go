package desktop

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/exp/rand"

	"gridsnake/internal/game"
)

// Run opens a size×size window and plays until it is closed. Console events
// go to console. Startup failures are returned; nothing after startup fails.
func Run(cfg game.Config, size int, console io.Writer) error {
	runtime.LockOSThread()

	bus := game.NewEventBus()
	game.SubscribeConsole(bus, console)
	g, err := game.New(cfg, rand.New(rand.NewSource(cfg.Seed)), bus)
	if err != nil {
		return err
	}

	window, err := initWindow(size)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	bindInput(window, g)
	log.Printf("board %dx%d, seed %d", cfg.Width, cfg.Height, cfg.Seed)

	// Reusable segment buffer.
	var segs []game.Point
	score, best := -1, -1

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		g.Update(now - last)
		last = now

		if g.Score() != score || g.Best() != best {
			score, best = g.Score(), g.Best()
			window.SetTitle(fmt.Sprintf("%s  score %d  best %d", windowTitle, score, best))
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		v := g.View(segs)
		segs = v.Segments[:0]

		rend.BeginFrame(fbW, fbH)
		rend.Draw(v)
		rend.EndFrame()
		window.SwapBuffers()
	}
	return nil
}
