package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
)

// keyDirection maps arrows and WASD to headings.
func keyDirection(key glfw.Key) game.Direction {
	switch key {
	case glfw.KeyUp, glfw.KeyW:
		return game.DirUp
	case glfw.KeyRight, glfw.KeyD:
		return game.DirRight
	case glfw.KeyDown, glfw.KeyS:
		return game.DirDown
	case glfw.KeyLeft, glfw.KeyA:
		return game.DirLeft
	}
	return game.DirNone
}

// bindInput latches direction key presses into g. Releases and repeats are
// ignored; Escape closes the window. Callbacks fire inside glfw.PollEvents,
// on the loop thread.
func bindInput(window *glfw.Window, g *game.Game) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if d := keyDirection(key); d != game.DirNone {
			g.RequestDirection(d)
		}
	})
}
