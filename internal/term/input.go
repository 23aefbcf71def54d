package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// keyDirection maps arrows and WASD to headings; anything else is DirNone.
func keyDirection(ev *tcell.EventKey) game.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.DirUp
	case tcell.KeyRight:
		return game.DirRight
	case tcell.KeyDown:
		return game.DirDown
	case tcell.KeyLeft:
		return game.DirLeft
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return game.DirUp
		case 'd':
			return game.DirRight
		case 's':
			return game.DirDown
		case 'a':
			return game.DirLeft
		}
	}
	return game.DirNone
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || (ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0)
	}
	return false
}
