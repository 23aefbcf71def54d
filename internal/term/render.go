package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// Each board cell is two columns wide so it reads roughly square.
const cellCols = 2

const (
	runeHead = '█'
	runeBody = '▓'
	runeFood = '●'
)

var (
	styleGrass  = tcell.StyleDefault.Background(tcell.NewRGBColor(53, 112, 37))
	styleHead   = styleGrass.Foreground(tcell.NewRGBColor(48, 199, 6))
	styleBody   = styleGrass.Foreground(tcell.NewRGBColor(37, 163, 2))
	styleFood   = styleGrass.Foreground(tcell.NewRGBColor(21, 59, 11))
	styleStatus = tcell.StyleDefault
)

// draw paints v with board row 0 at the bottom and a status line under it.
func draw(s tcell.Screen, v game.View) {
	s.Clear()
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			putCell(s, v, game.Point{X: x, Y: y}, ' ', styleGrass)
		}
	}
	putCell(s, v, v.Food, runeFood, styleFood)
	// Tail first so the head wins if anything overlaps.
	for i := len(v.Segments) - 1; i > 0; i-- {
		putCell(s, v, v.Segments[i], runeBody, styleBody)
	}
	if len(v.Segments) > 0 {
		putCell(s, v, v.Segments[0], runeHead, styleHead)
	}

	status := fmt.Sprintf("score %d  best %d", v.Score, v.Best)
	for i, r := range status {
		s.SetContent(i, v.Height, r, nil, styleStatus)
	}
	s.Show()
}

func putCell(s tcell.Screen, v game.View, p game.Point, r rune, st tcell.Style) {
	row := v.Height - 1 - p.Y
	col := p.X * cellCols
	for i := 0; i < cellCols; i++ {
		s.SetContent(col+i, row, r, nil, st)
	}
}
