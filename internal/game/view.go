package game

// View is a read-only snapshot of what a renderer draws. Cell sizes are in
// the normalised [0,1]×[0,1] space with the origin at the bottom-left.
type View struct {
	Width, Height int
	CellW, CellH  float32

	Segments []Point // Head first.
	Food     Point
	Dir      Direction

	Score    int
	Best     int
	StepTime float64
	Ticks    uint64
}

// View fills buf with the body from head to tail, reusing its capacity, and
// returns the snapshot. Callers keep View.Segments[:0] for the next frame.
func (g *Game) View(buf []Point) View {
	return View{
		Width:    g.cfg.Width,
		Height:   g.cfg.Height,
		CellW:    1 / float32(g.cfg.Width),
		CellH:    1 / float32(g.cfg.Height),
		Segments: g.body.Segments(buf[:0]),
		Food:     g.food,
		Dir:      g.body.Dir(),
		Score:    g.Score(),
		Best:     g.best,
		StepTime: g.stepTime,
		Ticks:    g.ticks,
	}
}
