package game

// Cell classifies one board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellFood
	CellSnake
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellFood:
		return "food"
	case CellSnake:
		return "snake"
	}
	return "invalid"
}

// Grid is a fixed W×H board stored row-major. It does not wrap: callers pass
// coordinates already in [0,W)×[0,H).
type Grid struct {
	w, h  int
	cells []Cell
	empty int
}

func NewGrid(w, h int) *Grid {
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
		empty: w * h,
	}
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// EmptyCount is the number of CellEmpty squares.
func (g *Grid) EmptyCount() int { return g.empty }

func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.w+x]
}

func (g *Grid) Set(x, y int, c Cell) {
	i := y*g.w + x
	old := g.cells[i]
	if old == c {
		return
	}
	if old == CellEmpty {
		g.empty--
	} else if c == CellEmpty {
		g.empty++
	}
	g.cells[i] = c
}

// Clear marks every cell empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
	g.empty = len(g.cells)
}

// nthEmpty returns the n-th empty cell in row-major order.
func (g *Grid) nthEmpty(n int) (Point, bool) {
	for i, c := range g.cells {
		if c != CellEmpty {
			continue
		}
		if n == 0 {
			return Point{X: i % g.w, Y: i / g.w}, true
		}
		n--
	}
	return Point{}, false
}
