// food.go implements food placement.

package game

// Rand is the randomness food placement needs. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlaceFood marks a uniformly random empty cell of g as food and returns it.
// It samples random cells first; once 4*W*H samples have missed it picks
// uniformly among the remaining empty cells instead, so a nearly full board
// still terminates. It returns false when the board has no empty cell left.
func PlaceFood(g *Grid, rng Rand) (Point, bool) {
	free := g.EmptyCount()
	if free == 0 {
		return Point{}, false
	}

	tries := 4 * g.Width() * g.Height()
	for i := 0; i < tries; i++ {
		p := Point{X: rng.Intn(g.Width()), Y: rng.Intn(g.Height())}
		if g.At(p.X, p.Y) == CellEmpty {
			g.Set(p.X, p.Y, CellFood)
			return p, true
		}
	}

	p, ok := g.nthEmpty(rng.Intn(free))
	if !ok {
		return Point{}, false
	}
	g.Set(p.X, p.Y, CellFood)
	return p, true
}
