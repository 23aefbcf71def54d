package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestPlaceFoodOnlyOnEmpty(t *testing.T) {
	g := NewGrid(6, 6)
	for x := 0; x < 6; x++ {
		g.Set(x, 2, CellSnake)
		g.Set(x, 4, CellWall)
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		p, ok := PlaceFood(g, rng)
		if !ok {
			t.Fatalf("placement %d failed with %d empty cells", i, g.EmptyCount())
		}
		if p.Y == 2 || p.Y == 4 {
			t.Fatalf("food placed on occupied row at %v", p)
		}
		if g.At(p.X, p.Y) != CellFood {
			t.Fatalf("food cell %v is %v", p, g.At(p.X, p.Y))
		}
		g.Set(p.X, p.Y, CellEmpty)
	}
}

func TestPlaceFoodExcludesExistingFood(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, CellSnake)
	g.Set(1, 0, CellSnake)
	g.Set(0, 1, CellFood)

	p, ok := PlaceFood(g, rand.New(rand.NewSource(1)))
	if !ok || p != (Point{X: 1, Y: 1}) {
		t.Fatalf("PlaceFood=%v,%v want=(1,1),true", p, ok)
	}
}

func TestPlaceFoodFallsBackToScan(t *testing.T) {
	g := NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, CellSnake)
		}
	}
	g.Set(2, 2, CellEmpty)

	// Always sampling (0,0) never hits the free cell.
	rng := &seqRand{vals: []int{0}}
	p, ok := PlaceFood(g, rng)
	if !ok || p != (Point{X: 2, Y: 2}) {
		t.Fatalf("PlaceFood=%v,%v want=(2,2),true", p, ok)
	}
	if want := 4*9*2 + 1; rng.i != want {
		t.Fatalf("rng calls=%d want=%d", rng.i, want)
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	g := NewGrid(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			g.Set(x, y, CellSnake)
		}
	}
	if p, ok := PlaceFood(g, &seqRand{vals: []int{0}}); ok {
		t.Fatalf("PlaceFood on full board=%v,true", p)
	}
}
