package game

import (
	"strings"
	"testing"

	"golang.org/x/exp/rand"
)

// dumpGrid renders the board top row first: H head, s body, * food.
func dumpGrid(g *Game) string {
	head := g.Head()
	var sb strings.Builder
	for y := g.cfg.Height - 1; y >= 0; y-- {
		for x := 0; x < g.cfg.Width; x++ {
			switch {
			case head == (Point{X: x, Y: y}):
				sb.WriteByte('H')
			case g.grid.At(x, y) == CellSnake:
				sb.WriteByte('s')
			case g.grid.At(x, y) == CellFood:
				sb.WriteByte('*')
			case g.grid.At(x, y) == CellWall:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := New(cfg, rand.New(rand.NewSource(cfg.Seed)), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

// parkFood moves the food to p so scripted paths never eat by accident.
func parkFood(t *testing.T, g *Game, p Point) {
	t.Helper()
	if c := g.grid.At(p.X, p.Y); c != CellEmpty && p != g.food {
		t.Fatalf("park food on %v cell %v", c, p)
	}
	g.grid.Set(g.food.X, g.food.Y, CellEmpty)
	g.grid.Set(p.X, p.Y, CellFood)
	g.food = p
}

// feed puts food directly ahead of the head and steps onto it.
func feed(t *testing.T, g *Game) {
	t.Helper()
	dx, dy := g.Dir().Delta()
	h := g.Head()
	next := Point{X: wrap(h.X+dx, g.cfg.Width), Y: wrap(h.Y+dy, g.cfg.Height)}
	parkFood(t, g, next)
	if o := g.Step(); o != OutcomeAte {
		t.Fatalf("feed: outcome=%v want=ate\n%s", o, dumpGrid(g))
	}
}

func stepDir(t *testing.T, g *Game, d Direction, want Outcome) {
	t.Helper()
	g.RequestDirection(d)
	if o := g.Step(); o != want {
		t.Fatalf("step %v: outcome=%v want=%v\n%s", d, o, want, dumpGrid(g))
	}
}

// checkInvariants verifies grid/body agreement after any tick.
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	checkChain(t, g.body)

	segs := g.body.Segments(nil)
	seen := make(map[Point]bool, len(segs))
	for _, p := range segs {
		if seen[p] {
			t.Fatalf("segment %v appears twice\n%s", p, dumpGrid(g))
		}
		seen[p] = true
		if c := g.grid.At(p.X, p.Y); c != CellSnake {
			t.Fatalf("segment %v on %v cell\n%s", p, c, dumpGrid(g))
		}
	}

	var food, snake, empty int
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			switch g.grid.At(x, y) {
			case CellFood:
				food++
				if (g.food != Point{X: x, Y: y}) {
					t.Fatalf("food cell %v but food=%v", Point{X: x, Y: y}, g.food)
				}
			case CellSnake:
				snake++
			case CellEmpty:
				empty++
			}
		}
	}
	if food != 1 {
		t.Fatalf("food cells=%d want=1\n%s", food, dumpGrid(g))
	}
	if snake != g.Len() {
		t.Fatalf("snake cells=%d len=%d\n%s", snake, g.Len(), dumpGrid(g))
	}
	if empty != g.grid.EmptyCount() {
		t.Fatalf("empty cells=%d counter=%d", empty, g.grid.EmptyCount())
	}
}

// checkChain walks the body both ways.
func checkChain(t *testing.T, b *Body) {
	t.Helper()
	n := 0
	last := noSegment
	for i := b.head; i != noSegment; i = b.arena[i].next {
		if b.arena[i].prev != last {
			t.Fatalf("segment %d prev=%d want=%d", i, b.arena[i].prev, last)
		}
		last = i
		n++
		if n > len(b.arena) {
			t.Fatalf("cycle in body chain")
		}
	}
	if n != b.length {
		t.Fatalf("chain has %d nodes, length=%d", n, b.length)
	}
	if last != b.tail {
		t.Fatalf("chain ends at %d, tail=%d", last, b.tail)
	}
	n = 0
	for i := b.tail; i != noSegment; i = b.arena[i].prev {
		last = i
		n++
	}
	if last != b.head || n != b.length {
		t.Fatalf("reverse walk ends at %d after %d nodes, head=%d length=%d", last, n, b.head, b.length)
	}
}

// seqRand replays vals in order.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}
