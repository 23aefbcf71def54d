package game

import (
	"golang.org/x/exp/rand"
)

// Outcome is what a single tick did to the game.
type Outcome uint8

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeDied
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	case OutcomeWon:
		return "won"
	}
	return "unknown"
}

// Game owns the whole board state: grid, body, food, pending input and tick
// cadence. Every mutation happens inside Step or Reset; renderers read it
// through View and the accessors between ticks. A Game is not safe for
// concurrent use.
type Game struct {
	cfg    Config
	grid   *Grid
	body   *Body
	food   Point
	input  InputLatch
	rng    Rand
	events *EventBus

	stepTime  float64
	sinceStep float64
	ticks     uint64
	best      int
}

// New validates cfg and returns a game in its initial state. A nil rng is
// replaced by one seeded from cfg.Seed; a nil bus by an empty one.
func New(cfg Config, rng Rand, events *EventBus) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	if events == nil {
		events = NewEventBus()
	}

	g := &Game{
		cfg:    cfg,
		grid:   NewGrid(cfg.Width, cfg.Height),
		body:   NewBody(cfg.Width * cfg.Height),
		rng:    rng,
		events: events,
	}
	g.init()
	return g, nil
}

func (g *Game) init() {
	g.grid.Clear()
	g.input.Clear()
	g.stepTime = g.cfg.InitialStepTime
	g.sinceStep = 0

	g.body.Init(g.grid, g.cfg.Width/2, g.cfg.Height/2)
	// Validate guarantees a free cell beside the starting snake.
	g.food, _ = PlaceFood(g.grid, g.rng)
}

// Reset returns the board, snake, food and step interval to their initial
// state. The session best score survives.
func (g *Game) Reset() {
	g.init()
	g.events.Emit(Event{Type: EventReset})
}

// RequestDirection latches d for the next tick.
func (g *Game) RequestDirection(d Direction) {
	g.input.Request(d)
}

// Update adds dt seconds to the time since the last tick and runs one tick
// once that exceeds the step interval. At most one tick runs per call, and the
// remainder is dropped.
func (g *Game) Update(dt float64) (Outcome, bool) {
	g.sinceStep += dt
	if g.sinceStep <= g.stepTime {
		return OutcomeMoved, false
	}
	o := g.Step()
	g.sinceStep = 0
	return o, true
}

// Step advances the game by one tick.
func (g *Game) Step() Outcome {
	g.ticks++

	dir := g.input.Resolve(g.body.Dir())
	g.body.SetDir(dir)

	dx, dy := dir.Delta()
	head := g.body.Head()
	next := Point{
		X: wrap(head.X+dx, g.cfg.Width),
		Y: wrap(head.Y+dy, g.cfg.Height),
	}

	switch g.grid.At(next.X, next.Y) {
	case CellFood:
		return g.eat(next)
	case CellEmpty:
		g.move(next)
		return OutcomeMoved
	case CellSnake:
		// The tail leaves its cell this tick, so the head may take it.
		if next == g.body.Tail() {
			g.move(next)
			return OutcomeMoved
		}
	}
	g.die(next)
	return OutcomeDied
}

func (g *Game) move(next Point) {
	tail := g.body.Tail()
	g.grid.Set(tail.X, tail.Y, CellEmpty)
	g.body.Advance(next.X, next.Y)
	g.grid.Set(next.X, next.Y, CellSnake)
}

func (g *Game) eat(next Point) Outcome {
	g.body.GrowFront(g.grid, next.X, next.Y)
	g.stepTime = clampF(g.stepTime-g.cfg.StepDecrement, g.cfg.MinStepTime, g.cfg.MaxStepTime)
	g.events.Emit(Event{Type: EventAte, X: next.X, Y: next.Y, Data: g.body.Len()})

	food, ok := PlaceFood(g.grid, g.rng)
	if !ok {
		score := g.finish()
		g.events.Emit(Event{Type: EventWon, X: next.X, Y: next.Y, Data: score})
		g.Reset()
		return OutcomeWon
	}
	g.food = food
	return OutcomeAte
}

func (g *Game) die(at Point) {
	score := g.finish()
	g.events.Emit(Event{Type: EventDied, X: at.X, Y: at.Y, Data: score})
	g.Reset()
}

func (g *Game) finish() int {
	score := g.Score()
	if score > g.best {
		g.best = score
	}
	return score
}

func (g *Game) Config() Config { return g.cfg }

func (g *Game) Cell(x, y int) Cell { return g.grid.At(x, y) }

func (g *Game) Head() Point { return g.body.Head() }

func (g *Game) Tail() Point { return g.body.Tail() }

func (g *Game) Len() int { return g.body.Len() }

func (g *Game) Dir() Direction { return g.body.Dir() }

func (g *Game) Food() Point { return g.food }

func (g *Game) StepTime() float64 { return g.stepTime }

func (g *Game) Ticks() uint64 { return g.ticks }

// Score is the number of segments grown since the last reset.
func (g *Game) Score() int { return g.body.Len() - InitialLength }

// Best is the highest score reached this session.
func (g *Game) Best() int { return g.best }

func (g *Game) Events() *EventBus { return g.events }
