package game

const noSegment int32 = -1

// segment is one arena slot. next points toward the tail, prev toward the head.
type segment struct {
	x, y int
	next int32
	prev int32
}

// Body is the snake's chain of occupied cells. Segments live in a fixed arena
// sized to the board, addressed by index and never freed individually: Init
// rewinds the allocation cursor, and Advance recycles the tail slot as the new
// head, so a running game allocates nothing per tick.
//
// The chain from head via next has exactly Len() nodes and the chain from tail
// via prev reaches head.
type Body struct {
	arena  []segment
	used   int
	head   int32
	tail   int32
	length int
	dir    Direction
}

// NewBody returns an empty body whose arena holds capacity segments. A W×H
// board never needs more than W*H.
func NewBody(capacity int) *Body {
	return &Body{
		arena: make([]segment, capacity),
		head:  noSegment,
		tail:  noSegment,
	}
}

func (b *Body) alloc() int32 {
	if b.used == len(b.arena) {
		panic("game: snake body arena exhausted")
	}
	i := int32(b.used)
	b.used++
	return i
}

// Init rewinds the arena and lays out a two-segment snake heading right: head
// at (x,y), tail one cell to its left. Both cells are marked on g.
func (b *Body) Init(g *Grid, x, y int) {
	b.used = 0

	h := b.alloc()
	t := b.alloc()
	tx := wrap(x-1, g.Width())
	b.arena[h] = segment{x: x, y: y, next: t, prev: noSegment}
	b.arena[t] = segment{x: tx, y: y, next: noSegment, prev: h}

	b.head = h
	b.tail = t
	b.length = InitialLength
	b.dir = DirRight

	g.Set(x, y, CellSnake)
	g.Set(tx, y, CellSnake)
}

// GrowFront links a freshly allocated segment at (x,y) in front of the head.
func (b *Body) GrowFront(g *Grid, x, y int) {
	n := b.alloc()
	b.arena[n] = segment{x: x, y: y, next: b.head, prev: noSegment}
	b.arena[b.head].prev = n
	b.head = n
	b.length++

	g.Set(x, y, CellSnake)
}

// Advance moves the snake one cell by relinking the tail segment as the new
// head at (x,y). The caller owns the grid: it clears the old tail cell and
// marks the new head cell.
func (b *Body) Advance(x, y int) {
	if b.length == 1 {
		s := &b.arena[b.head]
		s.x, s.y = x, y
		return
	}

	moved := b.tail
	newTail := b.arena[moved].prev
	b.arena[newTail].next = noSegment
	b.tail = newTail

	b.arena[moved] = segment{x: x, y: y, next: b.head, prev: noSegment}
	b.arena[b.head].prev = moved
	b.head = moved
}

func (b *Body) Head() Point {
	s := b.arena[b.head]
	return Point{X: s.x, Y: s.y}
}

func (b *Body) Tail() Point {
	s := b.arena[b.tail]
	return Point{X: s.x, Y: s.y}
}

func (b *Body) Len() int { return b.length }

func (b *Body) Dir() Direction { return b.dir }

func (b *Body) SetDir(d Direction) {
	if d.Valid() {
		b.dir = d
	}
}

// Segments appends the body cells from head to tail to dst.
func (b *Body) Segments(dst []Point) []Point {
	for i := b.head; i != noSegment; i = b.arena[i].next {
		s := b.arena[i]
		dst = append(dst, Point{X: s.x, Y: s.y})
	}
	return dst
}
