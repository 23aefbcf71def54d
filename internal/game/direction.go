package game

// Direction is a heading on the board. DirNone doubles as the "no pending
// request" value of the input latch.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

var dirDelta = [...][2]int{
	DirNone:  {0, 0},
	DirUp:    {0, 1},
	DirRight: {1, 0},
	DirDown:  {0, -1},
	DirLeft:  {-1, 0},
}

var dirOpposite = [...]Direction{
	DirNone:  DirNone,
	DirUp:    DirDown,
	DirRight: DirLeft,
	DirDown:  DirUp,
	DirLeft:  DirRight,
}

var dirNames = [...]string{
	DirNone:  "none",
	DirUp:    "up",
	DirRight: "right",
	DirDown:  "down",
	DirLeft:  "left",
}

func (d Direction) Valid() bool { return d >= DirUp && d <= DirLeft }

// Delta returns the unit step for d. Up is +Y: the board origin is the
// bottom-left cell.
func (d Direction) Delta() (dx, dy int) {
	if int(d) >= len(dirDelta) {
		return 0, 0
	}
	v := dirDelta[d]
	return v[0], v[1]
}

func (d Direction) Opposite() Direction {
	if int(d) >= len(dirOpposite) {
		return DirNone
	}
	return dirOpposite[d]
}

func (d Direction) String() string {
	if int(d) >= len(dirNames) {
		return "invalid"
	}
	return dirNames[d]
}

// IsOpposite reports whether a and b are a reversal pair (Up/Down, Left/Right).
func IsOpposite(a, b Direction) bool {
	return a.Valid() && b.Valid() && a.Opposite() == b
}
