package game

// Point is a board cell coordinate.
type Point struct {
	X, Y int
}

// wrap maps a onto [0,n), also for negative a.
func wrap(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
