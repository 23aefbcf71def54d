package game

// InputLatch holds the most recent direction request since the last tick.
// A later request overwrites an earlier one; nothing is queued.
type InputLatch struct {
	pending Direction
}

// Request records d as pending. Anything that is not one of the four
// headings is ignored.
func (l *InputLatch) Request(d Direction) {
	if d.Valid() {
		l.pending = d
	}
}

// Pending returns the latched request without clearing it.
func (l *InputLatch) Pending() Direction { return l.pending }

// Consume returns the pending request, DirNone if there is none, and clears it.
func (l *InputLatch) Consume() Direction {
	d := l.pending
	l.pending = DirNone
	return d
}

// Resolve consumes the pending request and returns the heading to travel in:
// the request itself, or current when there was none or it would reverse
// straight into the neck.
func (l *InputLatch) Resolve(current Direction) Direction {
	d := l.Consume()
	if d == DirNone || IsOpposite(d, current) {
		return current
	}
	return d
}

func (l *InputLatch) Clear() { l.pending = DirNone }
