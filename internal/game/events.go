package game

import (
	"fmt"
	"io"
)

type EventType int

const (
	EventAte EventType = iota
	EventDied
	EventWon
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	case EventWon:
		return "won"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y int
	Data int // Length after EventAte; final score for EventDied and EventWon.
}

type EventHandler func(Event)

// EventBus fans events out to subscribers synchronously, on the goroutine
// that runs the tick.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// ConsoleLine is the console report for e: "+1" on growth and "= <score>"
// when a round ends. Other events report nothing.
func ConsoleLine(e Event) (string, bool) {
	switch e.Type {
	case EventAte:
		return "+1", true
	case EventDied, EventWon:
		return fmt.Sprintf("= %d", e.Data), true
	}
	return "", false
}

// SubscribeConsole writes the ConsoleLine of every reported event to w.
func SubscribeConsole(bus *EventBus, w io.Writer) {
	report := func(e Event) {
		if line, ok := ConsoleLine(e); ok {
			fmt.Fprintln(w, line)
		}
	}
	bus.Subscribe(EventAte, report)
	bus.Subscribe(EventDied, report)
	bus.Subscribe(EventWon, report)
}
