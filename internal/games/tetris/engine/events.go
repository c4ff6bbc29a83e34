package engine

import "fmt"

// EventType names something the engine did.
type EventType string

const (
	EventRequestMove                     EventType = "requestMove"
	EventRequestClockwiseRotation        EventType = "requestClockwiseRotation"
	EventRequestCounterClockwiseRotation EventType = "requestCounterClockwiseRotation"
	EventLinesFormed                     EventType = "linesFormed"
	EventLinesCleared                    EventType = "linesCleared"
	EventActivePieceReplaced             EventType = "activePieceReplaced"
	EventPieceMoved                      EventType = "pieceMoved"
	EventPiecePlaced                     EventType = "piecePlaced"
	EventGameEndTriggered                EventType = "gameEndTriggered"
)

// Event is delivered to listeners. Piece and Lines are snapshots owned by
// the event; changing them has no effect on the engine.
type Event struct {
	Type EventType

	// Name is the event's display name. It equals Type except for move
	// requests, which embed the delta: "request move (1, 0)".
	Name string

	Piece  *Piece // nil when the event has no piece
	Lines  []int  // linesFormed and linesCleared only
	DX, DY int    // requestMove only
}

func newEvent(t EventType) Event {
	return Event{Type: t, Name: string(t)}
}

func moveRequestEvent(dx, dy int) Event {
	return Event{
		Type: EventRequestMove,
		Name: fmt.Sprintf("request move (%d, %d)", dx, dy),
		DX:   dx,
		DY:   dy,
	}
}

func (e Event) withPiece(p *Piece) Event {
	if p != nil {
		snap := *p
		e.Piece = &snap
	}
	return e
}

func (e Event) withLines(lines []int) Event {
	e.Lines = append([]int(nil), lines...)
	return e
}

// Listener receives engine events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// PanicHandler is told about a listener that panicked during Publish.
type PanicHandler func(e Event, recovered any)

// Bus dispatches events synchronously to its listeners in the order they
// subscribed. A panicking listener does not stop delivery to the others.
type Bus struct {
	listeners []Listener
	onPanic   PanicHandler
}

// Subscribe appends a listener. Nil listeners are ignored.
func (b *Bus) Subscribe(l Listener) {
	if l == nil {
		return
	}
	b.listeners = append(b.listeners, l)
}

// SetPanicHandler installs the handler for recovered listener panics.
func (b *Bus) SetPanicHandler(h PanicHandler) {
	b.onPanic = h
}

// Len returns the number of subscribed listeners.
func (b *Bus) Len() int {
	return len(b.listeners)
}

// Publish delivers e to every listener.
func (b *Bus) Publish(e Event) {
	for _, l := range b.listeners {
		b.deliver(l, e)
	}
}

func (b *Bus) deliver(l Listener, e Event) {
	defer func() {
		if r := recover(); r != nil && b.onPanic != nil {
			b.onPanic(e, r)
		}
	}()
	l.OnEvent(e)
}
