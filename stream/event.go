package stream

import "fmt"

// Event is one structural step through an expression. Events correspond
// one to one with Writer method calls, so a Reader's output can be
// replayed into a Writer.
type Event struct {
	Type   EventType
	Offset int

	// Name is set for EventBeginCall.
	Name string

	// Text is set for EventText: a maximal coalesced run of literal
	// bytes, escapes already resolved.
	Text []byte
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventText EventType = iota
	EventBeginCall
	EventBeginArg
	EventEndCall
)

func (t EventType) String() string {
	switch t {
	case EventText:
		return "Text"
	case EventBeginCall:
		return "BeginCall"
	case EventBeginArg:
		return "BeginArg"
	case EventEndCall:
		return "EndCall"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}
