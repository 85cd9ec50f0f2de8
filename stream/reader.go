package stream

import (
	"fmt"
	"io"

	"github.com/jagprog5/language-expression/token"
)

// Reader yields the structural events of a token sequence in source
// order.
type Reader struct {
	seq   token.Seq
	i     int
	depth int

	pending    Event
	hasPending bool
}

// NewReader creates a Reader over seq, which should come from
// token.Tokenize or verify with Seq.Verify.
func NewReader(seq token.Seq) *Reader {
	return &Reader{seq: seq}
}

// Depth returns the number of calls opened by BeginCall events and not
// yet closed.
func (r *Reader) Depth() int {
	return r.depth
}

// ReadEvent returns the next event. Returns io.EOF when the sequence is
// exhausted.
func (r *Reader) ReadEvent() (*Event, error) {
	if r.hasPending {
		ev := r.pending
		r.hasPending = false
		return r.emit(&ev), nil
	}
	if r.i >= len(r.seq) {
		return nil, io.EOF
	}
	t := &r.seq[r.i]
	switch t.Type {
	case token.TCharacter:
		off := t.Offset
		var text []byte
		for r.i < len(r.seq) && r.seq[r.i].Type == token.TCharacter {
			text = append(text, r.seq[r.i].Char)
			r.i++
		}
		return &Event{Type: EventText, Offset: off, Text: text}, nil
	case token.TFunction:
		ev := &Event{Type: EventBeginCall, Offset: t.Offset, Name: string(t.Name)}
		// the byte right after the name is '}' for zero args, ',' otherwise
		after := t.Offset + 1 + len(t.Name)
		if t.NumArgs == 0 {
			r.setPending(Event{Type: EventEndCall, Offset: after})
		} else {
			r.setPending(Event{Type: EventBeginArg, Offset: after})
		}
		r.i++
		return r.emit(ev), nil
	case token.TEndArg:
		r.i++
		if t.NextArgDelta == 0 {
			return r.emit(&Event{Type: EventEndCall, Offset: t.Offset}), nil
		}
		return &Event{Type: EventBeginArg, Offset: t.Offset}, nil
	}
	return nil, &Error{Msg: fmt.Sprintf("unexpected %s token at %d", t.Type, r.i)}
}

func (r *Reader) setPending(ev Event) {
	r.pending = ev
	r.hasPending = true
}

func (r *Reader) emit(ev *Event) *Event {
	switch ev.Type {
	case EventBeginCall:
		r.depth++
	case EventEndCall:
		r.depth--
	}
	return ev
}

// Copy replays r's remaining events into w, reproducing an equivalent
// expression.
func Copy(w *Writer, r *Reader) error {
	for {
		ev, err := r.ReadEvent()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch ev.Type {
		case EventText:
			err = w.Text(ev.Text)
		case EventBeginCall:
			err = w.BeginCall(ev.Name)
		case EventBeginArg:
			err = w.BeginArg()
		case EventEndCall:
			err = w.EndCall()
		}
		if err != nil {
			return err
		}
	}
}
