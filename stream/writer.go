package stream

import (
	"fmt"
	"io"
	"strings"

	"github.com/jagprog5/language-expression/token"
)

// Writer builds expression source text from the same event vocabulary a
// Reader produces. Structural bytes inside text are escaped as needed
// for the position they land in.
type Writer struct {
	writer io.Writer
	offset int64

	// one entry per open call, counting BeginArg calls so far
	frames []int
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

// Depth returns the number of open calls.
func (w *Writer) Depth() int {
	return len(w.frames)
}

// Offset returns the byte offset in the output stream.
func (w *Writer) Offset() int64 {
	return w.offset
}

// Reset resets the writer to emit to a new writer.
func (w *Writer) Reset(out io.Writer) {
	w.writer = out
	w.offset = 0
	w.frames = w.frames[:0]
}

// BeginCall opens a call. The name may contain any bytes except ',' and
// '}', which would end it early when read back.
func (w *Writer) BeginCall(name string) error {
	if err := w.checkInArg(); err != nil {
		return err
	}
	if i := strings.IndexAny(name, string([]byte{token.Sep, token.Close})); i >= 0 {
		return &Error{Msg: fmt.Sprintf("call name %q cannot contain %q", name, name[i])}
	}
	if err := w.writeBytes([]byte{token.Open}); err != nil {
		return err
	}
	if err := w.writeBytes([]byte(name)); err != nil {
		return err
	}
	w.frames = append(w.frames, 0)
	return nil
}

// BeginArg starts the next argument of the open call.
func (w *Writer) BeginArg() error {
	if len(w.frames) == 0 {
		return &Error{Msg: "BeginArg outside a call"}
	}
	if err := w.writeBytes([]byte{token.Sep}); err != nil {
		return err
	}
	w.frames[len(w.frames)-1]++
	return nil
}

// Text writes a literal run, escaping structural bytes.
func (w *Writer) Text(text []byte) error {
	if err := w.checkInArg(); err != nil {
		return err
	}
	inCall := len(w.frames) > 0
	start := 0
	for i := 0; i < len(text); i++ {
		if !token.NeedsEscape(text[i], inCall) {
			continue
		}
		if start < i {
			if err := w.writeBytes(text[start:i]); err != nil {
				return err
			}
		}
		if err := w.writeBytes([]byte{token.Escape, text[i]}); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(text) {
		return w.writeBytes(text[start:])
	}
	return nil
}

// EndCall closes the open call.
func (w *Writer) EndCall() error {
	if len(w.frames) == 0 {
		return &Error{Msg: "EndCall outside a call"}
	}
	if err := w.writeBytes([]byte{token.Close}); err != nil {
		return err
	}
	w.frames = w.frames[:len(w.frames)-1]
	return nil
}

// checkInArg rejects content written directly after a call opens:
// the bytes after '{' scan as the name until the first separator, so
// text or a nested call there needs a BeginArg before it.
func (w *Writer) checkInArg() error {
	if len(w.frames) > 0 && w.frames[len(w.frames)-1] == 0 {
		return &Error{Msg: "content inside a call requires BeginArg first"}
	}
	return nil
}

// writeBytes writes data and updates the offset.
func (w *Writer) writeBytes(data []byte) error {
	n, err := w.writer.Write(data)
	if err != nil {
		return err
	}
	w.offset += int64(n)
	return nil
}
