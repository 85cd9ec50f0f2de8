// Package stream provides a structural event surface over expressions.
//
// The Reader side turns a token sequence into a flat stream of events
// (text runs, call and argument boundaries); the Writer side is the
// symmetric builder, taking the same vocabulary of calls and producing
// escaped source text directly. Replaying a Reader's events into a
// Writer reproduces an equivalent expression.
//
// # Example: Reading
//
//	r := stream.NewReader(seq)
//	for {
//	    ev, err := r.ReadEvent()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// # Example: Writing
//
//	w := stream.NewWriter(&buf)
//	w.BeginCall("if")
//	w.BeginArg()
//	w.Text([]byte("x"))
//	w.BeginArg()
//	w.Text([]byte("yes"))
//	w.EndCall()
//
// builds {if,x,yes} with any structural bytes in the text escaped.
package stream
