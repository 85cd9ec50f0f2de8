package token

// The four structural bytes. Everything else is literal.
const (
	Escape byte = '\\'
	Open   byte = '{'
	Sep    byte = ','
	Close  byte = '}'
)

// NeedsEscape reports whether c must be escaped to stay literal when
// writing expression text. The escape unit and Open always act
// structurally; Sep and Close only inside an open call.
func NeedsEscape(c byte, inCall bool) bool {
	switch c {
	case Escape, Open:
		return true
	case Sep, Close:
		return inCall
	}
	return false
}

type class int

const (
	classLiteral class = iota
	classEscape
	classOpen
	classSep
	classClose
)

// classify reports how one input byte behaves, consuming exactly one
// unit. In name scan mode only Sep and Close act structurally (they end
// the name); the escape byte and Open are ordinary name content there.
// Whether Sep and Close act structurally in normal mode further depends
// on a frame being open, which is the tokenizer's call, not the
// scanner's.
func classify(c byte, nameScan bool) class {
	if nameScan {
		switch c {
		case Sep:
			return classSep
		case Close:
			return classClose
		}
		return classLiteral
	}
	switch c {
	case Escape:
		return classEscape
	case Open:
		return classOpen
	case Sep:
		return classSep
	case Close:
		return classClose
	}
	return classLiteral
}
