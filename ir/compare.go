package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally, ignoring
// parent links and offsets. The result will be 0 if a==b, -1 if a < b,
// and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case TextType:
		return strings.Compare(a.Text, b.Text)
	case CallType:
		if d := strings.Compare(a.Name, b.Name); d != 0 {
			return d
		}
	}
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

// Equal reports structural equality, ignoring parent links and offsets.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
