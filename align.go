package flatfile

import "strings"

// An Alignment names the side of a field its content sits on. Padding fills
// the opposite side: AlignLeft pads after the content, AlignRight before it.
type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// ParseAlignment normalizes a free-text alignment token. Matching is
// case-insensitive and ignores surrounding space. The second return value
// reports whether the token named a known Alignment.
func ParseAlignment(s string) (Alignment, bool) {
	a := Alignment(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", false
	}
	return a, true
}

// Valid reports whether a is one of the defined Alignment values.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignRight:
		return true
	default:
		return false
	}
}
