package flatfile

import (
	"strings"
	"unicode/utf8"
)

// Truncate returns the first width runes of s. Strings of width runes or
// fewer are returned unchanged. A non-positive width yields "".
func Truncate(s string, width int) string {
	return truncate(newRuneView(s), width)
}

// Pad extends s to width runes with copies of pad on the side opposite the
// alignment. Strings of width runes or more are returned unchanged.
func Pad(s string, width int, align Alignment, pad rune) string {
	return padView(newRuneView(s), width, align, pad)
}

// FixedWidth forces s to exactly width runes: longer strings are truncated,
// shorter strings are padded per align, and exact fits are returned
// unchanged.
func FixedWidth(s string, width int, align Alignment, pad rune) string {
	return fixedWidth(newRuneView(s), width, align, pad)
}

// StripPadding removes the run of pad runes that Pad would have added: the
// trailing run for AlignLeft, the leading run for AlignRight. Content that
// happens to end (or start) in the pad rune is indistinguishable from
// padding and is removed with it.
func StripPadding(s string, align Alignment, pad rune) string {
	if align == AlignRight {
		return strings.TrimLeft(s, string(pad))
	}
	return strings.TrimRight(s, string(pad))
}

func truncate(v runeView, width int) string {
	if width <= 0 {
		return ""
	}
	if v.len() <= width {
		return v.data
	}
	return v.slice(0, width)
}

func padView(v runeView, width int, align Alignment, pad rune) string {
	n := v.len()
	if n >= width {
		return v.data
	}
	var b strings.Builder
	b.Grow(len(v.data) + (width-n)*utf8.UTFMax)
	if align == AlignRight {
		for i := n; i < width; i++ {
			b.WriteRune(pad)
		}
		b.WriteString(v.data)
		return b.String()
	}
	b.WriteString(v.data)
	for i := n; i < width; i++ {
		b.WriteRune(pad)
	}
	return b.String()
}

func fixedWidth(v runeView, width int, align Alignment, pad rune) string {
	switch n := v.len(); {
	case n > width:
		return truncate(v, width)
	case n < width:
		return padView(v, width, align, pad)
	default:
		return v.data
	}
}

// runeView wraps a string with a lazily built table of rune start offsets so
// positions counted in runes can slice the underlying bytes. The table stays
// nil for ASCII-only strings, which slice directly by byte offset.
type runeView struct {
	data string
	// offsets[n] is the byte index of the n-th rune in data. nil when every
	// rune is a single byte.
	offsets []int
}

func newRuneView(s string) runeView {
	v := runeView{data: s}
	i := firstMultiByte(s)
	if i == len(s) {
		return v
	}
	offsets := make([]int, i, len(s))
	for j := 0; j < i; j++ {
		offsets[j] = j
	}
	for i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		offsets = append(offsets, i)
		i += size
	}
	v.offsets = offsets
	return v
}

func (v runeView) len() int {
	if v.offsets == nil {
		return len(v.data)
	}
	return len(v.offsets)
}

// slice returns the substring covering runes [start, end). Both bounds must
// lie within [0, len].
func (v runeView) slice(start, end int) string {
	return v.data[v.byteIndex(start):v.byteIndex(end)]
}

func (v runeView) byteIndex(n int) int {
	if v.offsets == nil {
		return n
	}
	if n == len(v.offsets) {
		return len(v.data)
	}
	return v.offsets[n]
}

// firstMultiByte returns the byte index of the first multi-byte rune in s,
// or len(s) when s holds none.
func firstMultiByte(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i]&0x80 == 0x80 {
			return i
		}
	}
	return len(s)
}
