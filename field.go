package flatfile

// A Field is one resolved slot in a Layout. Start and Width count runes, not
// bytes. Fields with an empty Name are spacers: they claim their span in the
// record but never contribute a Record entry.
type Field struct {
	Index int
	Name  string
	Start int
	Width int
	Align Alignment
	Pad   rune
}

// End returns the exclusive end position of the field.
func (f Field) End() int {
	return f.Start + f.Width
}
