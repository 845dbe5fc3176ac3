package flatfile

import "slices"

// A Layout is a resolved, immutable sequence of fields plus the total record
// width. Layouts are produced by Builder.Build and are safe for concurrent
// use: Parse and Format share no state between calls.
type Layout struct {
	fields []Field
	width  int
}

// TotalWidth returns the rune count every record of this layout occupies.
func (l *Layout) TotalWidth() int {
	return l.width
}

// Fields returns a copy of the resolved fields in index order.
func (l *Layout) Fields() []Field {
	return slices.Clone(l.fields)
}

// Parse extracts one Record from line. The line must hold at least
// TotalWidth runes or Parse fails with an *InsufficientBufferError; runes
// past the total width are ignored. Each extracted value has its padding
// stripped per the field's alignment. When two fields share a name the first
// occurrence's value wins. Spacer spans are discarded.
func (l *Layout) Parse(line string) (Record, error) {
	v := newRuneView(line)
	if n := v.len(); n < l.width {
		return nil, &InsufficientBufferError{Required: l.width, Available: n, Known: true}
	}
	rec := make(Record, len(l.fields))
	for _, f := range l.fields {
		if f.Name == "" {
			continue
		}
		if _, ok := rec[f.Name]; ok {
			continue
		}
		rec[f.Name] = StripPadding(v.slice(f.Start, f.End()), f.Align, f.Pad)
	}
	return rec, nil
}

// Format renders rec as a line of exactly TotalWidth runes. Each field's
// value is forced to the field's width: longer values are truncated, shorter
// ones padded per the field's alignment. Names absent from rec and spacers
// render as padding alone. Spans claimed by no field stay filled with
// spaces. Formatting cannot fail.
func (l *Layout) Format(rec Record) string {
	line := make([]rune, l.width)
	for i := range line {
		line[i] = ' '
	}
	for _, f := range l.fields {
		var value string
		if f.Name != "" {
			value = rec[f.Name]
		}
		i := f.Start
		for _, r := range FixedWidth(value, f.Width, f.Align, f.Pad) {
			line[i] = r
			i++
		}
	}
	return string(line)
}
