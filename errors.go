package flatfile

import "strconv"

// An InsufficientBufferError describes an input record that is shorter than
// the width a layout requires. It is recoverable: the caller may skip the
// record and continue with the next one.
type InsufficientBufferError struct {
	Required  int  // runes required by the layout
	Available int  // runes present in the input; meaningful only when Known
	Known     bool // false when the available length cannot be determined
}

func (e *InsufficientBufferError) Error() string {
	if !e.Known {
		return "flatfile: undefined buffer size, required " + strconv.Itoa(e.Required)
	}
	return "flatfile: insufficient buffer size, required " + strconv.Itoa(e.Required) +
		" only " + strconv.Itoa(e.Available) + " available"
}

// An OrderingError describes a field declaration whose explicit start
// position lies before the extent already claimed by earlier declarations.
type OrderingError struct {
	Index    int    // 0-based position of the offending declaration
	Name     string // field name, empty for spacers
	Start    int    // the requested start position
	Position int    // the resolution cursor at the time of the request
}

func (e *OrderingError) Error() string {
	return "flatfile: field " + fieldRef(e.Index, e.Name) + " starts at " +
		strconv.Itoa(e.Start) + " before position " + strconv.Itoa(e.Position)
}

// A MissingSpecificationError describes a field declaration whose width was
// never determined, or was determined as less than one. A width is determined
// by declaring it directly or by a following declaration's explicit start.
type MissingSpecificationError struct {
	Index    int    // 0-based position of the offending declaration
	Name     string // field name, empty for spacers
	Width    int    // the resolved width; meaningful only when HasWidth
	HasWidth bool   // true when a width resolved but was not positive
}

func (e *MissingSpecificationError) Error() string {
	if e.HasWidth {
		return "flatfile: field " + fieldRef(e.Index, e.Name) +
			" resolved to non-positive width " + strconv.Itoa(e.Width)
	}
	return "flatfile: field " + fieldRef(e.Index, e.Name) +
		" needs a width or a following start position"
}

func fieldRef(index int, name string) string {
	if name == "" {
		return strconv.Itoa(index)
	}
	return strconv.Itoa(index) + " (" + name + ")"
}
