package flatfile

import (
	"slices"

	"github.com/pkg/errors"
)

// A Builder accumulates field declarations and resolves them into a Layout.
//
// Fields may declare an explicit width, an explicit start position, both (a
// range), or a start position alone. A field declared by start position
// alone stays open until the next declaration's explicit start closes it:
// its width becomes the distance between the two starts.
//
// The zero value is not usable; call NewBuilder.
type Builder struct {
	decls    []fieldDecl
	align    Alignment
	pad      rune
	warnings []Warning
	err      error
}

// fieldDecl is a single declaration as given, before resolution.
type fieldDecl struct {
	name     string
	start    int
	hasStart bool
	width    int
	hasWidth bool
	align    Alignment
	pad      rune
}

// A Warning records a field-level alignment token that did not parse. The
// declaration keeps the alignment it already had.
type Warning struct {
	Field string    // field name, empty for spacers
	Token string    // the token as given
	Kept  Alignment // the alignment left in effect
}

// NewBuilder returns a Builder with fields aligned left and padded with
// spaces.
func NewBuilder() *Builder {
	return &Builder{
		align: AlignLeft,
		pad:   ' ',
	}
}

// DefaultAlignment sets the alignment given to declarations that follow and
// carry no override of their own. An unrecognized token fails Build.
func (b *Builder) DefaultAlignment(a Alignment) *Builder {
	norm, ok := ParseAlignment(string(a))
	if !ok {
		if b.err == nil {
			b.err = errors.Errorf("flatfile: unknown alignment %q", string(a))
		}
		return b
	}
	b.align = norm
	return b
}

// DefaultPadding sets the padding rune given to declarations that follow and
// carry no override of their own.
func (b *Builder) DefaultPadding(pad rune) *Builder {
	b.pad = pad
	return b
}

// Field starts the declaration of a named field. The declaration joins the
// layout once Append or Insert is called on the returned FieldBuilder.
func (b *Builder) Field(name string) *FieldBuilder {
	return &FieldBuilder{
		b: b,
		decl: fieldDecl{
			name:  name,
			align: b.align,
			pad:   b.pad,
		},
	}
}

// Spacer appends an anonymous field covering [start, end). Spacers claim
// their span when parsing and render as padding when formatting, but never
// appear in a Record.
func (b *Builder) Spacer(start, end int) *Builder {
	b.decls = append(b.decls, fieldDecl{
		start:    start,
		hasStart: true,
		width:    end - start,
		hasWidth: true,
		align:    b.align,
		pad:      b.pad,
	})
	return b
}

// Warnings returns the diagnostics collected while declaring fields.
func (b *Builder) Warnings() []Warning {
	return slices.Clone(b.warnings)
}

// Build resolves the declarations, in order, into a Layout.
//
// Resolution is a single left-to-right pass over a position cursor that
// starts at 0. A declaration with an explicit start moves the cursor to that
// start; moving it backward is an *OrderingError. Advancing the cursor
// closes a preceding open field, fixing its width as the gap between the two
// starts. A declaration without an explicit start begins at the cursor. A
// declared width advances the cursor past the field.
//
// Every field must end the pass with a width of at least one rune; a field
// still open after the pass or a width that resolves below one is a
// *MissingSpecificationError. A DefaultAlignment token that failed to parse
// also surfaces here.
//
// Build leaves the Builder intact. It may be called again, including after
// further declarations.
func (b *Builder) Build() (*Layout, error) {
	if b.err != nil {
		return nil, b.err
	}
	fields := make([]Field, 0, len(b.decls))
	position := 0
	for i, d := range b.decls {
		f := Field{
			Index: i,
			Name:  d.name,
			Align: d.align,
			Pad:   d.pad,
		}
		switch {
		case d.hasStart:
			if d.start < position {
				return nil, &OrderingError{Index: i, Name: d.name, Start: d.start, Position: position}
			}
			position = d.start
			// A Width of 0 marks the preceding field as still open; the
			// distance between the two starts closes it.
			if len(fields) > 0 && fields[len(fields)-1].Width == 0 {
				prev := &fields[len(fields)-1]
				w := position - prev.Start
				if w < 1 {
					return nil, &MissingSpecificationError{Index: prev.Index, Name: prev.Name, Width: w, HasWidth: true}
				}
				prev.Width = w
			}
		case !d.hasWidth:
			return nil, &MissingSpecificationError{Index: i, Name: d.name}
		}
		f.Start = position
		if d.hasWidth {
			if d.width < 1 {
				return nil, &MissingSpecificationError{Index: i, Name: d.name, Width: d.width, HasWidth: true}
			}
			f.Width = d.width
			position += d.width
		}
		fields = append(fields, f)
	}
	for i := range fields {
		if fields[i].Width == 0 {
			return nil, &MissingSpecificationError{Index: fields[i].Index, Name: fields[i].Name}
		}
	}
	return &Layout{fields: fields, width: position}, nil
}

// A FieldBuilder holds one pending field declaration. Append or Insert
// completes it and returns control to the Builder.
type FieldBuilder struct {
	b    *Builder
	decl fieldDecl
}

// Width declares the field as n runes wide.
func (f *FieldBuilder) Width(n int) *FieldBuilder {
	f.decl.width = n
	f.decl.hasWidth = true
	return f
}

// Position declares the rune offset the field starts at. A field declared by
// Position alone stays open until the next declaration's start closes it.
func (f *FieldBuilder) Position(n int) *FieldBuilder {
	f.decl.start = n
	f.decl.hasStart = true
	return f
}

// Range declares the field as covering [start, end).
func (f *FieldBuilder) Range(start, end int) *FieldBuilder {
	f.decl.start = start
	f.decl.hasStart = true
	f.decl.width = end - start
	f.decl.hasWidth = true
	return f
}

// Alignment overrides the alignment for this field. An unrecognized token
// keeps the value already in effect and records a Warning on the Builder.
func (f *FieldBuilder) Alignment(a Alignment) *FieldBuilder {
	norm, ok := ParseAlignment(string(a))
	if !ok {
		f.b.warnings = append(f.b.warnings, Warning{Field: f.decl.name, Token: string(a), Kept: f.decl.align})
		return f
	}
	f.decl.align = norm
	return f
}

// Padding overrides the padding rune for this field.
func (f *FieldBuilder) Padding(pad rune) *FieldBuilder {
	f.decl.pad = pad
	return f
}

// Append adds the declaration after all existing declarations.
func (f *FieldBuilder) Append() *Builder {
	f.b.decls = append(f.b.decls, f.decl)
	return f.b
}

// Insert adds the declaration at index, shifting later declarations right.
// The index must lie within [0, number of declarations].
func (f *FieldBuilder) Insert(index int) *Builder {
	f.b.decls = slices.Insert(f.b.decls, index, f.decl)
	return f.b
}
