// Package flatfile parses and formats fixed-width flat-file records.
//
// A Layout places each field at a fixed span of character positions within a
// record line. Layouts are declared through a Builder and then used to Parse
// lines into Records and Format Records back into lines. All positions and
// widths count Unicode code points, never bytes.
package flatfile

// A Record holds the values of one fixed-width record keyed by field name.
// Spacer fields never appear in a Record.
type Record map[string]string
