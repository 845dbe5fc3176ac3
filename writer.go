package flatfile

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// A Writer renders records as fixed-width lines on an output stream.
type Writer struct {
	w      *bufio.Writer
	layout *Layout
}

// NewWriter returns a Writer that renders records against layout.
func NewWriter(w io.Writer, layout *Layout) *Writer {
	return &Writer{
		w:      bufio.NewWriter(w),
		layout: layout,
	}
}

// Write renders rec as one newline-terminated line.
func (w *Writer) Write(rec Record) error {
	if _, err := w.w.WriteString(w.layout.Format(rec)); err != nil {
		return errors.Wrap(err, "flatfile: write")
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "flatfile: write")
	}
	return nil
}

// Flush writes any buffered lines to the underlying writer. Callers must
// Flush once all records are written.
func (w *Writer) Flush() error {
	return errors.Wrap(w.w.Flush(), "flatfile: flush")
}
