package flatfile

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// A Reader parses fixed-width records from an input stream, one line per
// record.
type Reader struct {
	s      *bufio.Scanner
	layout *Layout
	line   int
	err    error // terminal condition, sticky
}

// NewReader returns a Reader that parses lines from r against layout.
func NewReader(r io.Reader, layout *Layout) *Reader {
	return &Reader{
		s:      bufio.NewScanner(r),
		layout: layout,
	}
}

// Read returns the next record. It returns io.EOF once the input is
// exhausted. A line that fails to parse does not end the stream: the error
// comes back wrapped with its 1-based line number and the following Read
// moves on to the next line. Errors from the underlying reader are terminal.
func (r *Reader) Read() (Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			r.err = errors.Wrap(err, "flatfile: read")
			return nil, r.err
		}
		r.err = io.EOF
		return nil, io.EOF
	}
	r.line++
	rec, err := r.layout.Parse(r.s.Text())
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", r.line)
	}
	return rec, nil
}

// ReadAll reads records until the input is exhausted, stopping at the first
// error. The records read before the failure are returned with it.
func (r *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}
