package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/go-flatfile/flatfile"
)

// A recordCodec converts between a set of records and one structured byte
// format. Columns carry the layout's field order for codecs that need one.
type recordCodec interface {
	Encode(w io.Writer, columns []string, recs []flatfile.Record) error
	Decode(r io.Reader) ([]flatfile.Record, error)
}

// codecFor returns the codec for a format name.
func codecFor(format string) (recordCodec, error) {
	switch format {
	case "json":
		return jsonCodec{}, nil
	case "yaml":
		return yamlCodec{}, nil
	case "csv":
		return csvCodec{}, nil
	}
	return nil, errors.Errorf("unknown format %q (want json, yaml, or csv)", format)
}

// recordColumns returns the layout's field names in declaration order,
// skipping spacers and repeated names.
func recordColumns(layout *flatfile.Layout) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, f := range layout.Fields() {
		if f.Name == "" || seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		cols = append(cols, f.Name)
	}
	return cols
}

type jsonCodec struct{}

func (jsonCodec) Encode(w io.Writer, _ []string, recs []flatfile.Record) error {
	if recs == nil {
		recs = []flatfile.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(recs), "encode json")
}

func (jsonCodec) Decode(r io.Reader) ([]flatfile.Record, error) {
	var recs []flatfile.Record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}
	return recs, nil
}

type yamlCodec struct{}

func (yamlCodec) Encode(w io.Writer, _ []string, recs []flatfile.Record) error {
	if recs == nil {
		recs = []flatfile.Record{}
	}
	data, err := yaml.Marshal(recs)
	if err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "encode yaml")
}

func (yamlCodec) Decode(r io.Reader) ([]flatfile.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	var recs []flatfile.Record
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	return recs, nil
}

type csvCodec struct{}

func (csvCodec) Encode(w io.Writer, columns []string, recs []flatfile.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return errors.Wrap(err, "encode csv")
	}
	row := make([]string, len(columns))
	for _, rec := range recs {
		for i, col := range columns {
			row[i] = rec[col]
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "encode csv")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "encode csv")
}

func (csvCodec) Decode(r io.Reader) ([]flatfile.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "decode csv")
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	recs := make([]flatfile.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(flatfile.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// nopCloser wraps an io.Writer with a no-op Close method. It makes
// os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openInput returns a ReadCloser for path, or stdin if path is empty.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

// openOutput returns a WriteCloser for path, or stdout if path is empty. An
// existing file at path is overwritten.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	return f, nil
}
