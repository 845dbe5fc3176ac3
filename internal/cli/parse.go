package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-flatfile/flatfile"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	layout  layoutFlags
	input   string
	output  string
	format  string
	onError string
}

func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse fixed-width lines into records",
		Long: `Parse fixed-width lines into structured records.

Each input line is cut up against the declared layout and written as one
record. Lines with fewer runes than the layout needs are skipped with a
warning unless --on-error=abort.

Examples:
  flatfile parse --field id=4,right,0 --field name=4..12 -i people.txt
  flatfile parse --field id=@0 --field rest=@10 --spacer 20..24 -f yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(&opts)
		},
	}

	addLayoutFlags(cmd, &opts.layout)
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file (default stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, yaml, or csv (default json)")
	cmd.Flags().StringVar(&opts.onError, "on-error", "", "policy for lines that fail: skip or abort (default skip)")

	return cmd
}

func (c *CLI) runParse(opts *parseOpts) error {
	layout, err := opts.layout.build(c.Logger)
	if err != nil {
		return err
	}
	codec, err := codecFor(firstNonEmpty(opts.format, c.cfg.Output, "json"))
	if err != nil {
		return err
	}
	abort, err := parseOnError(firstNonEmpty(opts.onError, c.cfg.OnError, "skip"))
	if err != nil {
		return err
	}

	in, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer in.Close()

	r := flatfile.NewReader(in, layout)
	var recs []flatfile.Record
	var skipped int
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		var bufErr *flatfile.InsufficientBufferError
		switch {
		case err == nil:
			recs = append(recs, rec)
		case errors.As(err, &bufErr) && !abort:
			c.Logger.Warn("skipping short line", "err", err)
			skipped++
		default:
			return err
		}
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := codec.Encode(out, recordColumns(layout), recs); err != nil {
		return err
	}
	c.Logger.Debug("parsed input", "records", len(recs), "skipped", skipped)
	return nil
}

// parseOnError maps the on-error policy token to its abort flag.
func parseOnError(s string) (abort bool, err error) {
	switch s {
	case "skip":
		return false, nil
	case "abort":
		return true, nil
	}
	return false, errors.Errorf("unknown on-error policy %q (want skip or abort)", s)
}
