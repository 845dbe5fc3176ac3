package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-flatfile/flatfile"
)

// layoutFlags accumulates --field and --spacer declarations in command-line
// order, plus the builder-level defaults.
type layoutFlags struct {
	decls        []decl
	defaultAlign string
	defaultPad   string
}

// decl is one --field or --spacer value as parsed. A spacer has an empty
// name.
type decl struct {
	name     string
	start    int
	hasStart bool
	width    int
	hasWidth bool
	align    string
	pad      rune
	hasPad   bool
}

// addLayoutFlags registers the layout declaration flags shared by all
// commands.
func addLayoutFlags(cmd *cobra.Command, lf *layoutFlags) {
	cmd.Flags().Var(fieldFlag{lf}, "field", "field declaration: NAME=WIDTH, NAME=START..END, or NAME=@START, optionally followed by ,left|right[,PAD]")
	cmd.Flags().Var(spacerFlag{lf}, "spacer", "anonymous span START..END, discarded when parsing")
	cmd.Flags().StringVar(&lf.defaultAlign, "default-align", "", "alignment for fields that do not declare one (left or right)")
	cmd.Flags().StringVar(&lf.defaultPad, "default-pad", "", "padding rune for fields that do not declare one")
}

// fieldFlag parses repeated --field values into lf.decls.
type fieldFlag struct{ lf *layoutFlags }

func (f fieldFlag) String() string { return "" }
func (f fieldFlag) Type() string   { return "NAME=SPEC" }

func (f fieldFlag) Set(s string) error {
	d, err := parseField(s)
	if err != nil {
		return err
	}
	f.lf.decls = append(f.lf.decls, d)
	return nil
}

// spacerFlag parses repeated --spacer values into lf.decls.
type spacerFlag struct{ lf *layoutFlags }

func (f spacerFlag) String() string { return "" }
func (f spacerFlag) Type() string   { return "START..END" }

func (f spacerFlag) Set(s string) error {
	start, end, err := parseSpan(s)
	if err != nil {
		return errors.Wrap(err, "spacer")
	}
	f.lf.decls = append(f.lf.decls, decl{start: start, hasStart: true, width: end - start, hasWidth: true})
	return nil
}

// parseField parses one --field value. The part before '=' is the field
// name; the part after is up to three comma-separated tokens: a position
// (WIDTH, START..END, or @START), an alignment, and a padding rune.
func parseField(s string) (decl, error) {
	name, spec, ok := strings.Cut(s, "=")
	if !ok || name == "" || spec == "" {
		return decl{}, errors.Errorf("field %q must take the form NAME=SPEC", s)
	}
	parts := strings.Split(spec, ",")
	if len(parts) > 3 {
		return decl{}, errors.Errorf("field %q has more than three options", s)
	}

	d := decl{name: name}
	switch {
	case strings.HasPrefix(parts[0], "@"):
		start, err := strconv.Atoi(parts[0][1:])
		if err != nil {
			return decl{}, errors.Errorf("field %q: bad start position %q", s, parts[0][1:])
		}
		d.start, d.hasStart = start, true
	case strings.Contains(parts[0], ".."):
		start, end, err := parseSpan(parts[0])
		if err != nil {
			return decl{}, errors.Wrapf(err, "field %q", s)
		}
		d.start, d.hasStart = start, true
		d.width, d.hasWidth = end-start, true
	default:
		width, err := strconv.Atoi(parts[0])
		if err != nil {
			return decl{}, errors.Errorf("field %q: bad width %q", s, parts[0])
		}
		d.width, d.hasWidth = width, true
	}

	if len(parts) > 1 {
		d.align = parts[1]
	}
	if len(parts) > 2 {
		pad, err := parsePad(parts[2])
		if err != nil {
			return decl{}, errors.Wrapf(err, "field %q", s)
		}
		d.pad, d.hasPad = pad, true
	}
	return d, nil
}

// parseSpan parses "START..END" into its bounds. Bounds are validated by
// the layout builder, not here.
func parseSpan(s string) (start, end int, err error) {
	a, b, ok := strings.Cut(s, "..")
	if !ok {
		return 0, 0, errors.Errorf("span %q must take the form START..END", s)
	}
	if start, err = strconv.Atoi(a); err != nil {
		return 0, 0, errors.Errorf("span %q: bad start %q", s, a)
	}
	if end, err = strconv.Atoi(b); err != nil {
		return 0, 0, errors.Errorf("span %q: bad end %q", s, b)
	}
	return start, end, nil
}

// parsePad requires the token to be exactly one rune.
func parsePad(s string) (rune, error) {
	if s == "" {
		return 0, errors.New("padding must be a single rune")
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, errors.Errorf("padding %q must be a single rune", s)
	}
	return r, nil
}

// build resolves the accumulated declarations into a Layout. Field-level
// alignment tokens that did not parse keep the value already in effect and
// are reported through logger.
func (lf *layoutFlags) build(logger *log.Logger) (*flatfile.Layout, error) {
	if len(lf.decls) == 0 {
		return nil, errors.New("at least one --field is required")
	}

	b := flatfile.NewBuilder()
	if lf.defaultAlign != "" {
		b.DefaultAlignment(flatfile.Alignment(lf.defaultAlign))
	}
	if lf.defaultPad != "" {
		pad, err := parsePad(lf.defaultPad)
		if err != nil {
			return nil, errors.Wrap(err, "default-pad")
		}
		b.DefaultPadding(pad)
	}

	for _, d := range lf.decls {
		if d.name == "" {
			b.Spacer(d.start, d.start+d.width)
			continue
		}
		f := b.Field(d.name)
		switch {
		case d.hasStart && d.hasWidth:
			f.Range(d.start, d.start+d.width)
		case d.hasStart:
			f.Position(d.start)
		default:
			f.Width(d.width)
		}
		if d.align != "" {
			f.Alignment(flatfile.Alignment(d.align))
		}
		if d.hasPad {
			f.Padding(d.pad)
		}
		f.Append()
	}

	layout, err := b.Build()
	if err != nil {
		return nil, err
	}
	for _, w := range b.Warnings() {
		logger.Warn("unknown alignment, keeping previous", "field", w.Field, "token", w.Token, "kept", w.Kept)
	}
	return layout, nil
}
