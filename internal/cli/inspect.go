package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-flatfile/flatfile"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleSpacer = lipgloss.NewStyle().Foreground(colorDim)
	styleTotal  = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	layout layoutFlags
}

func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the resolved layout",
		Long: `Resolve the declared layout and print one row per field: index, name,
rune range, width, alignment, and padding. Spacers show as (spacer).

Example:
  flatfile inspect --field id=@0 --field name=10..30 --spacer 30..32`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(&opts, cmd.OutOrStdout())
		},
	}

	addLayoutFlags(cmd, &opts.layout)

	return cmd
}

func (c *CLI) runInspect(opts *inspectOpts, w io.Writer) error {
	layout, err := opts.layout.build(c.Logger)
	if err != nil {
		return err
	}

	nameWidth := len("NAME")
	for _, f := range layout.Fields() {
		if n := len(displayName(f)); n > nameWidth {
			nameWidth = n
		}
	}

	fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("%3s  %-*s  %11s  %5s  %-5s  %s",
		"#", nameWidth, "NAME", "RANGE", "WIDTH", "ALIGN", "PAD")))
	for _, f := range layout.Fields() {
		row := fmt.Sprintf("%3d  %-*s  %11s  %5d  %-5s  %q",
			f.Index, nameWidth, displayName(f), spanString(f), f.Width, f.Align, f.Pad)
		style := styleValue
		if f.Name == "" {
			style = styleSpacer
		}
		fmt.Fprintln(w, style.Render(row))
	}
	fmt.Fprintln(w, styleTotal.Render(fmt.Sprintf("total width: %d runes", layout.TotalWidth())))
	return nil
}

// displayName returns the field name, with spacers marked.
func displayName(f flatfile.Field) string {
	if f.Name == "" {
		return "(spacer)"
	}
	return f.Name
}

// spanString renders the rune range a field covers.
func spanString(f flatfile.Field) string {
	return fmt.Sprintf("[%d,%d)", f.Start, f.End())
}
