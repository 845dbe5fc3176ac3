package flatfile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilder_Build(t *testing.T) {
	for _, tt := range []struct {
		name      string
		builder   *Builder
		want      []Field
		wantWidth int
	}{
		{
			name:      "single field",
			builder:   NewBuilder().Field("first").Width(20).Append(),
			want:      []Field{{0, "first", 0, 20, AlignLeft, ' '}},
			wantWidth: 20,
		},
		{
			name: "builder defaults",
			builder: NewBuilder().
				DefaultAlignment(AlignRight).
				DefaultPadding('-').
				Field("first").Width(20).Append(),
			want:      []Field{{0, "first", 0, 20, AlignRight, '-'}},
			wantWidth: 20,
		},
		{
			name: "two fields",
			builder: NewBuilder().
				Field("first").Width(20).Append().
				Field("second").Range(20, 50).Alignment(AlignRight).Padding('0').Append(),
			want: []Field{
				{0, "first", 0, 20, AlignLeft, ' '},
				{1, "second", 20, 30, AlignRight, '0'},
			},
			wantWidth: 50,
		},
		{
			name:      "spacer",
			builder:   NewBuilder().Spacer(5, 15),
			want:      []Field{{0, "", 5, 10, AlignLeft, ' '}},
			wantWidth: 15,
		},
		{
			name: "spacer then field",
			builder: NewBuilder().
				Spacer(0, 5).
				Field("test").Range(5, 10).Append(),
			want: []Field{
				{0, "", 0, 5, AlignLeft, ' '},
				{1, "test", 5, 5, AlignLeft, ' '},
			},
			wantWidth: 10,
		},
		{
			name: "open width closed by next start",
			builder: NewBuilder().
				Field("first").Position(0).Append().
				Field("second").Range(20, 50).Append(),
			want: []Field{
				{0, "first", 0, 20, AlignLeft, ' '},
				{1, "second", 20, 30, AlignLeft, ' '},
			},
			wantWidth: 50,
		},
		{
			name: "chain of open widths",
			builder: NewBuilder().
				Field("a").Position(0).Append().
				Field("b").Position(10).Append().
				Field("c").Range(15, 25).Append(),
			want: []Field{
				{0, "a", 0, 10, AlignLeft, ' '},
				{1, "b", 10, 5, AlignLeft, ' '},
				{2, "c", 15, 10, AlignLeft, ' '},
			},
			wantWidth: 25,
		},
		{
			name: "gap between fields",
			builder: NewBuilder().
				Field("a").Width(3).Append().
				Field("b").Range(5, 8).Append(),
			want: []Field{
				{0, "a", 0, 3, AlignLeft, ' '},
				{1, "b", 5, 3, AlignLeft, ' '},
			},
			wantWidth: 8,
		},
		{
			name: "insert at front",
			builder: NewBuilder().
				Field("first").Width(20).Append().
				Field("second").Width(30).Alignment(AlignRight).Padding('X').Insert(0),
			want: []Field{
				{0, "second", 0, 30, AlignRight, 'X'},
				{1, "first", 30, 20, AlignLeft, ' '},
			},
			wantWidth: 50,
		},
		{
			name: "duplicate names",
			builder: NewBuilder().
				Field("test").Width(5).Append().
				Field("test").Width(5).Append(),
			want: []Field{
				{0, "test", 0, 5, AlignLeft, ' '},
				{1, "test", 5, 5, AlignLeft, ' '},
			},
			wantWidth: 10,
		},
		{
			name:      "empty builder",
			builder:   NewBuilder(),
			want:      []Field{},
			wantWidth: 0,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := tt.builder.Build()
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, layout.Fields()); diff != "" {
				t.Errorf("Build() fields mismatch (-want +got):\n%s", diff)
			}
			if layout.TotalWidth() != tt.wantWidth {
				t.Errorf("TotalWidth() expected %v, have %v", tt.wantWidth, layout.TotalWidth())
			}
		})
	}
}

func TestBuilder_BuildOrderingError(t *testing.T) {
	for _, tt := range []struct {
		name    string
		builder *Builder
		want    OrderingError
	}{
		{
			name: "start before previous start",
			builder: NewBuilder().
				Field("a").Position(5).Append().
				Field("b").Position(3).Append(),
			want: OrderingError{Index: 1, Name: "b", Start: 3, Position: 5},
		},
		{
			name: "start inside previous field",
			builder: NewBuilder().
				Field("a").Range(0, 10).Append().
				Field("b").Position(7).Width(2).Append(),
			want: OrderingError{Index: 1, Name: "b", Start: 7, Position: 10},
		},
		{
			name:    "negative start",
			builder: NewBuilder().Field("a").Position(-1).Width(5).Append(),
			want:    OrderingError{Index: 0, Name: "a", Start: -1, Position: 0},
		},
		{
			name: "spacer behind cursor",
			builder: NewBuilder().
				Field("a").Width(8).Append().
				Spacer(2, 4),
			want: OrderingError{Index: 1, Name: "", Start: 2, Position: 8},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			var ordErr *OrderingError
			if !errors.As(err, &ordErr) {
				t.Fatalf("Build() expected *OrderingError, have %v", err)
			}
			if *ordErr != tt.want {
				t.Errorf("Build() expected %+v, have %+v", tt.want, *ordErr)
			}
		})
	}
}

func TestBuilder_BuildMissingSpecificationError(t *testing.T) {
	for _, tt := range []struct {
		name    string
		builder *Builder
		want    MissingSpecificationError
	}{
		{
			name:    "no width no start",
			builder: NewBuilder().Field("first").Append(),
			want:    MissingSpecificationError{Index: 0, Name: "first"},
		},
		{
			name:    "trailing open width",
			builder: NewBuilder().Field("last").Position(5).Append(),
			want:    MissingSpecificationError{Index: 0, Name: "last"},
		},
		{
			name: "open width never closed",
			builder: NewBuilder().
				Field("open").Position(0).Append().
				Field("next").Width(5).Append(),
			want: MissingSpecificationError{Index: 0, Name: "open"},
		},
		{
			name:    "zero width",
			builder: NewBuilder().Field("a").Width(0).Append(),
			want:    MissingSpecificationError{Index: 0, Name: "a", Width: 0, HasWidth: true},
		},
		{
			name:    "empty range",
			builder: NewBuilder().Field("a").Range(5, 5).Append(),
			want:    MissingSpecificationError{Index: 0, Name: "a", Width: 0, HasWidth: true},
		},
		{
			name:    "inverted range",
			builder: NewBuilder().Field("a").Range(10, 5).Append(),
			want:    MissingSpecificationError{Index: 0, Name: "a", Width: -5, HasWidth: true},
		},
		{
			name: "gap closes to zero",
			builder: NewBuilder().
				Field("a").Position(5).Append().
				Field("b").Range(5, 10).Append(),
			want: MissingSpecificationError{Index: 0, Name: "a", Width: 0, HasWidth: true},
		},
		{
			name:    "zero width spacer",
			builder: NewBuilder().Spacer(5, 5),
			want:    MissingSpecificationError{Index: 0, Name: "", Width: 0, HasWidth: true},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			var missErr *MissingSpecificationError
			if !errors.As(err, &missErr) {
				t.Fatalf("Build() expected *MissingSpecificationError, have %v", err)
			}
			if *missErr != tt.want {
				t.Errorf("Build() expected %+v, have %+v", tt.want, *missErr)
			}
		})
	}
}

func TestBuilder_AlignmentTokens(t *testing.T) {
	t.Run("free text accepted", func(t *testing.T) {
		layout, err := NewBuilder().
			DefaultAlignment(" RIGHT ").
			Field("a").Width(5).Alignment("Left").Append().
			Field("b").Width(5).Append().
			Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		want := []Field{
			{0, "a", 0, 5, AlignLeft, ' '},
			{1, "b", 5, 5, AlignRight, ' '},
		}
		if diff := cmp.Diff(want, layout.Fields()); diff != "" {
			t.Errorf("Build() fields mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("field token falls back with warning", func(t *testing.T) {
		b := NewBuilder().
			DefaultAlignment(AlignRight).
			Field("first").Width(20).Alignment("banana").Append()
		layout, err := b.Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		want := []Field{{0, "first", 0, 20, AlignRight, ' '}}
		if diff := cmp.Diff(want, layout.Fields()); diff != "" {
			t.Errorf("Build() fields mismatch (-want +got):\n%s", diff)
		}
		wantWarnings := []Warning{{Field: "first", Token: "banana", Kept: AlignRight}}
		if diff := cmp.Diff(wantWarnings, b.Warnings()); diff != "" {
			t.Errorf("Warnings() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("default token fails build", func(t *testing.T) {
		b := NewBuilder().
			DefaultAlignment("banana").
			Field("first").Width(20).Append()
		if _, err := b.Build(); err == nil {
			t.Fatal("Build() expected error, have nil")
		}
		if len(b.Warnings()) != 0 {
			t.Errorf("Warnings() expected none, have %v", b.Warnings())
		}
	})
}

func TestBuilder_BuildReusable(t *testing.T) {
	b := NewBuilder().Field("a").Width(5).Append()

	first, err := b.Build()
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	b.Field("b").Width(3).Append()
	second, err := b.Build()
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if len(first.Fields()) != 1 || first.TotalWidth() != 5 {
		t.Errorf("first layout changed by later declarations: %+v", first.Fields())
	}
	if len(second.Fields()) != 2 || second.TotalWidth() != 8 {
		t.Errorf("second layout expected 2 fields of total width 8, have %+v", second.Fields())
	}
}

func TestBuilder_WarningsCopy(t *testing.T) {
	b := NewBuilder()
	b.Field("a").Width(5).Alignment("nope").Append()

	w := b.Warnings()
	if len(w) != 1 {
		t.Fatalf("Warnings() expected 1 warning, have %d", len(w))
	}
	w[0].Token = "mutated"
	if b.Warnings()[0].Token != "nope" {
		t.Error("Warnings() must return a copy")
	}
}
