package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WrapsAndJustifies(t *testing.T) {
	b, err := New("a bb ccc", Options{Columns: 4})
	require.NoError(t, err)

	assert.Equal(t, []string{"a bb", "ccc "}, b.Lines())
	w, h := b.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, Single, b.Border(), "zero border should default to Single")
}

func TestNew_DefaultColumns(t *testing.T) {
	b, err := New("aaaa bbbb cccc", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"aaaa bbbb", "cccc     "}, b.Lines())
}

func TestNew_JustifiesBeforePadding(t *testing.T) {
	b, err := New("a bb ccc", Options{Columns: 4, Justify: End, PaddingInline: IntPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, []string{" a bb ", "  ccc "}, b.Lines())

	_, err = New("x", Options{Justify: Justification(9)})
	assert.ErrorIs(t, err, ErrInvalidJustification)
}

func TestNew_RejectsNegativeColumns(t *testing.T) {
	_, err := New("x", Options{Columns: -1})
	assert.ErrorIs(t, err, ErrInvalidColumns)
}

func TestNew_Padding(t *testing.T) {
	b, err := New("x", Options{Columns: 4, Padding: IntPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"   ", " x ", "   "}, b.Lines())

	_, err = New("x", Options{Columns: 4, PaddingLeft: IntPtr(-1)})
	assert.ErrorIs(t, err, ErrNegativePadding)
}

func TestNew_MinHeight(t *testing.T) {
	b, err := New("ab", Options{Columns: 4, PaddingTop: IntPtr(1), MinHeight: 4})
	require.NoError(t, err)
	// The deficit is measured before the explicit top padding is added.
	assert.Equal(t, []string{"  ", "ab", "  ", "  ", "  "}, b.Lines())
}

func TestOptions_Insets(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want Insets
	}{
		{"nothing set", Options{}, Insets{}},
		{"padding on all sides", Options{Padding: IntPtr(2)}, Insets{2, 2, 2, 2}},
		{"inline beats padding", Options{Padding: IntPtr(2), PaddingInline: IntPtr(1)}, Insets{2, 1, 2, 1}},
		{"block beats padding", Options{Padding: IntPtr(2), PaddingBlock: IntPtr(0)}, Insets{0, 2, 0, 2}},
		{
			"individual sides beat shorthands",
			Options{Padding: IntPtr(1), PaddingBlock: IntPtr(0), PaddingInline: IntPtr(3), PaddingTop: IntPtr(5), PaddingRight: IntPtr(0)},
			Insets{Top: 5, Left: 3, Bottom: 0, Right: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Insets())
		})
	}
}

func TestPad_Dimensions(t *testing.T) {
	b := FromLines([]string{"ab", "c"}, Single)
	padded, err := b.Pad(1, 2, 3, 4, 0)
	require.NoError(t, err)

	assert.Equal(t, b.Height()+1+3, padded.Height())
	assert.Equal(t, b.Width()+2+4, padded.Width())
	for _, line := range padded.Lines() {
		assert.Len(t, line, padded.Width())
	}
	assert.Equal(t, "  ab    ", padded.Lines()[1])
	assert.Equal(t, "  c     ", padded.Lines()[2])
}

func TestPad_DoesNotMutateReceiver(t *testing.T) {
	src := []string{"a", "bb"}
	b := FromLines(src, Double)
	_, err := b.Pad(1, 1, 1, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "bb"}, b.Lines())
	src[0] = "changed"
	assert.Equal(t, "a", b.Lines()[0], "FromLines must copy its input")
}

func TestPad_KeepsBorder(t *testing.T) {
	padded, err := FromLines([]string{"x"}, Heavy).Pad(0, 1, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Heavy, padded.Border())
}

func TestWithBorder(t *testing.T) {
	b := FromLines([]string{"x"}, Single)
	framed := b.WithBorder(Double)

	assert.Equal(t, Double, framed.Border())
	assert.Equal(t, Single, b.Border())
	assert.Equal(t, b.Lines(), framed.Lines())
	assert.Equal(t, "╔═╗\n║x║\n╚═╝", framed.Render())
	assert.Equal(t, Single, b.WithBorder(Border{}).Border(), "zero border falls back to Single")
}

func TestAlign(t *testing.T) {
	b := FromLines([]string{"abcd", "a", "ab"}, Single)

	tests := []struct {
		name string
		j    Justification
		want []string
	}{
		{"start", Start, []string{"abcd", "a   ", "ab  "}},
		{"end", End, []string{"abcd", "   a", "  ab"}},
		{"centered odd extra goes right", Centered, []string{"abcd", " a  ", " ab "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Align(tt.j)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Lines())

			again, err := got.Align(tt.j)
			require.NoError(t, err)
			assert.Equal(t, got.Lines(), again.Lines(), "Align should be idempotent")
		})
	}
}

func TestAlign_InvalidJustification(t *testing.T) {
	_, err := FromLines([]string{"a"}, Single).Align(Justification(42))
	assert.ErrorIs(t, err, ErrInvalidJustification)

	_, err = FromLines(nil, Single).Align(Justification(-1))
	assert.ErrorIs(t, err, ErrInvalidJustification, "empty blocks still validate")
}

func TestEmptyBlock(t *testing.T) {
	b := FromLines(nil, Single)
	w, h := b.Dimensions()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestParseJustification(t *testing.T) {
	for in, want := range map[string]Justification{
		"":         Start,
		"start":    Start,
		"LEFT":     Start,
		"center":   Centered,
		"centered": Centered,
		"end":      End,
		" right ":  End,
	} {
		got, err := ParseJustification(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseJustification("justify")
	assert.ErrorIs(t, err, ErrInvalidJustification)
}

func TestJustification_String(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "centered", Centered.String())
	assert.Equal(t, "end", End.String())
	assert.Equal(t, "Justification(7)", Justification(7).String())
}
