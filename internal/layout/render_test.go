package layout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SingleCell(t *testing.T) {
	b := FromLines([]string{"x"}, Single)
	assert.Equal(t, "┌─┐\n│x│\n└─┘", b.Render())
	assert.Equal(t, b.Render(), b.String())

	wrapped, err := New("x", Options{Columns: 4, Border: Single})
	require.NoError(t, err)
	assert.Equal(t, "┌─┐\n│x│\n└─┘", wrapped.Render())
}

func TestRender_Presets(t *testing.T) {
	tests := []struct {
		name   string
		border Border
		want   string
	}{
		{"ascii", ASCII, "/--\\\n|hi|\n\\__/"},
		{"double", Double, "╔══╗\n║hi║\n╚══╝"},
		{"heavy", Heavy, "┏━━┓\n┃hi┃\n┗━━┛"},
		{"rounded", Rounded, "╭──╮\n│hi│\n╰──╯"},
		{"none", NoBorder, "    \n hi \n    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromLines([]string{"hi"}, tt.border).Render())
		})
	}
}

func TestRender_TruncatesRepeatedGlyph(t *testing.T) {
	border, err := NewBorder("-=", "|", "~", "|", "+", "+", "+", "+")
	require.NoError(t, err)

	got := FromLines([]string{"abc"}, border).Render()
	assert.Equal(t, "+-=-+\n|abc|\n+~~~+", got)
}

func TestRender_MadeBorder(t *testing.T) {
	border, err := MakeBorder("*", " ")
	require.NoError(t, err)

	got := FromLines([]string{"ab"}, border).Render()
	assert.Equal(t, "* **\n*ab*\n* **", got)
}

func TestRender_Geometry(t *testing.T) {
	b, err := New(lorem, Options{Columns: 24, PaddingInline: IntPtr(1), Border: Double})
	require.NoError(t, err)
	b, err = b.Align(Centered)
	require.NoError(t, err)

	lines := strings.Split(b.Render(), "\n")
	require.Len(t, lines, b.Height()+2)

	width := b.Width()
	assert.Equal(t, width+2, utf8.RuneCountInString(lines[0]))
	assert.Equal(t, width+2, utf8.RuneCountInString(lines[len(lines)-1]))
	for _, line := range lines[1 : len(lines)-1] {
		assert.Equal(t, width+2, utf8.RuneCountInString(line), line)
	}
}

func TestRender_RaggedLines(t *testing.T) {
	got := FromLines([]string{"a", "bcd"}, Single).Render()
	assert.Equal(t, "┌───┐\n│a  │\n│bcd│\n└───┘", got)
}

func TestRender_EmptyBlock(t *testing.T) {
	assert.Equal(t, "┌┐\n││\n└┘", FromLines(nil, Single).Render())
}

func TestRenderStyled(t *testing.T) {
	paint := func(s string) string { return "<" + s + ">" }
	got := FromLines([]string{"x", "y"}, Single).RenderStyled(paint)
	assert.Equal(t, "<┌─┐>\n<│>x<│>\n<│>y<│>\n<└─┘>", got)
}

func TestRepeatToWidth(t *testing.T) {
	tests := []struct {
		unit  string
		width int
		want  string
	}{
		{"-", 3, "---"},
		{"ab", 5, "ababa"},
		{" ═", 4, " ═ ═"},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := repeatToWidth(tt.unit, tt.width); got != tt.want {
			t.Errorf("repeatToWidth(%q, %d) = %q, want %q", tt.unit, tt.width, got, tt.want)
		}
	}
}
