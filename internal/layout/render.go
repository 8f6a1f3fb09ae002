package layout

import (
	"strings"
	"unicode/utf8"
)

// Render frames the block with its border. There is no trailing newline.
func (b *TextBlock) Render() string {
	return b.RenderStyled(nil)
}

func (b *TextBlock) String() string {
	return b.Render()
}

// RenderStyled is Render with every border glyph run passed through paint,
// e.g. a lipgloss style's Render. Content is not painted. A nil paint leaves
// glyphs as they are.
func (b *TextBlock) RenderStyled(paint func(string) string) string {
	if paint == nil {
		paint = func(s string) string { return s }
	}
	br := b.border
	width := b.Width()

	var sb strings.Builder
	sb.WriteString(paint(br.topLeft + repeatToWidth(br.top, width) + br.topRight))
	sb.WriteByte('\n')

	left, right := paint(br.left), paint(br.right)
	if len(b.lines) == 0 {
		sb.WriteString(left + right)
	}
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		// Blocks built by FromLines may be ragged.
		if n := utf8.RuneCountInString(line); n < width {
			line += strings.Repeat(" ", width-n)
		}
		sb.WriteString(left)
		sb.WriteString(line)
		sb.WriteString(right)
	}

	sb.WriteByte('\n')
	sb.WriteString(paint(br.bottomLeft + repeatToWidth(br.bottom, width) + br.bottomRight))
	return sb.String()
}

// repeatToWidth repeats unit and cuts the last repetition so the result is
// exactly width runes long.
func repeatToWidth(unit string, width int) string {
	runes := []rune(unit)
	if len(runes) == 0 || width <= 0 {
		return ""
	}
	full := strings.Repeat(unit, width/len(runes))
	return full + string(runes[:width%len(runes)])
}
