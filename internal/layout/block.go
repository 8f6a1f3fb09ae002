package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidColumns  = errors.New("columns must be positive")
	ErrNegativePadding = errors.New("padding must not be negative")
)

// DefaultColumns is used when Options.Columns is zero.
const DefaultColumns = 10

// Options configures New. Padding fields are pointers so that an explicit
// zero can override a shorthand: per side the individual field wins, then
// PaddingInline/PaddingBlock, then Padding.
type Options struct {
	Columns int
	Border  Border
	// Indent > 0 indents the first line once; Indent < 0 is a hanging indent
	// for continuation lines.
	Indent int
	// Justify is applied to the wrapped lines before padding.
	Justify Justification

	Padding       *int
	PaddingInline *int
	PaddingBlock  *int
	PaddingTop    *int
	PaddingLeft   *int
	PaddingBottom *int
	PaddingRight  *int

	MinHeight int
}

// IntPtr is a convenience for filling the padding fields of Options.
func IntPtr(n int) *int {
	return &n
}

// Insets is a resolved set of paddings.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Insets resolves the padding fields of o.
func (o Options) Insets() Insets {
	pick := func(vals ...*int) int {
		for _, v := range vals {
			if v != nil {
				return *v
			}
		}
		return 0
	}
	return Insets{
		Top:    pick(o.PaddingTop, o.PaddingBlock, o.Padding),
		Left:   pick(o.PaddingLeft, o.PaddingInline, o.Padding),
		Bottom: pick(o.PaddingBottom, o.PaddingBlock, o.Padding),
		Right:  pick(o.PaddingRight, o.PaddingInline, o.Padding),
	}
}

// TextBlock is an immutable sequence of lines plus the border used to frame
// them. Pad and Align return new blocks and never touch the receiver.
type TextBlock struct {
	lines  []string
	border Border
}

// New wraps text to opts.Columns, justifies the lines and applies the
// configured padding.
func New(text string, opts Options) (*TextBlock, error) {
	columns := opts.Columns
	if columns == 0 {
		columns = DefaultColumns
	}
	if columns < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumns, columns)
	}

	wrapped, err := FromLines(Wrap(text, columns, opts.Indent), opts.Border).Align(opts.Justify)
	if err != nil {
		return nil, err
	}
	in := opts.Insets()
	return wrapped.Pad(in.Top, in.Left, in.Bottom, in.Right, opts.MinHeight)
}

// FromLines builds a block from already laid out lines. A zero border means
// Single.
func FromLines(lines []string, border Border) *TextBlock {
	if border.IsZero() {
		border = Single
	}
	owned := make([]string, len(lines))
	copy(owned, lines)
	return &TextBlock{lines: owned, border: border}
}

// Pad surrounds the block with blank space. When minHeight exceeds the
// current height the deficit is added to the bottom padding. The result is
// start-justified so every line has the same width.
func (b *TextBlock) Pad(top, left, bottom, right, minHeight int) (*TextBlock, error) {
	if top < 0 || left < 0 || bottom < 0 || right < 0 {
		return nil, fmt.Errorf("%w: top=%d left=%d bottom=%d right=%d", ErrNegativePadding, top, left, bottom, right)
	}
	if minHeight > b.Height() {
		bottom += minHeight - b.Height()
	}

	prefix := strings.Repeat(" ", left)
	suffix := strings.Repeat(" ", right)

	out := make([]string, 0, top+len(b.lines)+bottom)
	for i := 0; i < top; i++ {
		out = append(out, prefix+suffix)
	}
	for _, line := range b.lines {
		out = append(out, prefix+line+suffix)
	}
	for i := 0; i < bottom; i++ {
		out = append(out, prefix+suffix)
	}

	return (&TextBlock{lines: out, border: b.border}).Align(Start)
}

// Align widens every line to Width() using j.
func (b *TextBlock) Align(j Justification) (*TextBlock, error) {
	if !j.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJustification, j)
	}
	width := b.Width()
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		aligned, err := justify(line, width, j)
		if err != nil {
			return nil, err
		}
		out[i] = aligned
	}
	return &TextBlock{lines: out, border: b.border}, nil
}

// Width is the longest line length in characters.
func (b *TextBlock) Width() int {
	width := 0
	for _, line := range b.lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}

func (b *TextBlock) Height() int {
	return len(b.lines)
}

// Dimensions returns width and height.
func (b *TextBlock) Dimensions() (int, int) {
	return b.Width(), b.Height()
}

// Lines returns a copy of the block's lines.
func (b *TextBlock) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *TextBlock) Border() Border {
	return b.border
}

// WithBorder returns a copy of b framed by border.
func (b *TextBlock) WithBorder(border Border) *TextBlock {
	return FromLines(b.lines, border)
}
