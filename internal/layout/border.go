package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ErrEmptyGlyph    = errors.New("border glyph must not be empty")
	ErrUnknownBorder = errors.New("unknown border")
)

// Border is the set of eight glyphs used to frame a block.
// Glyphs may be longer than one character (e.g. a spacer plus the rule glyph).
type Border struct {
	top         string
	right       string
	bottom      string
	left        string
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
}

// NewBorder builds a border from explicit glyphs. Every glyph must be non-empty.
func NewBorder(top, right, bottom, left, topLeft, topRight, bottomLeft, bottomRight string) (Border, error) {
	b := Border{
		top:         top,
		right:       right,
		bottom:      bottom,
		left:        left,
		topLeft:     topLeft,
		topRight:    topRight,
		bottomLeft:  bottomLeft,
		bottomRight: bottomRight,
	}
	for _, g := range b.glyphs() {
		if g == "" {
			return Border{}, ErrEmptyGlyph
		}
	}
	return b, nil
}

// MakeBorder derives a border where every glyph is glyph, except the top and
// bottom rules which are prefixed with spacer.
func MakeBorder(glyph, spacer string) (Border, error) {
	if glyph == "" {
		return Border{}, ErrEmptyGlyph
	}
	return NewBorder(spacer+glyph, glyph, spacer+glyph, glyph, glyph, glyph, glyph, glyph)
}

// FromLipgloss converts a lipgloss border table.
func FromLipgloss(lb lipgloss.Border) (Border, error) {
	return NewBorder(lb.Top, lb.Right, lb.Bottom, lb.Left, lb.TopLeft, lb.TopRight, lb.BottomLeft, lb.BottomRight)
}

func mustBorder(b Border, err error) Border {
	if err != nil {
		panic(err)
	}
	return b
}

// Presets
var (
	NoBorder = mustBorder(NewBorder(" ", " ", " ", " ", " ", " ", " ", " "))
	ASCII    = mustBorder(NewBorder("-", "|", "_", "|", "/", "\\", "\\", "/"))
	Single   = mustBorder(NewBorder("─", "│", "─", "│", "┌", "┐", "└", "┘"))
	Double   = mustBorder(NewBorder("═", "║", "═", "║", "╔", "╗", "╚", "╝"))
	Heavy    = mustBorder(NewBorder("━", "┃", "━", "┃", "┏", "┓", "┗", "┛"))
	Rounded  = mustBorder(FromLipgloss(lipgloss.RoundedBorder()))
	Block    = mustBorder(FromLipgloss(lipgloss.BlockBorder()))
)

var presets = map[string]Border{
	"none":    NoBorder,
	"ascii":   ASCII,
	"single":  Single,
	"double":  Double,
	"heavy":   Heavy,
	"rounded": Rounded,
	"block":   Block,
}

// LookupBorder resolves a preset by case-insensitive name.
func LookupBorder(name string) (Border, error) {
	b, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Border{}, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
	}
	return b, nil
}

// BorderNames returns the preset names in sorted order.
func BorderNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b Border) Top() string         { return b.top }
func (b Border) Right() string       { return b.right }
func (b Border) Bottom() string      { return b.bottom }
func (b Border) Left() string        { return b.left }
func (b Border) TopLeft() string     { return b.topLeft }
func (b Border) TopRight() string    { return b.topRight }
func (b Border) BottomLeft() string  { return b.bottomLeft }
func (b Border) BottomRight() string { return b.bottomRight }

// IsZero reports whether b was never constructed.
func (b Border) IsZero() bool {
	return b == Border{}
}

func (b Border) glyphs() []string {
	return []string{b.top, b.right, b.bottom, b.left, b.topLeft, b.topRight, b.bottomLeft, b.bottomRight}
}
