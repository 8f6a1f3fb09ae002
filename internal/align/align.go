package align

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidSide  = errors.New("side must be one of left, right or center")
	ErrMissingPivot = errors.New("string does not contain the pivot")
)

// Side selects where fill goes when a string is widened.
type Side int

const (
	Left Side = iota
	Right
	Center
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide maps a name to a Side. The empty string is Left.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	case "center", "centre":
		return Center, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, name)
}

// Options controls List and Grid.
//
// A non-empty Pivot aligns every string on its first occurrence of Pivot and
// Side is ignored. Fill defaults to a space.
type Options struct {
	Side  Side
	Pivot string
	Fill  rune
}

func (o Options) validate() error {
	if o.Pivot == "" && (o.Side < Left || o.Side > Center) {
		return fmt.Errorf("%w: %v", ErrInvalidSide, o.Side)
	}
	return nil
}

func (o Options) fill() string {
	if o.Fill == 0 {
		return " "
	}
	return string(o.Fill)
}

// List pads every string to a common width.
func List(strs []string, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Pivot != "" {
		return pivot(strs, opts.Pivot, opts.fill())
	}

	width := 0
	for _, s := range strs {
		if n := utf8.RuneCountInString(s); n > width {
			width = n
		}
	}

	out := make([]string, len(strs))
	for i, s := range strs {
		out[i] = pad(s, width, opts.Side, opts.fill())
	}
	return out, nil
}

// pivot right-justifies the part before the first sep and left-justifies the
// part after it.
func pivot(strs []string, sep, fill string) ([]string, error) {
	heads := make([]string, len(strs))
	tails := make([]string, len(strs))
	headWidth, tailWidth := 0, 0

	for i, s := range strs {
		head, tail, ok := strings.Cut(s, sep)
		if !ok {
			return nil, fmt.Errorf("%w %q: row %d %q", ErrMissingPivot, sep, i, s)
		}
		heads[i], tails[i] = head, tail
		headWidth = max(headWidth, utf8.RuneCountInString(head))
		tailWidth = max(tailWidth, utf8.RuneCountInString(tail))
	}

	out := make([]string, len(strs))
	for i := range strs {
		out[i] = pad(heads[i], headWidth, Right, fill) + sep + pad(tails[i], tailWidth, Left, fill)
	}
	return out, nil
}

// pad widens s to width runes. Center puts the odd extra fill on the right.
// side must already be validated.
func pad(s string, width int, side Side, fill string) string {
	n := width - utf8.RuneCountInString(s)
	if n < 0 {
		n = 0
	}
	switch side {
	case Right:
		return strings.Repeat(fill, n) + s
	case Center:
		left := n / 2
		return strings.Repeat(fill, left) + s + strings.Repeat(fill, n-left)
	default:
		return s + strings.Repeat(fill, n)
	}
}

// Surround returns s between left and right.
func Surround(s, left, right string) string {
	return left + s + right
}
