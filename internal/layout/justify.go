package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrInvalidJustification = errors.New("invalid justification")

// Justification controls where padding goes when a line is widened.
type Justification int

const (
	Start Justification = iota
	Centered
	End
)

func (j Justification) String() string {
	switch j {
	case Start:
		return "start"
	case Centered:
		return "centered"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Justification(%d)", int(j))
	}
}

func (j Justification) valid() bool {
	return j == Start || j == Centered || j == End
}

// ParseJustification accepts the String() names plus the common aliases
// left/center/right.
func ParseJustification(s string) (Justification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start", "left":
		return Start, nil
	case "centered", "center", "centre":
		return Centered, nil
	case "end", "right":
		return End, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidJustification, s)
}

// justify widens line to width runes. Lines already at least width long are
// returned unchanged. Centering puts the odd extra space on the right.
func justify(line string, width int, j Justification) (string, error) {
	pad := width - utf8.RuneCountInString(line)
	if pad < 0 {
		pad = 0
	}
	switch j {
	case Start:
		return line + strings.Repeat(" ", pad), nil
	case End:
		return strings.Repeat(" ", pad) + line, nil
	case Centered:
		left := pad / 2
		return strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidJustification, j)
	}
}
