package layout

import (
	"strings"
	"unicode/utf8"
)

// Wrap greedily packs the space-separated tokens of text into lines.
//
// Only token lengths count toward the column budget; the single space joining
// two tokens does not. A token longer than columns is never moved to a new
// line for overflow and never split. Embedded newlines inside a token always
// start a new line, but the whole token still counts toward the running
// length, which only an overflow break resets.
//
// A positive indent prefixes the first line. A negative indent seeds every
// continuation line started by an overflow with -indent spaces.
func Wrap(text string, columns, indent int) []string {
	tokens := strings.Split(text, " ")
	if indent > 0 {
		tokens = append([]string{strings.Repeat(" ", indent)}, tokens...)
	}

	hanging := ""
	if indent < 0 {
		hanging = strings.Repeat(" ", -indent)
	}

	lines := []string{""}
	current := 0
	length := 0

	for _, tok := range tokens {
		n := utf8.RuneCountInString(tok)
		if length+n > columns && n <= columns {
			lines = append(lines, hanging)
			current = len(lines) - 1
			length = 0
		}

		joiner := ""
		if lines[current] != "" {
			joiner = " "
		}

		switch {
		case strings.Contains(tok, "\n"):
			pieces := strings.Split(tok, "\n")
			lines[current] += joiner + pieces[0]
			for _, piece := range pieces[1:] {
				lines = append(lines, piece)
				current = len(lines) - 1
			}
		case tok != "":
			lines[current] += joiner + tok
		}
		length += n
	}

	return lines
}
