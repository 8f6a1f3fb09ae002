package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/surge-downloader/areatext/internal/layout"
)

// RenderPanel frames lines in a rounded box with the title embedded in the
// top border. Lines must be plain text; only the frame is colored.
// Example: ╭─ Settings ─────╮
func RenderPanel(title string, lines []string, borderColor lipgloss.Color) string {
	block, err := layout.FromLines(lines, layout.Rounded).Pad(0, 1, 0, 1, 0)
	if err != nil {
		return strings.Join(lines, "\n")
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(borderColor).Bold(true)

	// Widen the body so the title always fits: "─ " + title + " " + at least one "─"
	minWidth := utf8.RuneCountInString(title) + 4
	if title != "" && block.Width() < minWidth {
		block, err = block.Pad(0, 0, 0, minWidth-block.Width(), 0)
		if err != nil {
			return strings.Join(lines, "\n")
		}
	}

	rendered := strings.Split(block.RenderStyled(func(s string) string { return borderStyle.Render(s) }), "\n")
	if title == "" {
		return strings.Join(rendered, "\n")
	}

	b := block.Border()
	innerWidth := block.Width()
	remaining := innerWidth - utf8.RuneCountInString(title) - 3
	rendered[0] = borderStyle.Render(b.TopLeft()+b.Top()+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(b.Top(), remaining)+b.TopRight())

	return strings.Join(rendered, "\n")
}
