package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderPanel_TitleInTopBorder(t *testing.T) {
	out := RenderPanel("Info", []string{"columns 40", "border single"}, lipgloss.Color("#ffffff"))
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Info")
	assert.Contains(t, lines[1], " columns 40 ")
	assert.Contains(t, lines[2], " border single ")

	// The frame keeps every row the same visible width.
	width := lipgloss.Width(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), line)
	}
}

func TestRenderPanel_WidensForLongTitle(t *testing.T) {
	out := RenderPanel("A long panel title", []string{"x"}, lipgloss.Color("1"))
	lines := strings.Split(out, "\n")

	width := lipgloss.Width(lines[0])
	assert.GreaterOrEqual(t, width, len("A long panel title")+6)
	for _, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line))
	}
}

func TestRenderPanel_NoTitle(t *testing.T) {
	out := RenderPanel("", []string{"x"}, lipgloss.Color("1"))
	assert.Equal(t, 3, strings.Count(out, "\n")+1)
	assert.Contains(t, out, " x ")
}
