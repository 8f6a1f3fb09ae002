package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/surge-downloader/areatext/internal/layout"
	"github.com/surge-downloader/areatext/internal/tui/colors"
	"github.com/surge-downloader/areatext/internal/tui/components"
)

func (m Model) View() string {
	var body string
	block, err := m.Block()
	if err != nil {
		body = lipgloss.NewStyle().Foreground(colors.Red).Render("Error: " + err.Error())
	} else {
		borderStyle := lipgloss.NewStyle().Foreground(m.color)
		body = block.RenderStyled(func(s string) string { return borderStyle.Render(s) })
	}

	s := m.settings
	width, height := 0, 0
	if block != nil {
		width, height = block.Dimensions()
	}
	info := []string{
		fmt.Sprintf("columns  %d", s.Columns),
		fmt.Sprintf("indent   %d", s.Indent),
		fmt.Sprintf("padding  %d", padding(m)),
		fmt.Sprintf("justify  %s", m.justify),
		fmt.Sprintf("border   %s", borderLabel(s.Border, s.BorderChar)),
		fmt.Sprintf("size     %dx%d", width, height),
	}
	panel := components.RenderPanel(PanelTitle, info, colors.NeonPink)
	tabs := components.RenderTabBar(justifyLabels, int(m.justify), activeTabStyle, inactiveTabStyle)

	return lipgloss.NewStyle().Padding(DefaultPaddingY, DefaultPaddingX).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			panel,
			tabs,
			"",
			body,
			"",
			m.help.View(m.keys),
		),
	)
}

var (
	justifyLabels    = []string{layout.Start.String(), layout.Centered.String(), layout.End.String()}
	activeTabStyle   = lipgloss.NewStyle().Foreground(colors.NeonCyan).Bold(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colors.Gray).Padding(0, 1)
)

func borderLabel(name, char string) string {
	if char != "" {
		return fmt.Sprintf("%q", char)
	}
	return name
}
