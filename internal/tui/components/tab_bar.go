package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderTabBar renders labels side by side, styling the one at activeIndex
// with activeStyle. An out-of-range index leaves every tab inactive.
func RenderTabBar(labels []string, activeIndex int, activeStyle, inactiveStyle lipgloss.Style) string {
	rendered := make([]string, 0, len(labels))
	for i, label := range labels {
		style := inactiveStyle
		if i == activeIndex {
			style = activeStyle
		}
		rendered = append(rendered, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
