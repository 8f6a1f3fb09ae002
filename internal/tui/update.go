package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/surge-downloader/areatext/internal/config"
	"github.com/surge-downloader/areatext/internal/layout"
	"github.com/surge-downloader/areatext/internal/utils"
)

// Update handles key presses; every change re-lays out the text on the next View.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	s := &m.settings
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Narrower):
		s.Columns = clamp(s.Columns-1, MinColumns, MaxColumns)
	case key.Matches(keyMsg, m.keys.Wider):
		s.Columns = clamp(s.Columns+1, MinColumns, MaxColumns)
	case key.Matches(keyMsg, m.keys.IndentUp):
		s.Indent = clamp(s.Indent+1, MinIndent, MaxIndent)
	case key.Matches(keyMsg, m.keys.IndentDown):
		s.Indent = clamp(s.Indent-1, MinIndent, MaxIndent)
	case key.Matches(keyMsg, m.keys.Justify):
		m.justify = nextJustification(m.justify)
	case key.Matches(keyMsg, m.keys.Border):
		s.Border = nextBorder(s.Border)
		s.BorderChar = ""
	case key.Matches(keyMsg, m.keys.PadMore):
		s.Padding = layout.IntPtr(clamp(padding(m)+1, 0, MaxPadding))
		clearSidePadding(s)
	case key.Matches(keyMsg, m.keys.PadLess):
		s.Padding = layout.IntPtr(clamp(padding(m)-1, 0, MaxPadding))
		clearSidePadding(s)
	default:
		return m, nil
	}

	utils.Debug("preview: columns=%d indent=%d justify=%s border=%s", s.Columns, s.Indent, m.justify, s.Border)
	return m, nil
}

func padding(m Model) int {
	if m.settings.Padding == nil {
		return 0
	}
	return *m.settings.Padding
}

// clearSidePadding drops overrides that would hide the uniform padding.
func clearSidePadding(s *config.LayoutSettings) {
	s.PaddingInline, s.PaddingBlock = nil, nil
	s.PaddingTop, s.PaddingLeft, s.PaddingBottom, s.PaddingRight = nil, nil, nil, nil
}

func nextJustification(j layout.Justification) layout.Justification {
	for i, candidate := range justifications {
		if candidate == j {
			return justifications[(i+1)%len(justifications)]
		}
	}
	return layout.Start
}

func nextBorder(current string) string {
	names := layout.BorderNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
