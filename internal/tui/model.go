package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/surge-downloader/areatext/internal/config"
	"github.com/surge-downloader/areatext/internal/layout"
	"github.com/surge-downloader/areatext/internal/tui/colors"
)

var justifications = []layout.Justification{layout.Start, layout.Centered, layout.End}

// Model is the bubbletea model of the live layout preview.
// Layout never depends on the terminal size; the block is rendered at the
// configured column count.
type Model struct {
	text     string
	settings config.LayoutSettings
	justify  layout.Justification
	color    lipgloss.Color

	keys KeyMap
	help help.Model
}

// NewModel builds a preview of text using s as the starting layout.
func NewModel(text string, s config.LayoutSettings) Model {
	j, err := layout.ParseJustification(s.Justify)
	if err != nil {
		j = layout.Start
	}
	color, ok := colors.Lookup(s.Color)
	if !ok {
		color = colors.NeonCyan
	}
	return Model{
		text:     text,
		settings: s,
		justify:  j,
		color:    color,
		keys:     Keys,
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Settings returns the layout currently shown, so callers can persist it.
func (m Model) Settings() config.LayoutSettings {
	s := m.settings
	s.Justify = m.justify.String()
	return s
}

// Block lays out the text with the current settings.
func (m Model) Block() (*layout.TextBlock, error) {
	opts, _, err := m.settings.ToOptions()
	if err != nil {
		return nil, err
	}
	opts.Justify = m.justify
	return layout.New(m.text, opts)
}
