package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview keybindings
type KeyMap struct {
	Narrower   key.Binding
	Wider      key.Binding
	IndentUp   key.Binding
	IndentDown key.Binding
	Justify    key.Binding
	Border     key.Binding
	PadMore    key.Binding
	PadLess    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// Keys is the default keymap
var Keys = KeyMap{
	Narrower: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "narrower"),
	),
	Wider: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "wider"),
	),
	IndentUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "indent +"),
	),
	IndentDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "indent -"),
	),
	Justify: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "justify"),
	),
	Border: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "border"),
	),
	PadMore: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "pad"),
	),
	PadLess: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "unpad"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings to show in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrower, k.Wider, k.Justify, k.Border, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrower, k.Wider, k.IndentUp, k.IndentDown},
		{k.Justify, k.Border, k.PadMore, k.PadLess},
		{k.Help, k.Quit},
	}
}
