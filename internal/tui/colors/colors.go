package colors

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// === Color Palette ===
// Vibrant "Cyberpunk" Neon Colors
var (
	NeonPurple = lipgloss.Color("#bd93f9")
	NeonPink   = lipgloss.Color("#ff79c6")
	NeonCyan   = lipgloss.Color("#8be9fd")
	NeonGreen  = lipgloss.Color("#50fa7b")
	Orange     = lipgloss.Color("#ffb86c")
	Red        = lipgloss.Color("#ff5555")
	Yellow     = lipgloss.Color("#f1fa8c")
	DarkGray   = lipgloss.Color("#282a36") // Background
	Gray       = lipgloss.Color("#44475a") // Borders
	LightGray  = lipgloss.Color("#a9b1d6") // Brighter text for secondary info
	White      = lipgloss.Color("#f8f8f2")
)

var named = map[string]lipgloss.Color{
	"purple":    NeonPurple,
	"pink":      NeonPink,
	"cyan":      NeonCyan,
	"green":     NeonGreen,
	"orange":    Orange,
	"red":       Red,
	"yellow":    Yellow,
	"gray":      Gray,
	"lightgray": LightGray,
	"white":     White,
}

// Lookup resolves a palette name or a "#rrggbb" / ANSI number literal.
func Lookup(name string) (lipgloss.Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	if c, ok := named[name]; ok {
		return c, true
	}
	if strings.HasPrefix(name, "#") && (len(name) == 4 || len(name) == 7) {
		return lipgloss.Color(name), true
	}
	if isANSI(name) {
		return lipgloss.Color(name), true
	}
	return "", false
}

// Names returns the palette names in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for n := range named {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func isANSI(s string) bool {
	if len(s) > 3 {
		return false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
	}
	return n <= 255
}
