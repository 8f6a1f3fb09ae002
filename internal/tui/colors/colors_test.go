package colors

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in     string
		want   lipgloss.Color
		wantOK bool
	}{
		{"pink", NeonPink, true},
		{" Cyan ", NeonCyan, true},
		{"#abc", lipgloss.Color("#abc"), true},
		{"#A0B0C0", lipgloss.Color("#a0b0c0"), true},
		{"208", lipgloss.Color("208"), true},
		{"256", "", false},
		{"#12", "", false},
		{"mauve", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 10)
	assert.IsNonDecreasing(t, names)
}
