package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_AlignsColumnsIndependently(t *testing.T) {
	rows := [][]string{
		{"name", "qty"},
		{"apple", "3"},
		{"fig", "120"},
	}

	got, err := Grid(rows, Options{Side: Right})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{" name", "qty"},
		{"apple", "  3"},
		{"  fig", "120"},
	}, got)

	assert.Equal(t, "name", rows[0][0], "input grid must not be modified")
}

func TestGrid_Pivot(t *testing.T) {
	rows := [][]string{
		{"a", "1.5"},
		{"bb", "22.25"},
	}
	got, err := Grid(rows, Options{Pivot: "."})
	assert.Error(t, err, "column 0 has no pivot")
	assert.ErrorIs(t, err, ErrMissingPivot)
	assert.Nil(t, got)

	got, err = Grid([][]string{{"1.5"}, {"22.25"}}, Options{Pivot: "."})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{" 1.5 "}, {"22.25"}}, got)
}

func TestGrid_Ragged(t *testing.T) {
	_, err := Grid([][]string{{"a", "b"}, {"c"}}, Options{})
	assert.ErrorIs(t, err, ErrRaggedGrid)
}

func TestGrid_Empty(t *testing.T) {
	got, err := Grid(nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGrid_InvalidSide(t *testing.T) {
	_, err := Grid([][]string{{"a"}}, Options{Side: Side(3)})
	assert.ErrorIs(t, err, ErrInvalidSide)
}
