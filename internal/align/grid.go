package align

import (
	"errors"
	"fmt"
)

var ErrRaggedGrid = errors.New("grid rows have different lengths")

// Grid aligns every column of rows independently with List.
func Grid(rows [][]string, opts Options) ([][]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return [][]string{}, nil
	}

	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRaggedGrid, i, len(row), cols)
		}
	}

	out := make([][]string, len(rows))
	for i := range out {
		out[i] = make([]string, cols)
	}

	column := make([]string, len(rows))
	for c := 0; c < cols; c++ {
		for r, row := range rows {
			column[r] = row[c]
		}
		aligned, err := List(column, opts)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", c, err)
		}
		for r := range out {
			out[r][c] = aligned[r]
		}
	}
	return out, nil
}
