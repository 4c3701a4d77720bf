// SPDX-License-Identifier: MIT

// Package sheet - Dense grid (row-major) & safe accessors.
//
// Purpose:
//   - Materialize a sparse Sheet over its bounding box with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep output deterministic (fixed loop orders, no map iteration when rendering rows).
//
// Complexity quicksheet:
//   - Dense: O(rows*cols); At: O(1); Row: O(cols).

package sheet

import (
	"fmt"
	"strings"
)

const ctxAt = "At" // method tag used in error wrappers

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a dense, read-only rendering of a Sheet.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Grid struct {
	r, c int
	data []string
}

var _ fmt.Stringer = (*Grid)(nil)

// Dense renders s over its tight bounding box.
// MAIN DESCRIPTION:
//   - Allocate rows*cols empty strings, then copy every populated cell into place.
//
// Errors:
//   - ErrEmptySheet when s has no cells (no bounding box exists).
//
// Complexity:
//   - Time O(rows*cols + Len), Space O(rows*cols).
func (s *Sheet) Dense() (*Grid, error) {
	rows, cols := s.Bounds()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptySheet
	}
	g := &Grid{r: rows, c: cols, data: make([]string, rows*cols)}
	for coord, cell := range s.cells {
		// keys are within bounds by construction of maxRow/maxCol
		g.data[coord.Row*cols+coord.Col] = cell.Content
	}

	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.r }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid) Shape() (rows, cols int) { return g.r, g.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (g *Grid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	return row*g.c + col, nil
}

// At returns the content at (row, col), "" for an unpopulated cell.
// Returns ErrOutOfRange outside the bounding box.
// Complexity: O(1).
func (g *Grid) At(row, col int) (string, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return "", gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Row returns a copy of row i, or nil if i is out of range.
// Complexity: O(cols).
func (g *Grid) Row(i int) []string {
	if i < 0 || i >= g.r {
		return nil
	}
	out := make([]string, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out
}

// String renders the grid as bracketed rows, one per line, for debugging.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteString("[")
		sb.WriteString(strings.Join(g.data[i*g.c:(i+1)*g.c], " | "))
		sb.WriteString("]\n")
	}

	return sb.String()
}
