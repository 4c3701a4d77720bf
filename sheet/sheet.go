package sheet

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sheetnet/a1"
)

// Role tags what a cell stands for in the network.
type Role int

const (
	// RoleInput is the literal value of an input-layer node.
	RoleInput Role = iota
	// RoleActivation is the forward-pass formula of a hidden or output node.
	RoleActivation
	// RoleWeight is a literal connection weight.
	RoleWeight
	// RoleBias is a literal bias term.
	RoleBias
)

var roleNames = [...]string{"input", "activation", "weight", "bias"}

// String returns the lowercase role name.
func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}

	return roleNames[r]
}

// Cell is the content of one populated coordinate: a literal such as "0" or
// ".5", or a formula beginning with "=".
type Cell struct {
	Content string
	Role    Role
}

// Sheet is a sparse, write-once cell map. The zero value is not usable; call New.
// A Sheet is not safe for concurrent mutation.
type Sheet struct {
	cells  map[a1.Coord]Cell
	maxCol int // -1 while empty
	maxRow int // -1 while empty
}

// New returns an empty Sheet.
func New() *Sheet {
	return &Sheet{
		cells:  make(map[a1.Coord]Cell),
		maxCol: -1,
		maxRow: -1,
	}
}

// Set writes content at c.
// Returns ErrNegativeCoord for a negative component and ErrCollision if c is
// already populated; in both cases the sheet is left unchanged.
// Complexity: O(1) amortized.
func (s *Sheet) Set(c a1.Coord, content string, role Role) error {
	if !c.Valid() {
		return fmt.Errorf("Sheet.Set(%d,%d): %w", c.Col, c.Row, ErrNegativeCoord)
	}
	if prev, ok := s.cells[c]; ok {
		return fmt.Errorf("Sheet.Set(%s) %s over %s: %w", c, role, prev.Role, ErrCollision)
	}
	s.cells[c] = Cell{Content: content, Role: role}
	if c.Col > s.maxCol {
		s.maxCol = c.Col
	}
	if c.Row > s.maxRow {
		s.maxRow = c.Row
	}

	return nil
}

// At returns the cell at c and whether it is populated.
func (s *Sheet) At(c a1.Coord) (Cell, bool) {
	cell, ok := s.cells[c]

	return cell, ok
}

// Len returns the number of populated cells.
func (s *Sheet) Len() int { return len(s.cells) }

// Count returns the number of populated cells with the given role.
// Complexity: O(Len).
func (s *Sheet) Count(role Role) int {
	n := 0
	for _, cell := range s.cells {
		if cell.Role == role {
			n++
		}
	}

	return n
}

// Bounds returns the tight bounding box: rows = 1 + max row, cols = 1 + max column.
// An empty sheet has bounds (0, 0).
// Complexity: O(1).
func (s *Sheet) Bounds() (rows, cols int) {
	return s.maxRow + 1, s.maxCol + 1
}

// Coords returns every populated coordinate in row-major order.
// Complexity: O(Len·log Len).
func (s *Sheet) Coords() []a1.Coord {
	out := make([]a1.Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}
