package a1

import (
	"fmt"
	"strconv"
)

// Coord addresses one grid cell by 0-based column and row.
type Coord struct {
	Col int // 0-based column index (A = 0)
	Row int // 0-based row index (row 1 = 0)
}

// At is shorthand for Coord{Col: col, Row: row}.
func At(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// Valid reports whether both components are non-negative.
func (c Coord) Valid() bool {
	return c.Col >= 0 && c.Row >= 0
}

// RowNumber converts a 0-based row index to the 1-based row number shown by
// spreadsheet programs. It is the only 0→1 row shift in the module.
func RowNumber(row int) int {
	return row + 1
}

// RowIndex is the inverse of RowNumber: 1-based row number to 0-based index.
func RowIndex(number int) int {
	return number - 1
}

// Cell renders c as an absolute reference, e.g. (1,2) → "$B$3".
// Panics if c has a negative component.
func (c Coord) Cell() string {
	c.mustValid("Cell")

	return "$" + ColumnName(c.Col) + "$" + strconv.Itoa(RowNumber(c.Row))
}

// String renders c as a relative reference, e.g. (1,2) → "B3".
// Invalid coordinates render as "(col,row)" so they stay printable in diagnostics.
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}

	return ColumnName(c.Col) + strconv.Itoa(RowNumber(c.Row))
}

// Range renders the absolute rectangular range spanning from and to,
// e.g. Range(At(0,0), At(0,4)) → "$A$1:$A$5".
// Panics if either corner has a negative component.
func Range(from, to Coord) string {
	return from.Cell() + ":" + to.Cell()
}

// ColumnRange renders the absolute range covering rows 0..size-1 of col,
// e.g. ColumnRange(2, 3) → "$C$1:$C$3". Panics if size < 1.
func ColumnRange(col, size int) string {
	if size < 1 {
		panic(fmt.Sprintf("a1: ColumnRange: size must be ≥ 1, got %d", size))
	}

	return Range(At(col, 0), At(col, size-1))
}

// RowRange renders the absolute range covering columns 0..size-1 of row,
// e.g. RowRange(2, 2) → "$A$3:$B$3". Panics if size < 1.
func RowRange(row, size int) string {
	if size < 1 {
		panic(fmt.Sprintf("a1: RowRange: size must be ≥ 1, got %d", size))
	}

	return Range(At(0, row), At(size-1, row))
}

// Exceeds reports which spreadsheet limits a grid of rows×cols crosses.
// excel is true past XFD or row 1048576; sheets is true past column ZZZ.
func Exceeds(rows, cols int) (excel, sheets bool) {
	return cols > MaxColumnsExcel || rows > MaxRowsExcel, cols > MaxColumnsSheets
}

func (c Coord) mustValid(method string) {
	if !c.Valid() {
		panic(fmt.Sprintf("a1: %s: negative coordinate (%d,%d)", method, c.Col, c.Row))
	}
}
