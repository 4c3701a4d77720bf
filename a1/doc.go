// Package a1 renders spreadsheet addresses in A1 notation.
//
// What:
//
//   - ColumnName maps a 0-based column index to its bijective base-26 label
//     (0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA").
//   - ColumnIndex is the inverse, parsing "AB" back to 27.
//   - Coord is a 0-based (column,row) pair. Cell and Range render it in
//     absolute form ("$B$3", "$A$1:$A$5"); String renders "B3".
//
// Addressing:
//
//	Every coordinate in this module is 0-based. The shift to the 1-based rows
//	of a spreadsheet happens in exactly one place, RowNumber, and only when an
//	address is rendered. Column labels carry their own shift inside ColumnName.
//
// Limits:
//
//	ColumnName is total over non-negative integers. Spreadsheet programs are
//	not: Excel stops at column XFD (16384) and row 1048576, Google Sheets at
//	column ZZZ (18278). Exceeds reports when a grid crosses those bounds so a
//	caller can warn; nothing here refuses to render a large address.
//
// Complexity:
//
//   - ColumnName, ColumnIndex: O(log₂₆ n).
//   - Cell, Range: O(log₂₆ col + log₁₀ row).
package a1
