package a1

import (
	"fmt"
	"math"
	"strings"
)

// alphabet is the size of the column digit set A–Z.
const alphabet = 26

// Spreadsheet program limits, counted in columns and rows (1-based maxima).
const (
	MaxColumnsExcel  = 16384   // XFD
	MaxRowsExcel     = 1048576 // row 1048576
	MaxColumnsSheets = 18278   // ZZZ
)

// ColumnName returns the spreadsheet label of the 0-based column n,
// e.g. 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA".
//
// The recurrence works on the 1-based value m = n+1: the least significant
// letter is (m-1) mod 26 and the remaining digits are (m-1) div 26. Both
// operands stay non-negative, so Go's truncating division is exact here.
// Complexity: O(k) time where k ≈ log₂₆(n), O(k) space.
// Panics if n < 0.
func ColumnName(n int) string {
	if n < 0 {
		panic(fmt.Sprintf("a1: ColumnName: index must be ≥ 0, got %d", n))
	}
	// collect letters least-significant first
	var buf [16]byte
	i := len(buf)
	for m := n + 1; m > 0; m = (m - 1) / alphabet {
		i--
		buf[i] = byte('A' + (m-1)%alphabet)
	}

	return string(buf[i:])
}

// ColumnIndex parses a column label such as "A", "az" or "XFD" and returns
// its 0-based index. Letters are matched case-insensitively.
// Returns ErrBadLabel for empty or non-alphabetic input and ErrLabelOverflow
// when the label is too long to index.
// Complexity: O(len(label)).
func ColumnIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("ColumnIndex(%q): %w", label, ErrBadLabel)
	}
	m := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("ColumnIndex(%q): %w", label, ErrBadLabel)
		}
		if m > (math.MaxInt-alphabet)/alphabet {
			return 0, fmt.Errorf("ColumnIndex(%q): %w", label, ErrLabelOverflow)
		}
		m = m*alphabet + int(r-'A') + 1
	}

	return m - 1, nil
}
