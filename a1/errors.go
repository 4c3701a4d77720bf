package a1

import "errors"

var (
	// ErrBadLabel indicates a column label that is empty or contains runes outside A–Z.
	ErrBadLabel = errors.New("a1: invalid column label")

	// ErrLabelOverflow indicates a column label whose index does not fit in an int.
	ErrLabelOverflow = errors.New("a1: column label overflows int")
)
