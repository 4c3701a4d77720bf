// SPDX-License-Identifier: MIT
// Package sheet: sentinel error set.
// Callers branch on these with errors.Is; context is attached with %w.

package sheet

import "errors"

var (
	// ErrNegativeCoord indicates a coordinate with a negative column or row.
	ErrNegativeCoord = errors.New("sheet: negative coordinate")

	// ErrCollision indicates a second write to an occupied coordinate.
	ErrCollision = errors.New("sheet: coordinate already written")

	// ErrEmptySheet indicates a sheet with no cells has no bounding box to render.
	ErrEmptySheet = errors.New("sheet: no cells")

	// ErrOutOfRange indicates a grid index outside the bounding box.
	ErrOutOfRange = errors.New("sheet: index out of range")
)
