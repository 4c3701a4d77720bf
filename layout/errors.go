// SPDX-License-Identifier: MIT
// Package: sheetnet/layout
//
// errors.go — sentinel errors for the layout package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w through layoutErrorf.
//   • Planning never panics on user input; option constructors panic on
//     meaningless values.

package layout

import (
	"errors"
	"fmt"
)

// ErrTooFewLayers indicates an architecture with fewer than two layers, which
// has no connections and therefore no weights to lay out.
var ErrTooFewLayers = errors.New("layout: at least two layers required")

// ErrBadLayerSize indicates a layer with fewer than one node.
var ErrBadLayerSize = errors.New("layout: layer size must be ≥ 1")

// layoutErrorf prefixes err with the method name and a formatted detail,
// preserving err for errors.Is.
func layoutErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
