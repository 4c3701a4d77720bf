// Package sheet holds the cells of a generated spreadsheet and writes them out.
//
// What:
//
//   - Sheet is a sparse map from a1.Coord to Cell. Every coordinate is written
//     at most once; a second write is reported as ErrCollision because two
//     semantic entities sharing a cell is always a layout bug.
//   - Grid is the dense row-major rendering of a Sheet over its tight bounding
//     box (1 + max row, 1 + max column); absent cells are empty strings.
//   - WriteCSV serializes a Sheet as comma-separated records, one per grid row.
//     WriteFile does the same into a file, replacing it atomically.
//
// Roles:
//
//	RoleInput       literal input value of a layer-0 node
//	RoleActivation  forward-pass formula of a hidden or output node
//	RoleWeight      literal connection weight
//	RoleBias        literal bias term
//
// Errors:
//
//   - ErrNegativeCoord: Set called with a negative column or row.
//   - ErrCollision:     Set called twice for the same coordinate.
//   - ErrEmptySheet:    Dense/WriteCSV on a sheet with no cells.
//   - ErrOutOfRange:    Grid.At outside the bounding box.
package sheet
