// SPDX-License-Identifier: MIT
// Package formula renders the spreadsheet formulas of a feedforward network node.
//
// What:
//
//   - WeightedSum: SUM(ARRAYFORMULA(inputs * weights)), the dot product of the
//     previous layer's activation column and one node's weight row.
//   - AddBias:     (expr + bias).
//   - Activation:  a closed catalog {relu, tanh, sigmoid} of one-argument
//     templates. ApplyActivation substitutes an expression into a template.
//
// Rendering is pure string substitution. Nothing is evaluated here; numeric
// correctness belongs to whatever spreadsheet program loads the result.
//
// Templates:
//
//	relu     MAX(0, x)
//	tanh     TANH(x)
//	sigmoid  1/(1 + EXP(-x))
//
// Errors:
//
//   - ErrUnknownActivation: name or value outside the catalog.
package formula
