// Package layout plans the spreadsheet grid of a feedforward neural network.
//
// 🚀 What does it build?
//
//	Given layer sizes [n₀, n₁, …, n_{L-1}], an activation and a bias flag,
//	New assigns every activation, weight and bias to its own cell and renders
//	each node's formula against the coordinates of its dependencies:
//
//	  column l, rows 0..n_l-1   activation cells of layer l
//	                            (layer 0 holds literal inputs, "0" by default)
//	  row max(n) + Σn₁..n_{l-1} + j
//	                            weight row of node j in layer l, columns
//	                            0..n_{l-1}-1, followed by its bias cell
//
//	For layers [2,1] with sigmoid and bias:
//
//	      A    B                                         C
//	  1   0    =1/(1 + EXP(-(SUM(ARRAYFORMULA($A$1:$A$2 * $A$3:$B$3)) + $C$3)))
//	  2   0
//	  3   0    0                                         .5
//
//	(B1 holds the formula; A3:B3 are the weights, C3 the bias.)
//
// ✨ Guarantees:
//
//   - No coordinate is assigned twice: activation rows stay below max(n),
//     weight rows start at max(n) and grow strictly in iteration order.
//   - Formulas only reference cells of the previous layer and the node's
//     own weight row and bias cell.
//   - A weight row has exactly n_{l-1} cells, aligned with the source layer.
//   - Input is validated before any cell is written.
//
// ⚙️ Usage:
//
//	lay, err := layout.New([]int{5, 10, 10, 1},
//		layout.WithActivation(formula.ReLU),
//		layout.WithBias(true),
//	)
//	if err != nil { … }
//	err = sheet.WriteFile("net.csv", lay.Sheet())
//
// Errors:
//
//   - ErrTooFewLayers:   fewer than two layers.
//   - ErrBadLayerSize:   a layer with fewer than one node.
//   - formula.ErrUnknownActivation: activation outside the catalog.
//
// Complexity: O(Σ n_{l-1}·n_l) time and space, i.e. linear in the parameter count.
package layout
