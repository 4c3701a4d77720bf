// Package sheetnet turns a feedforward neural network description into a
// spreadsheet: a grid of cell formulas that computes the network's forward
// pass with nothing but ranges, array arithmetic and built-in math functions.
//
// 🚀 What is sheetnet?
//
//	Give it layer sizes, an activation and a bias flag; get back a CSV file.
//	Load the file into Google Sheets, type inputs into column A, edit the
//	weights, and watch the outputs update.
//
// ✨ Why a spreadsheet?
//
//   - Every weight is a visible, editable cell.
//   - Every activation is a formula you can click through.
//   - No runtime, no install: the spreadsheet program is the interpreter.
//
// Under the hood:
//
//	a1/          — column labels (bijective base-26) and absolute A1 references
//	formula/     — weighted-sum, bias and activation templates (relu, tanh, sigmoid)
//	layout/      — the planner: assigns every activation, weight and bias a cell
//	sheet/       — write-once sparse cell map, dense grid and CSV writer
//	cmd/sheetnet — command-line front end
//
// Quick example (layers [2,1], sigmoid, bias):
//
//	    A   B
//	1   0   =1/(1 + EXP(-(SUM(ARRAYFORMULA($A$1:$A$2 * $A$3:$B$3)) + $C$3)))
//	2   0
//	3   0   0   .5
//
//	go install github.com/katalvlaran/sheetnet/cmd/sheetnet@latest
//	sheetnet 5,10,10,1 --activation=relu --file=mynet.csv
package sheetnet
