// SPDX-License-Identifier: MIT
// Package: sheetnet/layout
//
// options.go — functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     New itself returns errors and never panics on user input.
//   • Later options override earlier ones.

package layout

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sheetnet/formula"
)

// Option customizes a layout by mutating its config before planning begins.
type Option func(*config)

// WithBias toggles the per-node bias cell.
func WithBias(enabled bool) Option {
	return func(c *config) {
		c.bias = enabled
	}
}

// WithActivation selects the activation applied to every non-input node.
// Panics if a is not a catalog entry.
func WithActivation(a formula.Activation) Option {
	if !a.Valid() {
		panic(fmt.Sprintf("layout: WithActivation(%s)", a))
	}
	return func(c *config) {
		c.activation = a
	}
}

// WithInputValue sets the literal written into every input-layer cell.
// Panics on an empty or formula literal.
func WithInputValue(v string) Option {
	mustLiteral("WithInputValue", v)
	return func(c *config) {
		c.inputValue = v
	}
}

// WithWeightValue sets the literal written into every weight cell.
// Panics on an empty or formula literal.
func WithWeightValue(v string) Option {
	mustLiteral("WithWeightValue", v)
	return func(c *config) {
		c.weightValue = v
	}
}

// WithBiasValue sets the literal written into every bias cell.
// Panics on an empty or formula literal.
func WithBiasValue(v string) Option {
	mustLiteral("WithBiasValue", v)
	return func(c *config) {
		c.biasValue = v
	}
}

// mustLiteral rejects values that would render as an empty cell or a formula.
func mustLiteral(method, v string) {
	if strings.TrimSpace(v) == "" {
		panic(fmt.Sprintf("layout: %s(empty)", method))
	}
	if strings.HasPrefix(v, "=") {
		panic(fmt.Sprintf("layout: %s(%q): formulas are not literals", method, v))
	}
}
