// SPDX-License-Identifier: MIT
// Package: sheetnet/layout
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • bias        = true
//   • activation  = formula.DefaultActivation (sigmoid)
//   • inputValue  = "0"
//   • weightValue = "0"
//   • biasValue   = ".5"

package layout

import "github.com/katalvlaran/sheetnet/formula"

// config aggregates every knob New reads.
type config struct {
	bias        bool
	activation  formula.Activation
	inputValue  string
	weightValue string
	biasValue   string
}

// Deterministic defaults (named, no magic literals in the planner).
const (
	DefaultBias        = true
	DefaultInputValue  = "0"
	DefaultWeightValue = "0"
	DefaultBiasValue   = ".5"
)

// newConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		bias:        DefaultBias,
		activation:  formula.DefaultActivation,
		inputValue:  DefaultInputValue,
		weightValue: DefaultWeightValue,
		biasValue:   DefaultBiasValue,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
