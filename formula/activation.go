// SPDX-License-Identifier: MIT
// Package: sheetnet/formula
//
// activation.go — closed activation catalog.
//
// Contract:
//   • Activation is an enum over a fixed set; the zero value is invalid so an
//     unset field is never silently mistaken for a real choice.
//   • Names and templates live in one immutable table indexed by the enum.
//   • Lookups outside the set return ErrUnknownActivation.

package formula

import (
	"fmt"
	"strings"
)

// Activation selects the nonlinearity wrapped around each node's pre-activation.
type Activation int

const (
	invalidActivation Activation = iota
	// ReLU renders MAX(0, x).
	ReLU
	// Tanh renders TANH(x).
	Tanh
	// Sigmoid renders 1/(1 + EXP(-x)).
	Sigmoid
)

// DefaultActivation is used when no activation is configured.
const DefaultActivation = Sigmoid

// catalogEntry pairs a user-facing name with its one-argument template.
type catalogEntry struct {
	name     string
	template string // exactly one %s
}

// catalog is indexed by Activation; slot 0 is the invalid zero value.
var catalog = [...]catalogEntry{
	invalidActivation: {},
	ReLU:              {name: "relu", template: "MAX(0, %s)"},
	Tanh:              {name: "tanh", template: "TANH(%s)"},
	Sigmoid:           {name: "sigmoid", template: "1/(1 + EXP(-%s))"},
}

// Activations lists every catalog entry in declaration order.
func Activations() []Activation {
	return []Activation{ReLU, Tanh, Sigmoid}
}

// Names lists the catalog names in declaration order, e.g. for usage text.
func Names() []string {
	acts := Activations()
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}

	return names
}

// ParseActivation resolves a catalog name. Matching ignores case and
// surrounding whitespace. Returns ErrUnknownActivation otherwise.
func ParseActivation(name string) (Activation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Activations() {
		if catalog[a].name == key {
			return a, nil
		}
	}

	return invalidActivation, fmt.Errorf("ParseActivation(%q): %w (want one of %s)",
		name, ErrUnknownActivation, strings.Join(Names(), ", "))
}

// Valid reports whether a is a catalog entry.
func (a Activation) Valid() bool {
	return a > invalidActivation && int(a) < len(catalog)
}

// String returns the catalog name, or "Activation(n)" for values outside it.
func (a Activation) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Activation(%d)", int(a))
	}

	return catalog[a].name
}

// Apply substitutes expr into the activation template.
// Returns ErrUnknownActivation if a is not a catalog entry.
func (a Activation) Apply(expr string) (string, error) {
	if !a.Valid() {
		return "", fmt.Errorf("Apply(%s): %w", a, ErrUnknownActivation)
	}

	return fmt.Sprintf(catalog[a].template, expr), nil
}

// Set implements flag.Value so an Activation can be bound to a command-line flag.
func (a *Activation) Set(name string) error {
	parsed, err := ParseActivation(name)
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
