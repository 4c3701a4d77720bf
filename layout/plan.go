package layout

import (
	"github.com/katalvlaran/sheetnet/a1"
	"github.com/katalvlaran/sheetnet/formula"
	"github.com/katalvlaran/sheetnet/sheet"
)

// Method names used as error prefixes.
const (
	methodNew  = "New"
	methodPlan = "Plan"
)

// minLayers is the smallest architecture with at least one connection.
const minLayers = 2

// Plan lays out the network and returns its cell map. activation is a catalog
// name ("relu", "tanh", "sigmoid"). Layers are validated first, then the
// activation; nothing is built unless both are valid.
func Plan(layers []int, bias bool, activation string) (*sheet.Sheet, error) {
	if err := validateLayers(methodPlan, layers); err != nil {
		return nil, err
	}
	act, err := formula.ParseActivation(activation)
	if err != nil {
		return nil, layoutErrorf(methodPlan, err, "activation %q", activation)
	}
	lay, err := New(layers, WithBias(bias), WithActivation(act))
	if err != nil {
		return nil, err
	}

	return lay.Sheet(), nil
}

// New validates layers, then assigns every activation, weight and bias to a
// cell and renders each node's formula.
//
// Stages:
//  1. Validate: len(layers) ≥ 2, every size ≥ 1.
//  2. weightStart = max(layers); rowBase[l] = weightStart + Σ layers[1..l-1].
//  3. Layer 0: input literals at (0, n).
//  4. Layer l ≥ 1, node n: weight row r = rowBase[l] + n; weights at
//     (0..fanIn-1, r), bias at (fanIn, r), formula at (l, n).
//
// Complexity: O(Σ layers[l-1]·layers[l]) time and space.
func New(layers []int, opts ...Option) (*Layout, error) {
	if err := validateLayers(methodNew, layers); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	lay := &Layout{
		layers:      append([]int(nil), layers...),
		cfg:         cfg,
		weightStart: maxOf(layers),
		sheet:       sheet.New(),
	}
	lay.nodes = make([]Node, 0, sumOf(layers))

	rowBase := lay.weightStart
	for l, size := range lay.layers {
		for n := 0; n < size; n++ {
			var (
				node Node
				err  error
			)
			if l == 0 {
				node, err = lay.placeInput(n)
			} else {
				node, err = lay.placeNode(l, n, rowBase+n)
			}
			if err != nil {
				return nil, err
			}
			lay.nodes = append(lay.nodes, node)
		}
		if l > 0 {
			rowBase += size
		}
	}

	return lay, nil
}

// placeInput writes the literal input cell of node n in layer 0.
func (lay *Layout) placeInput(n int) (Node, error) {
	node := Node{Layer: 0, Index: n, Cell: a1.At(0, n), WeightRow: -1}
	if err := lay.sheet.Set(node.Cell, lay.cfg.inputValue, sheet.RoleInput); err != nil {
		return Node{}, layoutErrorf(methodNew, err, "input %d", n)
	}

	return node, nil
}

// placeNode writes the formula of node n in layer l together with its weight
// row and optional bias cell at grid row row.
func (lay *Layout) placeNode(l, n, row int) (Node, error) {
	fanIn := lay.layers[l-1]
	node := Node{
		Layer:     l,
		Index:     n,
		Cell:      a1.At(l, n),
		FanIn:     fanIn,
		WeightRow: row,
		HasBias:   lay.cfg.bias,
	}

	biasRef := ""
	if bc, ok := node.BiasCell(); ok {
		biasRef = bc.Cell()
	}
	from, to, _ := node.Weights()
	f, err := formula.Node(lay.cfg.activation, a1.ColumnRange(l-1, fanIn), a1.Range(from, to), biasRef)
	if err != nil {
		return Node{}, layoutErrorf(methodNew, err, "layer %d node %d", l, n)
	}

	if err = lay.sheet.Set(node.Cell, f, sheet.RoleActivation); err != nil {
		return Node{}, layoutErrorf(methodNew, err, "layer %d node %d", l, n)
	}
	for w := 0; w < fanIn; w++ {
		if err = lay.sheet.Set(a1.At(w, row), lay.cfg.weightValue, sheet.RoleWeight); err != nil {
			return Node{}, layoutErrorf(methodNew, err, "layer %d node %d weight %d", l, n, w)
		}
	}
	if bc, ok := node.BiasCell(); ok {
		if err = lay.sheet.Set(bc, lay.cfg.biasValue, sheet.RoleBias); err != nil {
			return Node{}, layoutErrorf(methodNew, err, "layer %d node %d bias", l, n)
		}
	}

	return node, nil
}

// validateLayers rejects architectures without a defined weight structure.
func validateLayers(method string, layers []int) error {
	if len(layers) < minLayers {
		return layoutErrorf(method, ErrTooFewLayers, "got %d", len(layers))
	}
	for i, size := range layers {
		if size < 1 {
			return layoutErrorf(method, ErrBadLayerSize, "layer %d has %d nodes", i, size)
		}
	}

	return nil
}

func maxOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

func sumOf(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
