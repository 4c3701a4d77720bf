package layout

import (
	"github.com/katalvlaran/sheetnet/a1"
	"github.com/katalvlaran/sheetnet/formula"
	"github.com/katalvlaran/sheetnet/sheet"
)

// Node describes where one network node and its parameters live in the grid.
//
// Input-layer nodes have FanIn == 0 and WeightRow == -1: they own only their
// activation cell. Every other node owns a weight row of FanIn cells starting
// at column A, plus the bias cell right after it when HasBias is set.
type Node struct {
	Layer     int      // 0-based layer index (== activation column)
	Index     int      // 0-based node index within the layer (== activation row)
	Cell      a1.Coord // activation cell
	FanIn     int      // size of the previous layer; 0 for inputs
	WeightRow int      // 0-based grid row of the weight block; -1 for inputs
	HasBias   bool     // bias cell present
}

// Weights returns the first and last weight cells of n.
// ok is false for input nodes.
func (n Node) Weights() (from, to a1.Coord, ok bool) {
	if n.FanIn == 0 {
		return a1.Coord{}, a1.Coord{}, false
	}

	return a1.At(0, n.WeightRow), a1.At(n.FanIn-1, n.WeightRow), true
}

// BiasCell returns the bias coordinate of n. ok is false for input nodes and
// when bias is disabled.
func (n Node) BiasCell() (a1.Coord, bool) {
	if n.FanIn == 0 || !n.HasBias {
		return a1.Coord{}, false
	}

	return a1.At(n.FanIn, n.WeightRow), true
}

// Layout is a planned network grid. It is immutable after New returns.
type Layout struct {
	layers      []int
	cfg         config
	weightStart int // == max(layers)
	nodes       []Node
	sheet       *sheet.Sheet
}

// Sheet returns the planned cell map. Callers must treat it as read-only.
func (lay *Layout) Sheet() *sheet.Sheet { return lay.sheet }

// Layers returns a copy of the architecture.
func (lay *Layout) Layers() []int {
	return append([]int(nil), lay.layers...)
}

// Activation returns the configured activation.
func (lay *Layout) Activation() formula.Activation { return lay.cfg.activation }

// Bias reports whether bias cells were planned.
func (lay *Layout) Bias() bool { return lay.cfg.bias }

// WeightStartRow returns the first 0-based row of the weight blocks, max(layers).
func (lay *Layout) WeightStartRow() int { return lay.weightStart }

// Nodes returns every node in planning order: layer by layer, node by node.
func (lay *Layout) Nodes() []Node {
	return append([]Node(nil), lay.nodes...)
}

// Node returns node n of layer l, or ok == false if either index is out of range.
func (lay *Layout) Node(l, n int) (Node, bool) {
	if l < 0 || l >= len(lay.layers) || n < 0 || n >= lay.layers[l] {
		return Node{}, false
	}
	off := 0
	for i := 0; i < l; i++ {
		off += lay.layers[i]
	}

	return lay.nodes[off+n], true
}

// Params returns the number of weight and bias cells.
func (lay *Layout) Params() (weights, biases int) {
	for l := 1; l < len(lay.layers); l++ {
		weights += lay.layers[l-1] * lay.layers[l]
		if lay.cfg.bias {
			biases += lay.layers[l]
		}
	}

	return weights, biases
}

// InputRange returns the absolute range of the input cells, e.g. "$A$1:$A$5".
func (lay *Layout) InputRange() string {
	return a1.ColumnRange(0, lay.layers[0])
}

// OutputRange returns the absolute range of the output activations.
func (lay *Layout) OutputRange() string {
	last := len(lay.layers) - 1

	return a1.ColumnRange(last, lay.layers[last])
}
