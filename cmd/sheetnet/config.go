package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sheetnet/formula"
	"github.com/katalvlaran/sheetnet/layout"
)

const (
	defaultFile = "net.csv"
	stdoutFile  = "-"
)

// errBadLayers indicates a layer list that is missing or not a list of integers.
var errBadLayers = errors.New("invalid layer list")

// config is the parsed command line.
type config struct {
	layers     []int
	bias       bool
	activation formula.Activation
	file       string
}

// parseArgs reads flags and positional layer sizes from args (without the
// program name). Flags may appear before or after the positional sizes.
func parseArgs(args []string, output io.Writer) (config, error) {
	cfg := config{
		bias:       layout.DefaultBias,
		activation: formula.DefaultActivation,
	}

	fs := flag.NewFlagSet("sheetnet", flag.ContinueOnError)
	fs.SetOutput(output)
	layersFlag := fs.String("layers", "", "comma separated layer sizes, input first (e.g. 5,10,10,1)")
	fs.BoolVar(&cfg.bias, "bias", cfg.bias, "add a bias term to every non-input node")
	fs.Var(&cfg.activation, "activation", "activation function: "+strings.Join(formula.Names(), ", "))
	fs.StringVar(&cfg.file, "file", defaultFile, "output CSV path, or - for stdout")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: sheetnet [flags] <layers>\n\n"+
			"Writes a feedforward neural network as spreadsheet formulas in CSV.\n\n"+
			"Examples:\n"+
			"  sheetnet 5,10,10,1 --activation=relu --file=mynet.csv\n"+
			"  sheetnet --layers='[28, 50, 10]' --bias=false --activation=tanh\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	// flag stops at the first positional argument; resume after each one
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return config{}, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	switch {
	case *layersFlag != "" && len(positional) > 0:
		return config{}, fmt.Errorf("%w: give sizes either with --layers or positionally, not both", errBadLayers)
	case *layersFlag != "":
		positional = []string{*layersFlag}
	case len(positional) == 0:
		return config{}, fmt.Errorf("%w: no layer sizes given", errBadLayers)
	}

	layers, err := parseLayers(strings.Join(positional, ","))
	if err != nil {
		return config{}, err
	}
	cfg.layers = layers
	if cfg.file == "" {
		return config{}, errors.New("--file must not be empty")
	}

	return cfg, nil
}

// parseLayers accepts "5,10,10,1", "[5, 10, 10, 1]" or whitespace separated
// sizes. Range checks (≥ 2 layers, sizes ≥ 1) are left to layout.New.
func parseLayers(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '[' || r == ']'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no layer sizes given", errBadLayers)
	}
	layers := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errBadLayers, f)
		}
		layers[i] = n
	}

	return layers, nil
}
