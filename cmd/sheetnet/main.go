// Command sheetnet writes a feedforward neural network as a CSV file of
// spreadsheet formulas. Loading the file into a spreadsheet program computes
// the network's forward pass; inputs sit in column A, weights default to 0 and
// biases to .5.
//
// Usage:
//
//	sheetnet [flags] <layers>
//
//	  <layers>        comma separated layer sizes, input first, e.g. 5,10,10,1
//	  --bias          add a bias term (default true; --bias=false to disable)
//	  --activation    relu, tanh or sigmoid (default sigmoid)
//	  --file          output path (default net.csv; - for stdout)
//
// Exit status is 0 on success, 2 for invalid arguments and 1 when the file
// cannot be written. A failed run leaves no output file behind.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/sheetnet/a1"
	"github.com/katalvlaran/sheetnet/layout"
	"github.com/katalvlaran/sheetnet/sheet"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "sheetnet: ", 0)

	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logger.Println(err)
		return exitUsage
	}

	lay, err := layout.New(cfg.layers,
		layout.WithBias(cfg.bias),
		layout.WithActivation(cfg.activation),
	)
	if err != nil {
		logger.Println(err)
		return exitUsage
	}

	sh := lay.Sheet()
	rows, cols := sh.Bounds()
	if excel, sheets := a1.Exceeds(rows, cols); excel || sheets {
		logger.Printf("warning: %d×%d grid exceeds the limits of %s", rows, cols, limitNames(excel, sheets))
	}

	if cfg.file == stdoutFile {
		err = sheet.WriteCSV(stdout, sh)
	} else {
		err = sheet.WriteFile(cfg.file, sh)
	}
	if err != nil {
		logger.Println(err)
		return exitIO
	}

	if cfg.file != stdoutFile {
		weights, biases := lay.Params()
		logger.Printf("wrote %s: %d rows × %d columns, %s network, %d weights, %d biases, inputs %s, outputs %s",
			cfg.file, rows, cols, cfg.activation, weights, biases, lay.InputRange(), lay.OutputRange())
	}

	return exitOK
}

func limitNames(excel, sheets bool) string {
	switch {
	case excel && sheets:
		return "Excel and Google Sheets"
	case sheets:
		return "Google Sheets"
	default:
		return "Excel"
	}
}
