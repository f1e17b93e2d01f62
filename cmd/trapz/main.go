// Command trapz integrates sampled data from a file or stdin using the
// trapezoidal rule.
//
// Usage:
//
//	trapz data.txt                  # two columns: x y
//	trapz -dx 0.01 samples.txt      # one column of y values, fixed spacing
//	trapz -cumulative data.txt      # print the running integral per sample
//	generator | trapz -dx 0.5 -     # read from stdin
//
// Lines that are blank or start with '#' are skipped. Invalid input
// (fewer than two samples, non-positive -dx) exits with an error instead
// of printing the NaN sentinel.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
)

const minRequiredArgs = 1

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dx := flag.Float64("dx", 0, "Fixed sample spacing; input then needs only a y column")
	cumulative := flag.Bool("cumulative", false, "Print the running integral, one value per sample")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.txt\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.txt              # integrate x/y columns\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -dx 0.01 samples.txt  # evenly spaced y values\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	input, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = input.Close() }()

	ds, err := readSamples(bufio.NewScanner(input), *dx > 0)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Read %d samples", len(ds.y))
	}

	if *cumulative {
		return printCumulative(os.Stdout, ds, *dx)
	}

	result := integrateDataset(ds, *dx)
	if math.IsNaN(result) {
		return fmt.Errorf("integral undefined: need at least two samples and positive spacing")
	}
	fmt.Printf("%.12g\n", result)
	return nil
}

// openInput opens the named file, or stdin for "-".
func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return f, nil
}
