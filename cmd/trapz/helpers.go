package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	trapez "github.com/awxkee/trapez-integrate"
)

// dataset holds parsed sample columns. x is nil when the input carried only
// y values (fixed -dx mode).
type dataset struct {
	y []float64
	x []float64
}

// readSamples parses whitespace-separated columns from the scanner.
// With yOnly set, each data line contributes a single y value; otherwise
// lines must carry an x and a y column.
func readSamples(scanner *bufio.Scanner, yOnly bool) (*dataset, error) {
	ds := &dataset{}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if yOnly {
			v, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid y value %q: %w", lineNo, fields[0], err)
			}
			ds.y = append(ds.y, v)
			continue
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected x and y columns, got %q", lineNo, line)
		}
		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid x value %q: %w", lineNo, fields[0], err)
		}
		yv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid y value %q: %w", lineNo, fields[1], err)
		}
		ds.x = append(ds.x, xv)
		ds.y = append(ds.y, yv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return ds, nil
}

// integrateDataset dispatches to the even or spacing-detecting rule.
func integrateDataset(ds *dataset, dx float64) float64 {
	if dx > 0 {
		return trapez.TrapezoidEven64(ds.y, dx)
	}
	return trapez.Trapezoid64(ds.y, ds.x)
}

// printCumulative writes the running integral, one "x integral" pair per
// line (or "index integral" in fixed-spacing mode).
func printCumulative(w io.Writer, ds *dataset, dx float64) error {
	var running []float64
	if dx > 0 {
		running = trapez.CumulativeTrapezoidEven(nil, ds.y, dx)
	} else {
		running = trapez.CumulativeTrapezoid(nil, ds.y, ds.x)
	}
	if running == nil {
		return fmt.Errorf("integral undefined: need at least two samples and positive spacing")
	}

	for i, v := range running {
		abscissa := float64(i) * dx
		if dx <= 0 {
			abscissa = ds.x[i]
		}
		if math.IsNaN(v) {
			return fmt.Errorf("NaN in running integral at sample %d", i)
		}
		if _, err := fmt.Fprintf(w, "%.12g %.12g\n", abscissa, v); err != nil {
			return err
		}
	}
	return nil
}
