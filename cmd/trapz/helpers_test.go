package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadSamplesTwoColumns verifies x/y parsing with comments and blank
// lines.
func TestReadSamplesTwoColumns(t *testing.T) {
	input := `# x  y
1 5
2 6

4 1
6 4
7 6
9 2
`
	ds, err := readSamples(bufio.NewScanner(strings.NewReader(input)), false)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 4, 6, 7, 9}, ds.x)
	assert.Equal(t, []float64{5, 6, 1, 4, 6, 2}, ds.y)

	got := integrateDataset(ds, 0)
	assert.InDelta(t, 30.5, got, 1e-12)
}

// TestReadSamplesYOnly verifies single-column parsing for fixed spacing.
func TestReadSamplesYOnly(t *testing.T) {
	input := "5\n6\n1\n4\n6\n2\n"

	ds, err := readSamples(bufio.NewScanner(strings.NewReader(input)), true)
	require.NoError(t, err)

	assert.Nil(t, ds.x)
	assert.Len(t, ds.y, 6)

	got := integrateDataset(ds, 0.003)
	assert.InDelta(t, 0.0615, got, 1e-12)
}

// TestReadSamplesErrors verifies parse failures carry line numbers.
func TestReadSamplesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		yOnly bool
	}{
		{"missing_column", "1 2\n3\n", false},
		{"bad_x", "abc 2\n", false},
		{"bad_y", "1 xyz\n", false},
		{"bad_y_only", "nope\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readSamples(bufio.NewScanner(strings.NewReader(tt.input)), tt.yOnly)
			assert.Error(t, err)
		})
	}
}

// TestPrintCumulative verifies the running-integral output format.
func TestPrintCumulative(t *testing.T) {
	ds := &dataset{
		y: []float64{0, 1, 2},
		x: []float64{0, 1, 2},
	}

	var sb strings.Builder
	require.NoError(t, printCumulative(&sb, ds, 0))

	assert.Equal(t, "0 0\n1 0.5\n2 2\n", sb.String())
}

// TestPrintCumulativeTooFewSamples verifies the undefined-result error path.
func TestPrintCumulativeTooFewSamples(t *testing.T) {
	ds := &dataset{y: []float64{1}, x: []float64{0}}

	var sb strings.Builder
	assert.Error(t, printCumulative(&sb, ds, 0))
}
