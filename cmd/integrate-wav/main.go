// Command integrate-wav integrates the sample data of a WAV file over time.
//
// For each channel it reports the net area under the waveform (the integral
// of the signal, which for audio is the DC offset times the duration), the
// signal energy (the integral of the squared signal) and the RMS level
// derived from it. Samples sit on an exactly regular time grid, so the
// uniform-spacing trapezoidal rule applies with dx = 1/rate.
//
// Usage:
//
//	integrate-wav input.wav
//	integrate-wav -v input.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	trapez "github.com/awxkee/trapez-integrate"
)

const (
	// Buffer size for reading (frames per chunk).
	bufferSize = 65536

	// Full-scale values for PCM sample formats.
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	channels, rate, err := readChannels(args[0], *verbose)
	if err != nil {
		return err
	}

	dt := 1.0 / float64(rate)
	for ch, samples := range channels {
		if len(samples) < 2 {
			return fmt.Errorf("channel %d: need at least two samples, got %d", ch, len(samples))
		}

		duration := float64(len(samples)-1) * dt
		area := trapez.TrapezoidEven64(samples, dt)

		squared := make([]float64, len(samples))
		for i, v := range samples {
			squared[i] = v * v
		}
		energy := trapez.TrapezoidEven64(squared, dt)

		fmt.Printf("channel %d: %d samples, %.3fs\n", ch, len(samples), duration)
		fmt.Printf("  net area:  %.9g (DC offset %.9g)\n", area, area/duration)
		fmt.Printf("  energy:    %.9g\n", energy)
		fmt.Printf("  RMS:       %.9g\n", math.Sqrt(energy/duration))
	}
	return nil
}

// readChannels decodes the WAV file into normalized per-channel float64
// sample slices and returns them with the sample rate.
func readChannels(path string, verbose bool) ([][]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	numChannels := format.NumChannels
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, numChannels, bitDepth)
	}

	invMaxVal, err := sampleScale(bitDepth)
	if err != nil {
		return nil, 0, err
	}

	channels := make([][]float64, numChannels)
	intBuffer := &audio.IntBuffer{
		Format: format,
		Data:   make([]int, bufferSize*numChannels),
	}

	for {
		n, err := decoder.PCMBuffer(intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		data := intBuffer.Data[:n*numChannels]
		for ch := 0; ch < numChannels; ch++ {
			for i := ch; i < len(data); i += numChannels {
				channels[ch] = append(channels[ch], float64(data[i])*invMaxVal)
			}
		}
	}

	return channels, format.SampleRate, nil
}

// sampleScale returns the factor normalizing integer PCM to [-1, 1].
func sampleScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return 1.0 / maxInt16, nil
	case bitsPerSample24:
		return 1.0 / maxInt24, nil
	case bitsPerSample32:
		return 1.0 / maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}
