// Package noisefloor measures the broadband noise level of a signal from
// its short-time magnitude spectrum.
//
// The signal is cut into non-overlapping Hann-windowed frames. For every
// frame the one-sided magnitude spectrum (DC excluded) is computed, bins near
// any listed tone are dropped, and the rest are averaged. The median bin is
// reported as well, which tracks the floor even when tones are not listed.
package noisefloor

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/fft"
	"github.com/cwbudde/algo-denoise/dsp/spectrum"
	"github.com/cwbudde/algo-denoise/dsp/window"
)

const (
	defaultFFTSize   = 2048
	defaultGuardBins = 4
)

var (
	// ErrSignalTooShort is returned when not even one frame fits the signal.
	ErrSignalTooShort = errors.New("noisefloor: signal shorter than one frame")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite rate.
	ErrInvalidSampleRate = errors.New("noisefloor: sample rate must be > 0")
)

// Config holds measurement parameters.
type Config struct {
	SampleRate float64
	// FFTSize defaults to 2048.
	FFTSize int
	// Tones lists frequencies in Hz whose neighbourhood is excluded.
	Tones []float64
	// GuardBins is the half-width of each excluded neighbourhood. Defaults to 4.
	GuardBins int
}

// Result holds the measured floor.
//
//nolint:revive
type Result struct {
	Frames    int
	Bins      int     // bins per frame that entered the mean
	Mean      float64 // mean magnitude over kept bins and frames
	Mean_dB   float64
	Median    float64 // median over frames of the per-frame median bin
	Median_dB float64
}

// Measure analyses samples and returns the noise floor.
func Measure(samples []float64, cfg Config) (Result, error) {
	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return Result{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, cfg.SampleRate)
	}

	if cfg.FFTSize <= 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.GuardBins <= 0 {
		cfg.GuardBins = defaultGuardBins
	}

	if len(samples) < cfg.FFTSize {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrSignalTooShort, len(samples), cfg.FFTSize)
	}

	engine, err := fft.NewEngine(cfg.FFTSize)
	if err != nil {
		return Result{}, fmt.Errorf("noisefloor: %w", err)
	}

	coeffs, err := window.Hann(cfg.FFTSize)
	if err != nil {
		return Result{}, fmt.Errorf("noisefloor: %w", err)
	}

	keep := keptBins(cfg)
	frame := make([]float64, cfg.FFTSize)
	mags := make([]float64, cfg.FFTSize)
	kept := make([]float64, 0, len(keep))

	var (
		sum     float64
		medians []float64
	)

	for pos := 0; pos+cfg.FFTSize <= len(samples); pos += cfg.FFTSize {
		copy(frame, samples[pos:pos+cfg.FFTSize])

		if err := window.ApplyCoefficientsInPlace(frame, coeffs); err != nil {
			return Result{}, fmt.Errorf("noisefloor: %w", err)
		}

		spectrum.MagnitudeInto(mags, engine.Forward(frame))

		kept = kept[:0]
		for _, k := range keep {
			kept = append(kept, mags[k])
			sum += mags[k]
		}

		medians = append(medians, median(kept))
	}

	res := Result{
		Frames: len(medians),
		Bins:   len(keep),
	}

	if len(keep) > 0 {
		res.Mean = sum / float64(len(keep)*len(medians))
	}

	res.Median = median(medians)
	res.Mean_dB = core.LinearToDB(res.Mean)
	res.Median_dB = core.LinearToDB(res.Median)

	return res, nil
}

// keptBins lists one-sided bins 1..N/2 that are not within GuardBins of a tone.
func keptBins(cfg Config) []int {
	half := cfg.FFTSize / 2
	binHz := cfg.SampleRate / float64(cfg.FFTSize)

	excluded := make([]bool, half+1)
	for _, f := range cfg.Tones {
		center := int(math.Round(f / binHz))
		for k := center - cfg.GuardBins; k <= center+cfg.GuardBins; k++ {
			if k >= 0 && k <= half {
				excluded[k] = true
			}
		}
	}

	keep := make([]int, 0, half)
	for k := 1; k <= half; k++ {
		if !excluded[k] {
			keep = append(keep, k)
		}
	}

	return keep
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return 0.5 * (sorted[mid-1] + sorted[mid])
}
