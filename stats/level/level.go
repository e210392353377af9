// Package level computes simple level statistics of a time-domain signal:
// RMS, peak, crest factor and the count of samples beyond full scale.
package level

import (
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Stats holds level statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	PeakPos        int
	Peak_dB        float64
	CrestFactor_dB float64
	Clipped        int // samples with |x| > 1
}

func emptyStats() Stats {
	return Stats{
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	if len(signal) == 0 {
		return emptyStats()
	}

	var (
		sumSq   float64
		peak    float64
		peakPos int
		clipped int
	)

	for i, x := range signal {
		sumSq += x * x

		a := math.Abs(x)
		if a > peak {
			peak = a
			peakPos = i
		}

		if a > 1 {
			clipped++
		}
	}

	rms := math.Sqrt(sumSq / float64(len(signal)))

	var crestdB float64
	if rms > 0 {
		crestdB = core.LinearToDB(peak / rms)
	}

	return Stats{
		Length:         len(signal),
		RMS:            rms,
		RMS_dB:         core.LinearToDB(rms),
		Peak:           peak,
		PeakPos:        peakPos,
		Peak_dB:        core.LinearToDB(peak),
		CrestFactor_dB: crestdB,
		Clipped:        clipped,
	}
}
