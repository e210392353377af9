// Package frequency describes the shape of a one-sided magnitude spectrum,
// such as an averaged noise profile.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Stats holds shape descriptors of a magnitude spectrum.
//
//nolint:revive
type Stats struct {
	BinCount   int
	Peak       float64 // largest magnitude above DC
	PeakBin    int
	PeakFreq   float64 // Hz
	Average    float64 // mean magnitude above DC
	Average_dB float64
	Centroid   float64 // spectral centroid (Hz)
	Spread     float64 // spectral spread (Hz)
	Flatness   float64 // spectral flatness (Wiener entropy), 0..1
	Rolloff    float64 // frequency below which 85% energy (Hz)
}

// OneSided returns the DC..Nyquist half of a full-length spectrum, the form
// every function in this package expects. The result aliases full.
func OneSided(full []float64) []float64 {
	if len(full) < 2 {
		return full
	}

	return full[:len(full)/2+1]
}

// binFreq returns the frequency in Hz of a given bin index.
// fftSize = 2 * (len(magnitude) - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all descriptors from a one-sided magnitude spectrum
// (linear scale, NOT dB) of length FFTSize/2 + 1.
//
// The DC bin takes part in centroid and rolloff but not in Peak, Average or
// Flatness.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n < 2 {
		return Stats{BinCount: n, Average_dB: math.Inf(-1)}
	}

	s := Stats{BinCount: n}

	var sum, energy, sumAboveDC float64
	for i, v := range magnitude {
		sum += v
		energy += v * v

		if i == 0 {
			continue
		}

		sumAboveDC += v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
	}

	s.PeakFreq = binFreq(s.PeakBin, sampleRate, n)
	s.Average = sumAboveDC / float64(n-1)
	s.Average_dB = core.LinearToDB(s.Average)
	s.Centroid = centroid(magnitude, sampleRate, sum)
	s.Spread = spread(magnitude, sampleRate, s.Centroid, sum)
	s.Flatness = flatness(magnitude)
	s.Rolloff = rolloff(magnitude, sampleRate, 0.85, energy)

	return s
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, sampleRate float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, sampleRate, sum)
}

func centroid(magnitude []float64, sampleRate float64, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += binFreq(i, sampleRate, n) * v
	}
	return weightedSum / sumMag
}

// spread computes spectral spread (standard deviation of the spectrum around the centroid).
func spread(magnitude []float64, sampleRate float64, cent float64, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}
	weightedSqSum := 0.0
	for i, v := range magnitude {
		diff := binFreq(i, sampleRate, n) - cent
		weightedSqSum += diff * diff * v
	}
	return math.Sqrt(weightedSqSum / sumMag)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
// White noise is close to 1 and a hum close to 0.
//
// Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// DC bin (index 0) is excluded from the computation. If any considered bin
// is zero, 0 is returned.
func Flatness(magnitude []float64) float64 {
	return flatness(magnitude)
}

func flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0

	for _, v := range magnitude[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	nBins := float64(n - 1)

	return math.Exp(sumLog/nBins) / (sumLin / nBins)
}

// Rolloff returns the frequency below which the specified fraction (0..1) of
// spectral energy lies.
//
// Energy is defined as the sum of squared magnitudes. A typical value for
// percent is 0.85.
func Rolloff(magnitude []float64, sampleRate float64, percent float64) float64 {
	energy := 0.0
	for _, v := range magnitude {
		energy += v * v
	}
	return rolloff(magnitude, sampleRate, percent, energy)
}

func rolloff(magnitude []float64, sampleRate float64, percent float64, totalEnergy float64) float64 {
	n := len(magnitude)
	if n < 2 || totalEnergy == 0 {
		return 0
	}
	threshold := percent * totalEnergy
	cumEnergy := 0.0
	for i, v := range magnitude {
		cumEnergy += v * v
		if cumEnergy >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}
	return binFreq(n-1, sampleRate, n)
}
