package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Hann returns symmetric Hann coefficients w[i] = 0.5*(1-cos(2*pi*i/(N-1))).
//
// The phase is divided by N-1, so w[0] and w[N-1] are both zero. A single
// coefficient window is {1}.
func Hann(size int) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	den := float64(size - 1)
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/den)
	}

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with precomputed coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns the mean coefficient value, i.e. the amplitude a
// windowed sinusoid retains at its own bin relative to a rectangular window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return sum / float64(len(coeffs)), nil
}
