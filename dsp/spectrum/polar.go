package spectrum

import "math"

// Polar splits a bin into magnitude and phase. A zero bin has phase 0.
func Polar(c complex128) (mag, phase float64) {
	re, im := real(c), imag(c)
	return mathSqrt(re*re + im*im), math.Atan2(im, re)
}

// FromPolar builds a bin from magnitude and phase.
func FromPolar(mag, phase float64) complex128 {
	sin, cos := math.Sincos(phase)
	return complex(mag*cos, mag*sin)
}

// ScaleMagnitudes multiplies each bin's magnitude by the matching gain and
// rebuilds it at its original phase. bins and gains must have the same length.
func ScaleMagnitudes(bins []complex128, gains []float64) {
	if len(bins) != len(gains) {
		panic("spectrum: gains length does not match bins")
	}

	for i, c := range bins {
		mag, phase := Polar(c)
		bins[i] = FromPolar(gains[i]*mag, phase)
	}
}
