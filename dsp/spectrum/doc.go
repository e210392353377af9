// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by [github.com/cwbudde/algo-denoise/dsp/fft]
// and provides magnitude extraction and polar read-modify-write helpers that
// change a bin's magnitude while preserving its phase.
//
// Building with the fastmath tag replaces the square root in [Polar] with an
// approximation from algo-approx (relative error below 1e-5).
package spectrum
