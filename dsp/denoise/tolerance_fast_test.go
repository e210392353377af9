//go:build fastmath

package denoise

// The approximate square root in spectrum.Polar costs up to ~1.5e-6 relative
// error per bin.
const (
	frameTol       = 1e-4
	reconstructTol = 1e-4
)
