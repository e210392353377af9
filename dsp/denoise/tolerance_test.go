//go:build !fastmath

package denoise

const (
	frameTol       = 1e-9
	reconstructTol = 1e-6
)
