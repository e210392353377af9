package window

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned for non-positive window sizes.
var ErrInvalidLength = errors.New("window size must be > 0")

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}
	return nil
}
