package fft

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrInvalidSize is returned when an engine is requested with fewer than two points.
var ErrInvalidSize = errors.New("fft: size must be >= 2")

// Engine performs forward and inverse transforms of one fixed size.
//
// Forward returns the engine's internal spectrum buffer and Inverse returns
// its internal time-domain buffer; both stay valid only until the next call.
type Engine struct {
	size int
	plan *algofft.Plan[complex128]

	spectrum []complex128
	frame    []float64
}

// NewEngine creates an engine for transforms of length size.
func NewEngine(size int) (*Engine, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create plan for size %d: %w", size, err)
	}

	return &Engine{
		size:     size,
		plan:     plan,
		spectrum: make([]complex128, size),
		frame:    make([]float64, size),
	}, nil
}

// Size returns the transform length.
func (e *Engine) Size() int { return e.size }

// Forward transforms a real frame into its complex spectrum.
func (e *Engine) Forward(frame []float64) []complex128 {
	e.mustMatch("frame", len(frame))

	for i, x := range frame {
		e.spectrum[i] = complex(x, 0)
	}

	if err := e.plan.Forward(e.spectrum, e.spectrum); err != nil {
		panic(fmt.Sprintf("fft: forward transform failed: %v", err))
	}

	return e.spectrum
}

// Inverse transforms a spectrum back to the time domain, normalized by 1/N,
// and returns the real part. spectrum may be the slice returned by Forward.
func (e *Engine) Inverse(spectrum []complex128) []float64 {
	e.mustMatch("spectrum", len(spectrum))

	if err := e.plan.Inverse(e.spectrum, spectrum); err != nil {
		panic(fmt.Sprintf("fft: inverse transform failed: %v", err))
	}

	for i, c := range e.spectrum {
		e.frame[i] = real(c)
	}

	return e.frame
}

func (e *Engine) mustMatch(what string, n int) {
	if n != e.size {
		panic(fmt.Sprintf("fft: %s length %d does not match transform size %d", what, n, e.size))
	}
}
