package denoise

import (
	"errors"
	"fmt"
	"math"
)

const (
	// FrameSize is the analysis frame and transform length in samples.
	FrameSize = 2048
	// HopSize is the frame advance, giving 50% overlap.
	HopSize = FrameSize / 2
)

const (
	defaultNoiseFrames     = 10
	defaultSpectralFloor   = 0.1
	defaultOverSubtraction = 2.0
	defaultMakeupGain      = 1.5
)

// ErrInvalidConfig is wrapped by [Config.Validate] failures.
var ErrInvalidConfig = errors.New("denoise: invalid config")

// Config controls one processing call.
type Config struct {
	// NoiseFrames is the number of leading frames averaged into the noise profile.
	NoiseFrames int
	// SpectralFloor is the minimum fraction of each bin's magnitude kept, in [0, 1].
	SpectralFloor float64
	// OverSubtraction scales the noise profile before it is subtracted.
	OverSubtraction float64
	// MakeupGain is the linear gain applied to the reconstructed output.
	MakeupGain float64
}

// DefaultConfig returns the medium-strength settings.
func DefaultConfig() Config {
	return Config{
		NoiseFrames:     defaultNoiseFrames,
		SpectralFloor:   defaultSpectralFloor,
		OverSubtraction: defaultOverSubtraction,
		MakeupGain:      defaultMakeupGain,
	}
}

// Validate reports whether every field is in range.
//
// Process does not call Validate; out-of-range values are well defined but
// may sound poor (a negative OverSubtraction amplifies noise).
func (c Config) Validate() error {
	if c.NoiseFrames < 1 {
		return fmt.Errorf("%w: noise frames must be >= 1: %d", ErrInvalidConfig, c.NoiseFrames)
	}

	if !isFinite(c.SpectralFloor) || c.SpectralFloor < 0 || c.SpectralFloor > 1 {
		return fmt.Errorf("%w: spectral floor must be in [0, 1]: %f", ErrInvalidConfig, c.SpectralFloor)
	}

	if !isFinite(c.OverSubtraction) || c.OverSubtraction < 0 {
		return fmt.Errorf("%w: over-subtraction must be >= 0: %f", ErrInvalidConfig, c.OverSubtraction)
	}

	if !isFinite(c.MakeupGain) || c.MakeupGain <= 0 {
		return fmt.Errorf("%w: makeup gain must be > 0: %f", ErrInvalidConfig, c.MakeupGain)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FrameCount returns how many full frames Process analyses for a signal of
// the given length.
func FrameCount(length int) int {
	if length < FrameSize {
		return 0
	}

	return 1 + (length-FrameSize)/HopSize
}
