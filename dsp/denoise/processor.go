package denoise

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/fft"
	"github.com/cwbudde/algo-denoise/dsp/window"
)

// Processor owns the transform plan, the window table and every scratch
// buffer used while denoising, so repeated calls do not allocate per frame.
type Processor struct {
	engine *fft.Engine
	window []float64

	frame []float64
	mags  []float64
	gains []float64

	profile  NoiseProfile
	overlap  overlapAdder
	ampScale float64
}

// NewProcessor creates a processor for FrameSize frames.
func NewProcessor() (*Processor, error) {
	engine, err := fft.NewEngine(FrameSize)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}

	coeffs, err := window.Hann(FrameSize)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}

	cg, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}

	return &Processor{
		engine:  engine,
		window:  coeffs,
		frame:   make([]float64, FrameSize),
		mags:    make([]float64, FrameSize),
		gains:   make([]float64, FrameSize),
		profile: make(NoiseProfile, FrameSize),

		ampScale: 2 / (FrameSize * cg),
	}, nil
}

// AmplitudeScale converts a bin magnitude of the analysis window into the
// peak amplitude of a sinusoid centred on that bin.
func (p *Processor) AmplitudeScale() float64 {
	return p.ampScale
}

// Process returns a denoised copy of samples with the same length.
//
// Inputs shorter than FrameSize are returned unchanged. The output is not
// clamped and may exceed [-1, 1] by up to the makeup gain.
func (p *Processor) Process(samples []float64, cfg Config) []float64 {
	out := make([]float64, len(samples))
	if len(samples) < FrameSize {
		clear(p.profile)
		copy(out, samples)

		return out
	}

	p.estimateInto(p.profile, samples, cfg.NoiseFrames)
	p.overlap.reset(len(samples))

	for pos := 0; pos+FrameSize <= len(samples); pos += HopSize {
		frame := p.subtractFrame(samples[pos:pos+FrameSize], p.profile, cfg)
		p.overlap.add(pos, frame, p.window)
	}

	p.overlap.normalize(out, cfg.MakeupGain)

	return out
}

// Profile returns a copy of the noise profile estimated by the last Process
// call. It is all zero before the first call and after a call whose input was
// shorter than FrameSize.
func (p *Processor) Profile() NoiseProfile {
	out := make(NoiseProfile, len(p.profile))
	copy(out, p.profile)

	return out
}

// ProcessInPlace denoises buf in place.
func (p *Processor) ProcessInPlace(buf []float64, cfg Config) {
	copy(buf, p.Process(buf, cfg))
}

// Process is a one-shot convenience that denoises samples with a temporary
// Processor.
func Process(samples []float64, cfg Config) ([]float64, error) {
	p, err := NewProcessor()
	if err != nil {
		return nil, err
	}

	return p.Process(samples, cfg), nil
}
