package denoise

import (
	"github.com/cwbudde/algo-denoise/dsp/spectrum"
	"github.com/cwbudde/algo-denoise/dsp/window"
)

// Gain returns the attenuation for a bin of magnitude m against noise
// magnitude n.
//
// For m > 0 the gain is (m - OverSubtraction*n) / m limited to
// [SpectralFloor, 1]; a silent bin gets exactly SpectralFloor. The floor is
// applied before the upper bound, so a floor above 1 yields 1.
func Gain(m, n float64, cfg Config) float64 {
	if m > 0 {
		g := (m - cfg.OverSubtraction*n) / m
		return min(max(g, cfg.SpectralFloor), 1)
	}

	return cfg.SpectralFloor
}

// analyze windows a copy of frame, transforms it and leaves the spectrum in
// the engine buffer and its magnitudes in p.mags.
func (p *Processor) analyze(frame []float64) []complex128 {
	copy(p.frame, frame)

	if err := window.ApplyCoefficientsInPlace(p.frame, p.window); err != nil {
		panic("denoise: " + err.Error())
	}

	bins := p.engine.Forward(p.frame)
	spectrum.MagnitudeInto(p.mags, bins)

	return bins
}

// subtractFrame returns the denoised time-domain frame. The result aliases
// engine memory and is only valid until the next transform.
func (p *Processor) subtractFrame(frame []float64, profile NoiseProfile, cfg Config) []float64 {
	bins := p.analyze(frame)

	for i, m := range p.mags {
		p.gains[i] = Gain(m, profile[i], cfg)
	}

	spectrum.ScaleMagnitudes(bins, p.gains)

	return p.engine.Inverse(bins)
}
