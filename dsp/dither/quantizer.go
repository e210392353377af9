package dither

import (
	"math"
	"math/rand/v2"
)

// Quantizer maps samples in [-1, +1] to signed integers of a given bit depth.
// Full scale maps to ±(2^(bits-1) - 1) so that positive and negative peaks are
// symmetric.
type Quantizer struct {
	bitDepth        int
	ditherType      DitherType
	ditherAmplitude float64
	limit           bool
	rng             *rand.Rand

	// derived from bitDepth
	scale   float64
	limitLo int
	limitHi int
}

// NewQuantizer creates a new Quantizer. The default configuration is:
// 16-bit, triangular dither, amplitude 1.0, limiting enabled.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	quant := &Quantizer{
		bitDepth:        cfg.bitDepth,
		ditherType:      cfg.ditherType,
		ditherAmplitude: cfg.ditherAmplitude,
		limit:           cfg.limit,
		rng:             cfg.rng,
	}

	if quant.rng == nil {
		quant.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	quant.scale = math.Exp2(float64(quant.bitDepth-1)) - 1
	quant.limitHi = int(quant.scale)
	quant.limitLo = -quant.limitHi - 1

	return quant, nil
}

// ProcessInteger quantizes one sample. NaN maps to 0.
func (q *Quantizer) ProcessInteger(input float64) int {
	if math.IsNaN(input) {
		return 0
	}

	if math.IsInf(input, 0) {
		input = math.Copysign(1, input)
	}

	result := int(math.Round(q.scale*input + q.noise()))

	if q.limit {
		result = max(q.limitLo, min(q.limitHi, result))
	}

	return result
}

// ProcessSample quantizes the input and returns it rescaled to [-1, +1].
func (q *Quantizer) ProcessSample(input float64) float64 {
	return float64(q.ProcessInteger(input)) / q.scale
}

// ProcessInPlace quantizes each sample in buf in-place.
func (q *Quantizer) ProcessInPlace(buf []float64) {
	for idx, val := range buf {
		buf[idx] = q.ProcessSample(val)
	}
}

// ProcessInto quantizes src into dst. Only min(len(dst), len(src)) samples
// are written.
func (q *Quantizer) ProcessInto(dst []int, src []float64) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = q.ProcessInteger(src[i])
	}
}

// noise returns one dither draw in LSB per the configured type.
func (q *Quantizer) noise() float64 {
	switch q.ditherType {
	case DitherRectangular:
		return q.ditherAmplitude * (q.rng.Float64() - 0.5)
	case DitherTriangular:
		return q.ditherAmplitude * (q.rng.Float64() - q.rng.Float64())
	case DitherGaussian:
		return q.ditherAmplitude * q.rng.NormFloat64()
	case DitherFastGaussian:
		return q.ditherAmplitude * q.fastGaussian()
	default:
		return 0
	}
}

// fastGaussian approximates a Gaussian distribution by summing uniform draws.
// The central limit theorem gives a reasonable approximation with 6 draws.
func (q *Quantizer) fastGaussian() float64 {
	var sum float64
	for range 6 {
		sum += q.rng.Float64()
	}

	return sum - 3.0 // mean-centered, approximate stddev ~0.7
}

// BitDepth returns the target bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// DitherType returns the dither noise type.
func (q *Quantizer) DitherType() DitherType { return q.ditherType }

// DitherAmplitude returns the dither noise amplitude.
func (q *Quantizer) DitherAmplitude() float64 { return q.ditherAmplitude }

// Limit returns whether output limiting is enabled.
func (q *Quantizer) Limit() bool { return q.limit }

// FullScale returns the integer that +1.0 maps to.
func (q *Quantizer) FullScale() int { return q.limitHi }
