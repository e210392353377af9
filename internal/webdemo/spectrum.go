package webdemo

import (
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

const silenceDB = -130

// NoiseProfileDB returns the noise profile from the last Process call in dB
// relative to a full-scale sinusoid, sampled at freqs. Frequencies outside
// [0, Nyquist] (including NaN and infinities) and empty bins read silenceDB.
func (e *Engine) NoiseProfileDB(freqs []float64) []float64 {
	profile := e.proc.Profile()
	scale := e.proc.AmplitudeScale()
	out := make([]float64, len(freqs))

	nyquist := e.sampleRate / 2
	binHz := e.sampleRate / denoise.FrameSize

	for i, f := range freqs {
		out[i] = silenceDB

		// The negated form also rejects NaN.
		if !(f >= 0 && f <= nyquist) {
			continue
		}

		bin := min(int(math.Round(f/binHz)), denoise.FrameSize/2)

		if db := core.LinearToDB(profile[bin] * scale); db > silenceDB {
			out[i] = db
		}
	}

	return out
}
