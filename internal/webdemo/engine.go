package webdemo

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/denoise"
	"github.com/cwbudde/algo-denoise/internal/preset"
)

const (
	maxNoiseFrames     = 200
	maxOverSubtraction = 10
	minMakeupGain      = 0.01
	maxMakeupGain      = 10
)

// ConfigState is the JSON form of the current settings.
type ConfigState struct {
	NoiseFrames     int     `json:"noise_frames"`
	SpectralFloor   float64 `json:"spectral_floor"`
	OverSubtraction float64 `json:"over_subtraction"`
	MakeupGain      float64 `json:"makeup_gain"`
}

// Engine holds a denoise processor and the settings the page has chosen.
type Engine struct {
	proc *denoise.Processor
	cfg  denoise.Config

	sampleRate float64
	in         []float64
}

// NewEngine creates an engine with the default settings.
func NewEngine(sampleRate float64) (*Engine, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}

	proc, err := denoise.NewProcessor()
	if err != nil {
		return nil, err
	}

	return &Engine{
		proc:       proc,
		cfg:        denoise.DefaultConfig(),
		sampleRate: sampleRate,
	}, nil
}

// Config returns the current settings.
func (e *Engine) Config() denoise.Config {
	return e.cfg
}

// SetConfig replaces every setting at once. Values are clamped to the ranges
// the sliders expose and NaN leaves a field unchanged.
func (e *Engine) SetConfig(noiseFrames int, spectralFloor, overSubtraction, makeupGain float64) {
	e.SetNoiseFrames(noiseFrames)
	e.SetSpectralFloor(spectralFloor)
	e.SetOverSubtraction(overSubtraction)
	e.SetMakeupGain(makeupGain)
}

// SetNoiseFrames sets how many leading frames form the noise profile.
func (e *Engine) SetNoiseFrames(n int) {
	e.cfg.NoiseFrames = min(max(n, 1), maxNoiseFrames)
}

// SetSpectralFloor sets the minimum kept fraction per bin.
func (e *Engine) SetSpectralFloor(v float64) {
	e.cfg.SpectralFloor = sanitize(v, e.cfg.SpectralFloor, 0, 1)
}

// SetOverSubtraction sets the noise profile multiplier.
func (e *Engine) SetOverSubtraction(v float64) {
	e.cfg.OverSubtraction = sanitize(v, e.cfg.OverSubtraction, 0, maxOverSubtraction)
}

// SetMakeupGain sets the linear output gain.
func (e *Engine) SetMakeupGain(v float64) {
	e.cfg.MakeupGain = sanitize(v, e.cfg.MakeupGain, minMakeupGain, maxMakeupGain)
}

// ApplyPreset switches to a named preset. Unknown names leave the settings
// untouched.
func (e *Engine) ApplyPreset(name string) error {
	cfg, err := preset.Lookup(name)
	if err != nil {
		return err
	}

	e.cfg = cfg

	return nil
}

// ConfigJSON returns the current settings as a JSON object.
func (e *Engine) ConfigJSON() (string, error) {
	data, err := json.Marshal(ConfigState{
		NoiseFrames:     e.cfg.NoiseFrames,
		SpectralFloor:   e.cfg.SpectralFloor,
		OverSubtraction: e.cfg.OverSubtraction,
		MakeupGain:      e.cfg.MakeupGain,
	})
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	return string(data), nil
}

// Process denoises a block of browser samples. Output samples are clamped to
// [-1, 1] since they go straight to an AudioBuffer.
func (e *Engine) Process(samples []float32) []float32 {
	e.in = core.EnsureLen(e.in, len(samples))
	for i, v := range samples {
		e.in[i] = float64(v)
	}

	res := e.proc.Process(e.in, e.cfg)

	out := make([]float32, len(res))
	for i, v := range res {
		out[i] = float32(core.Clamp(v, -1, 1))
	}

	return out
}

func sanitize(v, prev, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return prev
	}

	return core.Clamp(v, lo, hi)
}
