package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
	"github.com/cwbudde/algo-denoise/dsp/dither"
	"github.com/cwbudde/algo-denoise/internal/preset"
)

// Config is the effective command line configuration.
type Config struct {
	LogLevel        string  `mapstructure:"log_level"        yaml:"log_level"`
	Preset          string  `mapstructure:"preset"           yaml:"preset"`
	NoiseFrames     int     `mapstructure:"noise_frames"     yaml:"noise_frames"`
	SpectralFloor   float64 `mapstructure:"spectral_floor"   yaml:"spectral_floor"`
	OverSubtraction float64 `mapstructure:"over_subtraction" yaml:"over_subtraction"`
	MakeupGain      float64 `mapstructure:"makeup_gain"      yaml:"makeup_gain"`
	Report          bool    `mapstructure:"report"           yaml:"report"`
	Dither          string  `mapstructure:"dither"           yaml:"dither"`
}

// Denoise returns the processing parameters.
func (c Config) Denoise() denoise.Config {
	return denoise.Config{
		NoiseFrames:     c.NoiseFrames,
		SpectralFloor:   c.SpectralFloor,
		OverSubtraction: c.OverSubtraction,
		MakeupGain:      c.MakeupGain,
	}
}

// loadConfig unmarshals v and resolves the tuning parameters: the preset
// supplies every value and any parameter set by flag, environment or config
// file replaces the preset's.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	base, err := preset.Lookup(cfg.Preset)
	if err != nil {
		return Config{}, err
	}

	changed := cmd.Flags().Changed

	if !changed("noise-frames") {
		cfg.NoiseFrames = base.NoiseFrames
	}

	if !changed("spectral-floor") {
		cfg.SpectralFloor = base.SpectralFloor
	}

	if !changed("over-subtraction") {
		cfg.OverSubtraction = base.OverSubtraction
	}

	if !changed("makeup-gain") {
		cfg.MakeupGain = base.MakeupGain
	}

	if err := cfg.Denoise().Validate(); err != nil {
		return Config{}, err
	}

	if _, err := dither.ParseDitherType(cfg.Dither); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
