// Package preset holds the named denoiser settings shared by the command
// line tool and the browser binding.
package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// ErrUnknownPreset is returned by Lookup for names not in the table.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Preset is a named configuration.
type Preset struct {
	Name        string
	Description string
	Config      denoise.Config
}

// table is ordered from gentlest to most aggressive.
var table = []Preset{
	{
		Name:        "light",
		Description: "gentle reduction that keeps most of the original character",
		Config:      denoise.Config{NoiseFrames: 10, SpectralFloor: 0.25, OverSubtraction: 1.0, MakeupGain: 1.2},
	},
	{
		Name:        "medium",
		Description: "balanced reduction, the default",
		Config:      denoise.Config{NoiseFrames: 10, SpectralFloor: 0.1, OverSubtraction: 2.0, MakeupGain: 1.5},
	},
	{
		Name:        "heavy",
		Description: "strong reduction for noisy recordings",
		Config:      denoise.Config{NoiseFrames: 10, SpectralFloor: 0.05, OverSubtraction: 3.0, MakeupGain: 1.8},
	},
	{
		Name:        "extreme",
		Description: "maximum reduction, may leave musical noise",
		Config:      denoise.Config{NoiseFrames: 10, SpectralFloor: 0.02, OverSubtraction: 4.0, MakeupGain: 2.0},
	},
}

// Default is the name of the preset matching denoise.DefaultConfig.
const Default = "medium"

// Lookup returns the configuration for name, ignoring case and surrounding
// whitespace.
func Lookup(name string) (denoise.Config, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range table {
		if p.Name == key {
			return p.Config, nil
		}
	}

	return denoise.Config{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
}

// Names lists preset names from gentlest to most aggressive.
func Names() []string {
	names := make([]string, len(table))
	for i, p := range table {
		names[i] = p.Name
	}

	return names
}

// All returns a copy of the preset table.
func All() []Preset {
	out := make([]Preset, len(table))
	copy(out, table)

	return out
}
