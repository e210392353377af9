package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cwbudde/algo-denoise/internal/preset"
)

var titleCaser = cases.Title(language.English)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			for _, p := range preset.All() {
				name := titleCaser.String(p.Name)
				if p.Name == preset.Default {
					name += " (default)"
				}

				printSection(w, name)
				printKeyValue(w, "Noise frames", fmt.Sprintf("%d", p.Config.NoiseFrames))
				printKeyValue(w, "Spectral floor", fmt.Sprintf("%.3f", p.Config.SpectralFloor))
				printKeyValue(w, "Over-subtraction", fmt.Sprintf("%.2f", p.Config.OverSubtraction))
				printKeyValue(w, "Makeup gain", fmt.Sprintf("%.2f", p.Config.MakeupGain))
				printKeyValue(w, "Description", p.Description)
			}

			return nil
		},
	}
}
