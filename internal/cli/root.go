// Package cli implements the denoise command line tool.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
	"github.com/cwbudde/algo-denoise/internal/preset"
)

const (
	appName   = "denoise"
	envPrefix = "DENOISE"
)

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	var configFile string

	defaults := denoise.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   appName + " [flags] <input.wav> <output.wav>",
		Short: "Reduce stationary background noise in a mono WAV file",
		Long: `denoise estimates the noise spectrum from the first frames of a recording
and removes it from the whole file by spectral subtraction.

The start of the input should contain only background noise. Settings come
from a preset and may be overridden by flags, DENOISE_* environment variables
or a denoise.yaml config file.

Examples:
  denoise noisy.wav clean.wav
  denoise --preset heavy noisy.wav clean.wav
  denoise --spectral-floor 0.2 --makeup-gain 1.0 --report noisy.wav clean.wav`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, configFile); err != nil {
				return err
			}

			if err := bindFlags(cmd, v); err != nil {
				return err
			}

			return setupLogging(v.GetString("log_level"), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}

			return runDenoise(cmd.OutOrStdout(), args[0], args[1], cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "",
		"config file (default is $HOME/.config/denoise/denoise.yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("preset", preset.Default,
		"base settings: "+strings.Join(preset.Names(), ", "))
	flags.Int("noise-frames", defaults.NoiseFrames,
		"number of leading frames used to estimate the noise profile")
	flags.Float64("spectral-floor", defaults.SpectralFloor,
		"minimum fraction of each bin kept, 0 to 1")
	flags.Float64("over-subtraction", defaults.OverSubtraction,
		"noise profile multiplier")
	flags.Float64("makeup-gain", defaults.MakeupGain,
		"linear gain applied to the output")
	flags.Bool("report", false, "print level and noise floor before and after")
	flags.String("dither", "none",
		"dither applied when writing 16-bit output: none, rectangular, triangular, gaussian, fastgaussian")

	rootCmd.AddCommand(newPresetsCommand(), newConfigCommand(v), newGenerateCommand())

	return rootCmd
}

// initConfig reads the config file and environment into v.
func initConfig(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}

		v.AddConfigPath("/etc/" + appName)
		v.AddConfigPath("./configs")
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

// bindFlags copies config and environment values into flags the user did
// not pass, then binds every flag to its snake_case viper key.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if key == "config" {
			return
		}

		if !f.Changed && v.IsSet(key) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(key))); err != nil {
				lastErr = fmt.Errorf("%s: %w", key, err)
			}
		}

		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

// setDefaults registers defaults for keys that are not tuning parameters.
// Tuning parameters have no viper default so that IsSet only reports values
// the user supplied.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("preset", preset.Default)
	v.SetDefault("report", false)
	v.SetDefault("dither", "none")
}
