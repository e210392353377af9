package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/denoise"
	"github.com/cwbudde/algo-denoise/dsp/dither"
	"github.com/cwbudde/algo-denoise/internal/wavio"
	"github.com/cwbudde/algo-denoise/measure/noisefloor"
	"github.com/cwbudde/algo-denoise/stats/frequency"
	"github.com/cwbudde/algo-denoise/stats/level"
)

// ErrInputNotFound is returned when the input path does not exist.
var ErrInputNotFound = errors.New("input file not found")

func runDenoise(w io.Writer, inPath, outPath string, cfg Config) error {
	if _, err := os.Stat(inPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, inPath)
		}

		return err
	}

	sig, err := wavio.Read(inPath)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "runDenoise",
		"input":       inPath,
		"sample_rate": sig.SampleRate,
		"samples":     len(sig.Samples),
	}).Info("Loaded input")

	printSection(w, "INPUT")
	printKeyValue(w, "File", inPath)
	printKeyValue(w, "Sample rate", fmt.Sprintf("%d Hz", sig.SampleRate))
	printKeyValue(w, "Channels", fmt.Sprintf("%d", sig.Channels))
	printKeyValue(w, "Bit depth", fmt.Sprintf("%d", sig.BitDepth))
	printKeyValue(w, "Duration", fmt.Sprintf("%.2f s", sig.Duration().Seconds()))
	printKeyValue(w, "Total samples", fmt.Sprintf("%d", len(sig.Samples)))

	dcfg := cfg.Denoise()

	printSection(w, "SETTINGS")
	printKeyValue(w, "Preset", cfg.Preset)
	printKeyValue(w, "Noise frames", fmt.Sprintf("%d", dcfg.NoiseFrames))
	printKeyValue(w, "Spectral floor", fmt.Sprintf("%.3f", dcfg.SpectralFloor))
	printKeyValue(w, "Over-subtraction", fmt.Sprintf("%.2f", dcfg.OverSubtraction))
	printKeyValue(w, "Makeup gain", fmt.Sprintf("%.2f", dcfg.MakeupGain))
	printKeyValue(w, "Dither", cfg.Dither)

	frames := denoise.FrameCount(len(sig.Samples))
	if frames == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "runDenoise",
			"samples":  len(sig.Samples),
			"required": denoise.FrameSize,
		}).Warn("Input shorter than one frame, writing it unchanged")
	} else if noise := min(dcfg.NoiseFrames, frames); noise < dcfg.NoiseFrames {
		logrus.WithFields(logrus.Fields{
			"function":  "runDenoise",
			"requested": dcfg.NoiseFrames,
			"available": noise,
		}).Warn("Fewer noise frames available than requested")
	}

	proc, err := denoise.NewProcessor()
	if err != nil {
		return err
	}

	out := proc.Process(sig.Samples, dcfg)

	if stats := level.Calculate(out); stats.Clipped > 0 {
		logrus.WithFields(logrus.Fields{
			"function": "runDenoise",
			"clipped":  stats.Clipped,
			"peak":     stats.Peak,
		}).Warn("Output exceeds full scale and will be clipped")
	}

	ditherType, err := dither.ParseDitherType(cfg.Dither)
	if err != nil {
		return err
	}

	if err := wavio.Write(outPath, &wavio.Signal{Samples: out, SampleRate: sig.SampleRate},
		dither.WithDitherType(ditherType)); err != nil {
		return err
	}

	printSection(w, "RESULT")
	printKeyValue(w, "Frames processed", fmt.Sprintf("%d", frames))
	printKeyValue(w, "Output", outPath)

	if cfg.Report {
		printReport(w, sig.Samples, out, float64(sig.SampleRate), proc)
	}

	return nil
}

func printReport(w io.Writer, in, out []float64, sampleRate float64, proc *denoise.Processor) {
	before := level.Calculate(in)
	after := level.Calculate(out)

	printSection(w, "REPORT")
	printKeyValue(w, "RMS in / out", fmt.Sprintf("%.1f dB / %.1f dB", before.RMS_dB, after.RMS_dB))
	printKeyValue(w, "Peak in / out", fmt.Sprintf("%.1f dB / %.1f dB", before.Peak_dB, after.Peak_dB))
	printKeyValue(w, "Crest factor in / out", fmt.Sprintf("%.1f dB / %.1f dB", before.CrestFactor_dB, after.CrestFactor_dB))

	mcfg := noisefloor.Config{SampleRate: sampleRate, FFTSize: denoise.FrameSize}

	floorIn, errIn := noisefloor.Measure(in, mcfg)
	floorOut, errOut := noisefloor.Measure(out, mcfg)

	if errIn != nil || errOut != nil {
		printKeyValue(w, "Noise floor", "n/a (input shorter than one frame)")
		return
	}

	printKeyValue(w, "Noise floor in / out", fmt.Sprintf("%.1f dB / %.1f dB", floorIn.Median_dB, floorOut.Median_dB))
	printKeyValue(w, "Noise floor change", fmt.Sprintf("%+.1f dB", floorOut.Median_dB-floorIn.Median_dB))

	profile := proc.Profile()
	shape := frequency.Calculate(frequency.OneSided(profile), sampleRate)
	printKeyValue(w, "Noise profile level", fmt.Sprintf("%.1f dB", core.LinearToDB(profile.Mean()*proc.AmplitudeScale())))
	printKeyValue(w, "Noise profile peak", fmt.Sprintf("%.0f Hz", shape.PeakFreq))
	printKeyValue(w, "Noise profile centroid", fmt.Sprintf("%.0f Hz", shape.Centroid))
	printKeyValue(w, "Noise character", fmt.Sprintf("%s (flatness %.2f)", noiseCharacter(shape.Flatness), shape.Flatness))
}

// noiseCharacter names a flatness value.
func noiseCharacter(flatness float64) string {
	switch {
	case flatness >= 0.6:
		return "broadband"
	case flatness >= 0.2:
		return "coloured"
	default:
		return "tonal"
	}
}

func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%-24s %s\n", key+":", value)
}
