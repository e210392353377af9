// Package wavio reads and writes mono PCM WAV files as float64 samples.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-denoise/dsp/dither"
)

// OutputBitDepth is the sample width Write produces.
const OutputBitDepth = 16

const (
	pcmFormat        = 1
	extensibleFormat = 0xFFFE
)

var (
	// ErrNotWAV is returned when the stream is not a RIFF/WAVE file.
	ErrNotWAV = errors.New("wavio: not a valid WAV file")
	// ErrUnsupportedChannels is returned for anything but mono input.
	ErrUnsupportedChannels = errors.New("wavio: only mono input is supported")
	// ErrUnsupportedFormat is returned for non-integer PCM or odd bit depths.
	ErrUnsupportedFormat = errors.New("wavio: unsupported sample format")
)

// Signal is a decoded mono signal with samples in [-1, 1].
type Signal struct {
	Samples    []float64
	SampleRate int
	// BitDepth of the source file. Ignored by Write.
	BitDepth int
	// Channels of the source file; always 1 after a successful Read.
	Channels int
}

// Duration returns the playing time of the signal.
func (s *Signal) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(s.Samples)) / float64(s.SampleRate) * float64(time.Second))
}

// Read opens and decodes the WAV file at path.
func Read(path string) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	sig, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Read",
		"path":        path,
		"sample_rate": sig.SampleRate,
		"bit_depth":   sig.BitDepth,
		"samples":     len(sig.Samples),
	}).Debug("Decoded WAV file")

	return sig, nil
}

// Decode reads a mono integer PCM WAV stream. Plain PCM is accepted at 16,
// 24 and 32 bits, WAVE_FORMAT_EXTENSIBLE at 16 and 24 bits. Samples are
// scaled by the largest positive value of the source bit depth.
func Decode(r io.ReadSeeker) (*Signal, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrNotWAV
	}

	if d.NumChans != 1 {
		return nil, fmt.Errorf("%w: file has %d channels", ErrUnsupportedChannels, d.NumChans)
	}

	depth := int(d.BitDepth)
	switch depth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, depth)
	}

	// The decoder does not expose the extensible sub-format, and 32-bit
	// extensible files are almost always float.
	switch {
	case d.WavAudioFormat == pcmFormat:
	case d.WavAudioFormat == extensibleFormat && depth < 32:
	default:
		return nil, fmt.Errorf("%w: audio format %#x at %d bits", ErrUnsupportedFormat, d.WavAudioFormat, depth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: read PCM data: %w", err)
	}

	scale := fullScale(depth)
	samples := make([]float64, len(buf.Data))

	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}

	return &Signal{
		Samples:    samples,
		SampleRate: int(d.SampleRate),
		BitDepth:   depth,
		Channels:   1,
	}, nil
}

// Write encodes sig as a 16-bit mono WAV file at path, replacing any
// existing file. Options tune the quantizer; without any, samples are
// rounded without dither.
func Write(path string, sig *Signal, opts ...dither.Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	if err := Encode(f, sig, opts...); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Write",
		"path":     path,
		"samples":  len(sig.Samples),
	}).Debug("Wrote WAV file")

	return nil
}

// Encode writes sig to w as 16-bit mono PCM. Samples are limited to full
// scale and NaN becomes silence.
func Encode(w io.WriteSeeker, sig *Signal, opts ...dither.Option) error {
	if sig.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, sig.SampleRate)
	}

	quantOpts := append([]dither.Option{dither.WithDitherType(dither.DitherNone)}, opts...)
	quantOpts = append(quantOpts, dither.WithBitDepth(OutputBitDepth))

	quant, err := dither.NewQuantizer(quantOpts...)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	data := make([]int, len(sig.Samples))
	quant.ProcessInto(data, sig.Samples)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sig.SampleRate,
		},
		Data:           data,
		SourceBitDepth: OutputBitDepth,
	}

	enc := wav.NewEncoder(w, sig.SampleRate, OutputBitDepth, 1, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: write PCM data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finish WAV header: %w", err)
	}

	return nil
}

func fullScale(bitDepth int) float64 {
	return float64(int64(1)<<(bitDepth-1) - 1)
}
