package dither

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewQuantizerValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"bit depth too small", []Option{WithBitDepth(1)}},
		{"bit depth too large", []Option{WithBitDepth(33)}},
		{"bad dither type", []Option{WithDitherType(DitherType(99))}},
		{"negative amplitude", []Option{WithDitherAmplitude(-1)}},
		{"NaN amplitude", []Option{WithDitherAmplitude(math.NaN())}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewQuantizer(tt.opts...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewQuantizerDefaults(t *testing.T) {
	quant, err := NewQuantizer()
	if err != nil {
		t.Fatal(err)
	}

	if quant.BitDepth() != 16 {
		t.Errorf("BitDepth() = %d, want 16", quant.BitDepth())
	}

	if quant.DitherType() != DitherTriangular {
		t.Errorf("DitherType() = %v, want Triangular", quant.DitherType())
	}

	if quant.DitherAmplitude() != 1.0 {
		t.Errorf("DitherAmplitude() = %v, want 1.0", quant.DitherAmplitude())
	}

	if !quant.Limit() {
		t.Error("Limit() should be true by default")
	}

	if quant.FullScale() != 32767 {
		t.Errorf("FullScale() = %d, want 32767", quant.FullScale())
	}
}

func TestQuantizerNilOption(t *testing.T) {
	quant, err := NewQuantizer(nil, WithBitDepth(24), nil)
	if err != nil {
		t.Fatal(err)
	}

	if quant.FullScale() != 8388607 {
		t.Errorf("FullScale() = %d, want 8388607", quant.FullScale())
	}
}

func TestQuantizerNoDitherRounds(t *testing.T) {
	quant, err := NewQuantizer(WithDitherType(DitherNone))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{0.5, 16384},
		{-0.5, -16384},
		{2, 32767},
		{-2, -32768},
		{math.Inf(1), 32767},
		{math.Inf(-1), -32767},
		{math.NaN(), 0},
		{100.4 / 32767, 100},
	}
	for _, tt := range tests {
		if got := quant.ProcessInteger(tt.in); got != tt.want {
			t.Errorf("ProcessInteger(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestQuantizerNoLimit(t *testing.T) {
	quant, err := NewQuantizer(WithDitherType(DitherNone), WithLimit(false))
	if err != nil {
		t.Fatal(err)
	}

	if got := quant.ProcessInteger(2); got != 65534 {
		t.Errorf("ProcessInteger(2) = %d, want 65534", got)
	}
}

func TestQuantizerRoundTripWithoutDither(t *testing.T) {
	quant, err := NewQuantizer(WithDitherType(DitherNone))
	if err != nil {
		t.Fatal(err)
	}

	for k := -32767; k <= 32767; k += 97 {
		in := float64(k) / 32767
		if got := quant.ProcessSample(in); got != in {
			t.Fatalf("ProcessSample(%v) = %v", in, got)
		}
	}
}

func TestDitherErrorBounded(t *testing.T) {
	tests := []struct {
		dt    DitherType
		bound float64
	}{
		{DitherRectangular, 1},
		{DitherTriangular, 1.5},
		{DitherFastGaussian, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {
			quant, err := NewQuantizer(WithDitherType(tt.dt), WithRNG(rand.New(rand.NewPCG(1, 2))))
			if err != nil {
				t.Fatal(err)
			}

			for i := range 10000 {
				in := math.Sin(float64(i)*0.01) * 0.5
				diff := math.Abs(float64(quant.ProcessInteger(in)) - in*32767)
				if diff > tt.bound {
					t.Fatalf("sample %d: error %v LSB exceeds %v", i, diff, tt.bound)
				}
			}
		})
	}
}

func TestTriangularDitherIsUnbiased(t *testing.T) {
	quant, err := NewQuantizer(WithRNG(rand.New(rand.NewPCG(7, 7))))
	if err != nil {
		t.Fatal(err)
	}

	// A constant a quarter LSB above zero averages to 0.25 only with dither.
	const n = 200000

	in := 0.25 / 32767
	sum := 0

	for range n {
		sum += quant.ProcessInteger(in)
	}

	if mean := float64(sum) / n; math.Abs(mean-0.25) > 0.02 {
		t.Errorf("mean = %v, want about 0.25", mean)
	}
}

func TestDitherDeterministicWithRNG(t *testing.T) {
	a, _ := NewQuantizer(WithRNG(rand.New(rand.NewPCG(3, 4))))
	b, _ := NewQuantizer(WithRNG(rand.New(rand.NewPCG(3, 4))))

	for i := range 1000 {
		in := float64(i) / 1000
		if a.ProcessInteger(in) != b.ProcessInteger(in) {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestProcessInto(t *testing.T) {
	quant, err := NewQuantizer(WithDitherType(DitherNone))
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]int, 2)
	quant.ProcessInto(dst, []float64{1, -1, 0.5})

	if dst[0] != 32767 || dst[1] != -32767 {
		t.Errorf("ProcessInto = %v", dst)
	}

	buf := []float64{0.5, 3}
	quant.ProcessInPlace(buf)

	if buf[0] != 16384.0/32767 || buf[1] != 1 {
		t.Errorf("ProcessInPlace = %v", buf)
	}
}
