package spectrum

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeIntoMatchesCmplxAbs(t *testing.T) {
	bins := make([]complex128, 257)
	for i := range bins {
		bins[i] = complex(math.Cos(float64(i)), 0.3*float64(i%7)-1)
	}

	dst := make([]float64, len(bins))
	MagnitudeInto(dst, bins)

	for i, c := range bins {
		if d := math.Abs(dst[i] - cmplx.Abs(c)); d > 1e-12 {
			t.Fatalf("bin %d: got=%v want=%v", i, dst[i], cmplx.Abs(c))
		}
	}
}

func TestMagnitudeIntoKnownValues(t *testing.T) {
	dst := make([]float64, 3)
	MagnitudeInto(dst, []complex128{3 + 4i, -1 - 1i, 0})

	if math.Abs(dst[0]-5) > 1e-12 || math.Abs(dst[1]-math.Sqrt2) > 1e-12 || dst[2] != 0 {
		t.Fatalf("MagnitudeInto = %v, want [5 %v 0]", dst, math.Sqrt2)
	}
}

func TestMagnitudeIntoEmpty(t *testing.T) {
	MagnitudeInto(nil, nil)
}

func TestMagnitudeIntoLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()

	MagnitudeInto(make([]float64, 2), make([]complex128, 3))
}
