package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestPeakAbs(t *testing.T) {
	if got := PeakAbs([]float64{0.2, -0.7, 0.5}); got != 0.7 {
		t.Fatalf("PeakAbs = %v, want 0.7", got)
	}

	if got := PeakAbs(nil); got != 0 {
		t.Fatalf("PeakAbs(nil) = %v, want 0", got)
	}
}

func TestRequireAllZeroPassesOnSilence(t *testing.T) {
	RequireAllZero(t, make([]float64, 16))
}
