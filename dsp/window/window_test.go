package window

import (
	"errors"
	"math"
	"testing"
)

func TestHannSymmetry(t *testing.T) {
	for _, n := range []int{9, 255, 2048} {
		w, err := Hann(n)
		if err != nil {
			t.Fatalf("Hann(%d) error = %v", n, err)
		}

		for i := range w {
			if !almostEqual(w[i], w[n-1-i], 1e-12) {
				t.Fatalf("n=%d: w[%d]=%v != w[%d]=%v", n, i, w[i], n-1-i, w[n-1-i])
			}
		}

		if !almostEqual(w[0], 0, 1e-12) || !almostEqual(w[n-1], 0, 1e-12) {
			t.Fatalf("n=%d: edges not zero: %v %v", n, w[0], w[n-1])
		}

		if mid := w[(n-1)/2]; !almostEqual(mid, 1, 1e-5) {
			t.Fatalf("n=%d: centre=%v, want ~1", n, mid)
		}
	}
}

func TestHannMatchesClosedForm(t *testing.T) {
	const n = 2048

	w, err := Hann(n)
	if err != nil {
		t.Fatal(err)
	}

	for i := range w {
		want := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		if !almostEqual(w[i], want, 1e-12) {
			t.Fatalf("index %d: got=%v want=%v", i, w[i], want)
		}
	}
}

func TestHannSingleCoefficient(t *testing.T) {
	w, err := Hann(1)
	if err != nil {
		t.Fatal(err)
	}

	if len(w) != 1 || w[0] != 1 {
		t.Fatalf("Hann(1) = %v, want [1]", w)
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	if err := ApplyCoefficientsInPlace(samples, coeffs); err != nil {
		t.Fatal(err)
	}

	if !almostEqual(samples[1], 1.0, 1e-12) {
		t.Fatalf("samples[1]=%v", samples[1])
	}
}

func TestCoherentGain(t *testing.T) {
	w, err := Hann(2048)
	if err != nil {
		t.Fatal(err)
	}

	cg, err := CoherentGain(w)
	if err != nil {
		t.Fatalf("CoherentGain error: %v", err)
	}

	// Symmetric Hann sums to (N-1)/2.
	if want := 2047.0 / 2 / 2048; !almostEqual(cg, want, 1e-12) {
		t.Fatalf("hann coherent gain=%v, want %v", cg, want)
	}
}

func TestGoldenVectors(t *testing.T) {
	hannExpected := []float64{
		0.0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095,
		0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0.0,
	}

	w, err := Hann(8)
	if err != nil {
		t.Fatal(err)
	}

	checkGolden(t, w, hannExpected, 1e-10)
}

func TestValidationAndEdgeCases(t *testing.T) {
	for _, n := range []int{0, -4} {
		if _, err := Hann(n); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("Hann(%d): expected ErrInvalidLength, got %v", n, err)
		}
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("expected empty coeffs error")
	}

	if _, err := CoherentGain([]float64{0, 0, 0}); err == nil {
		t.Fatal("expected zero coherent gain error")
	}

	if err := ApplyCoefficientsInPlace([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}

	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
