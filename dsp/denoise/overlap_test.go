package denoise

import (
	"testing"

	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func TestOverlapAdderNormalizesByEnergy(t *testing.T) {
	var o overlapAdder
	o.reset(3 * HopSize)

	frame := testutil.DC(0.5, FrameSize)
	win := testutil.DC(0.25, FrameSize)

	o.add(0, frame, win)
	o.add(HopSize, frame, win)

	out := make([]float64, 3*HopSize)
	o.normalize(out, 2)

	// 0.5/0.25 = 2 where one frame covers, 1.0/0.5 = 2 where two overlap.
	for i, v := range out {
		if v != 4 {
			t.Fatalf("out[%d] = %v, want 4", i, v)
		}
	}
}

func TestOverlapAdderUncoveredStaysZero(t *testing.T) {
	var o overlapAdder
	o.reset(FrameSize + 100)

	o.add(0, testutil.Ones(FrameSize), testutil.Ones(FrameSize))

	out := testutil.DC(7, FrameSize+100)
	o.normalize(out, 1.5)

	for i := range FrameSize {
		if out[i] != 1.5 {
			t.Fatalf("out[%d] = %v, want 1.5", i, out[i])
		}
	}

	testutil.RequireAllZero(t, out[FrameSize:])
}

func TestOverlapAdderResetClears(t *testing.T) {
	var o overlapAdder
	o.reset(FrameSize)
	o.add(0, testutil.Ones(FrameSize), testutil.Ones(FrameSize))

	o.reset(FrameSize / 2)
	if len(o.out) != FrameSize/2+FrameSize {
		t.Fatalf("len = %d, want %d", len(o.out), FrameSize/2+FrameSize)
	}

	testutil.RequireAllZero(t, o.out)
	testutil.RequireAllZero(t, o.energy)
}
