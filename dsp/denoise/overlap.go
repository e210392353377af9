package denoise

import "github.com/cwbudde/algo-denoise/dsp/core"

// overlapAdder sums overlapping frames and the analysis window energy that
// covers each output position.
type overlapAdder struct {
	out    []float64
	energy []float64
}

// reset sizes both accumulators for a signal of n samples (plus one frame of
// tail room) and clears them, reusing earlier capacity.
func (o *overlapAdder) reset(n int) {
	size := n + FrameSize
	o.out = core.EnsureLen(o.out, size)
	o.energy = core.EnsureLen(o.energy, size)
	core.Zero(o.out)
	core.Zero(o.energy)
}

// add accumulates frame and window at absolute offset pos.
func (o *overlapAdder) add(pos int, frame, window []float64) {
	out := o.out[pos : pos+len(frame)]
	energy := o.energy[pos : pos+len(window)]

	for i, v := range frame {
		out[i] += v
	}

	for i, w := range window {
		energy[i] += w
	}
}

// normalize writes out/energy*gain into dst. Positions no frame covered stay
// zero.
func (o *overlapAdder) normalize(dst []float64, gain float64) {
	for i := range dst {
		if e := o.energy[i]; e > 0 {
			dst[i] = o.out[i] / e * gain
		} else {
			dst[i] = 0
		}
	}
}
