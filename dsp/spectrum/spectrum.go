package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// MagnitudeInto writes |X[k]| into dst without allocating in steady state.
//
// dst and in must have the same length. Scratch buffers for the SIMD
// kernel are pooled internally.
func MagnitudeInto(dst []float64, in []complex128) {
	if len(dst) != len(in) {
		panic(fmt.Sprintf("spectrum: magnitude dst length %d does not match %d bins", len(dst), len(in)))
	}
	if len(in) == 0 {
		return
	}

	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}
