package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

func ExampleClamp() {
	fmt.Println(core.Clamp(1.7, 0.1, 1), core.Clamp(-0.4, 0.1, 1))
	// Output:
	// 1 0.1
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)
	fmt.Println(len(buf), cap(buf))

	core.Zero(buf)
	fmt.Println(buf)
	// Output:
	// 4 4
	// [0 0 0 0]
}
