package noisefloor_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/measure/noisefloor"
)

func ExampleMeasure() {
	res, err := noisefloor.Measure(make([]float64, 4096), noisefloor.Config{SampleRate: 44100})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Frames, res.Bins, res.Mean)
	// Output:
	// 2 1024 0
}
