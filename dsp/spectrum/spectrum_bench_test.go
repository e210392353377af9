package spectrum

import "testing"

func BenchmarkMagnitudeInto(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"2K", 2048},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := make([]complex128, testCase.size)
			for i := range inData {
				inData[i] = complex(float64(i)/10.0, float64(testCase.size-i)/10.0)
			}
			dst := make([]float64, testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				MagnitudeInto(dst, inData)
			}
		})
	}
}

func BenchmarkScaleMagnitudes(b *testing.B) {
	const size = 2048

	bins := make([]complex128, size)
	gains := make([]float64, size)
	for i := range bins {
		bins[i] = complex(float64(i%13)-6, float64(i%5)-2)
		gains[i] = 0.5
	}

	b.ResetTimer()

	for range b.N {
		ScaleMagnitudes(bins, gains)
	}
}
