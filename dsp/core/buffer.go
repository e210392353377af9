package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// Reused contents are not cleared; pair with [Zero] when a clean buffer is needed.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
