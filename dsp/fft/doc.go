// Package fft wraps a fixed-size complex FFT plan with reusable scratch
// buffers for frame-based analysis/synthesis of real signals.
//
// An [Engine] is sized once and then used for many frames without further
// heap allocation. Passing a frame or spectrum of any other length is a
// programming error and panics.
//
// Engines are not safe for concurrent use; create one per goroutine.
package fft
