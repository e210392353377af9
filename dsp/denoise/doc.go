// Package denoise reduces stationary background noise in a mono signal by
// STFT spectral subtraction.
//
// A [Processor] estimates an averaged magnitude spectrum (the noise profile)
// from the first frames of the input, then walks the signal in Hann-windowed
// frames of [FrameSize] samples advancing by [HopSize]. Each frame's bins are
// attenuated by a gain derived from the profile and the [Config], clamped to
// [Config.SpectralFloor, 1], with phase left untouched. Frames are stitched
// back together by overlap-add and normalized by the accumulated window
// energy before the makeup gain is applied.
//
// The package has no I/O and does not clamp its output; converting back to a
// fixed-point sample format is the caller's job.
//
// A Processor is not safe for concurrent use. Create one per goroutine.
package denoise
