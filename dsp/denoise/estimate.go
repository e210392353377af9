package denoise

// NoiseProfile is the mean magnitude of each of the FrameSize transform bins
// over the leading frames of a signal.
type NoiseProfile []float64

// Mean returns the average bin magnitude.
func (p NoiseProfile) Mean() float64 {
	if len(p) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range p {
		sum += v
	}

	return sum / float64(len(p))
}

// EstimateNoise averages the windowed magnitude spectra of up to noiseFrames
// frames taken every HopSize samples from the start of samples.
//
// The mean is over the frames that actually fit. If not even one frame fits
// the profile is all zero.
func (p *Processor) EstimateNoise(samples []float64, noiseFrames int) NoiseProfile {
	profile := make(NoiseProfile, FrameSize)
	p.estimateInto(profile, samples, noiseFrames)

	return profile
}

// estimateInto fills profile and returns the number of frames averaged.
func (p *Processor) estimateInto(profile NoiseProfile, samples []float64, noiseFrames int) int {
	for i := range profile {
		profile[i] = 0
	}

	frames := 0
	for pos := 0; frames < noiseFrames && pos+FrameSize <= len(samples); pos += HopSize {
		p.analyze(samples[pos : pos+FrameSize])

		for i, m := range p.mags {
			profile[i] += m
		}

		frames++
	}

	if frames == 0 {
		return 0
	}

	scale := 1 / float64(frames)
	for i := range profile {
		profile[i] *= scale
	}

	return frames
}
