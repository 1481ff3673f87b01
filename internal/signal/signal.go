// Package signal synthesizes deterministic PCM sample sequences for
// fixture audio.
//
// The core fixture is an alternating two-tone sine wave: the active
// frequency switches between a base and an alternate pitch every half
// second. Generation is a pure function of the parameters, so the same
// Params always yield the same samples.
package signal

import (
	"fmt"
	"math"
)

// FullScale is the largest positive amplitude of 16-bit signed PCM.
const FullScale = 32767

// Params describes one alternating two-tone fixture.
type Params struct {
	DurationSec  float64
	BaseFreqHz   float64
	AltFreqHz    float64
	SampleRateHz int
	Amplitude    float64
}

// Validate checks that the parameters describe a non-empty, in-range
// fixture. Non-positive duration and sample rate are rejected rather
// than producing an empty file.
func (p Params) Validate() error {
	if p.DurationSec <= 0 {
		return fmt.Errorf("invalid duration: %g seconds", p.DurationSec)
	}
	if p.SampleRateHz < 1 {
		return fmt.Errorf("invalid sample rate: %d Hz", p.SampleRateHz)
	}
	if p.BaseFreqHz <= 0 {
		return fmt.Errorf("invalid base frequency: %g Hz", p.BaseFreqHz)
	}
	if p.AltFreqHz <= 0 {
		return fmt.Errorf("invalid alternate frequency: %g Hz", p.AltFreqHz)
	}
	if p.Amplitude <= 0 || p.Amplitude > 1 {
		return fmt.Errorf("invalid amplitude %g: want 0 < amplitude <= 1", p.Amplitude)
	}
	return nil
}

// NumSamples returns the sequence length, floor(duration * rate).
func (p Params) NumSamples() int {
	return int(p.DurationSec * float64(p.SampleRateHz))
}

// FrequencyAt returns the active frequency for a sample index. The tone
// holds baseHz for the first sampleRateHz/2 samples (integer division),
// then alternates between altHz and baseHz every further half second.
func FrequencyAt(i, sampleRateHz int, baseHz, altHz float64) float64 {
	half := sampleRateHz / 2
	if half < 1 {
		return baseHz
	}
	if (i/half)%2 == 0 {
		return baseHz
	}
	return altHz
}

// Generate produces the quantized sample sequence for p. Samples are
// returned as plain ints so the container writer can enforce the 16-bit
// range contract itself; with a valid amplitude every value stays within
// [-FullScale, FullScale].
func Generate(p Params) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	samples := make([]int, p.NumSamples())
	for i := range samples {
		f := FrequencyAt(i, p.SampleRateHz, p.BaseFreqHz, p.AltFreqHz)
		t := float64(i) / float64(p.SampleRateHz)
		a := math.Sin(2*math.Pi*f*t) * p.Amplitude
		samples[i] = int(math.Round(a * FullScale))
	}

	return samples, nil
}
