// Package synth renders sampled tones.
//
// Sample i of a tone sits at t = i/sampleRate, so a buffer covers the half-open
// interval [0, duration) and holds round(sampleRate*duration) samples.
package synth

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSampleRate is used when the caller has no preference.
const DefaultSampleRate = 44100

// ErrInvalidSampleRate is returned for a sample rate that is not positive.
var ErrInvalidSampleRate = errors.New("synth: sample rate must be positive")

// InvalidFrequencyError is returned for a frequency that is not positive.
type InvalidFrequencyError struct {
	Frequency float64
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("synth: invalid frequency %v Hz", e.Frequency)
}

// Length returns the number of samples a tone of the given duration occupies.
func Length(duration float64, sampleRate int) int {
	if duration <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(math.Round(float64(sampleRate) * duration))
}

// Synthesize renders a sine tone. Volume is clamped to [0, 1].
func Synthesize(frequency, duration, volume float64, sampleRate int) ([]float64, error) {
	return SynthesizeWith(Sine, frequency, duration, volume, sampleRate)
}

// SynthesizeWith renders a tone using osc. A non-positive duration yields an
// empty buffer.
func SynthesizeWith(osc Oscillator, frequency, duration, volume float64, sampleRate int) ([]float64, error) {
	if !(frequency > 0) || math.IsInf(frequency, 0) {
		return nil, &InvalidFrequencyError{Frequency: frequency}
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if osc == nil {
		osc = Sine
	}
	volume = clamp(volume, 0, 1)

	n := Length(duration, sampleRate)
	samples := make([]float64, n)
	if volume == 0 {
		return samples, nil
	}

	step := twoPi * frequency / float64(sampleRate)
	for i := range samples {
		samples[i] = clamp(osc(step*float64(i)), -1, 1) * volume
	}
	return samples, nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
