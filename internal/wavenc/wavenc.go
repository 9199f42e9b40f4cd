// Package wavenc turns sample buffers into standalone mono 16-bit PCM WAV files.
package wavenc

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

const (
	NumChannels   = 1
	Precision     = 2 // bytes per sample
	BitsPerSample = Precision * 8
	HeaderSize    = 44
)

// EncodingError wraps a failure to serialize a buffer.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("wav encode: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Format returns the beep format used for payloads at the given rate.
func Format(sampleRate int) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: NumChannels,
		Precision:   Precision,
	}
}

// Encode serializes samples as a complete WAV file. Samples outside [-1, 1]
// are clamped.
func Encode(samples []float64, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, &EncodingError{Err: errors.New("sample rate must be positive")}
	}

	out := &seekBuffer{buf: make([]byte, 0, HeaderSize+len(samples)*Precision)}
	if err := wav.Encode(out, sliceStreamer(samples), Format(sampleRate)); err != nil {
		return nil, &EncodingError{Err: err}
	}
	return out.buf, nil
}

// Decode reads a WAV payload back into mono samples and returns its sample rate.
// Multi-channel input is averaged down to one channel.
func Decode(payload []byte) ([]float64, int, error) {
	s, format, err := wav.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("wav decode: %w", err)
	}
	defer s.Close()

	samples := make([]float64, 0, s.Len())
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			samples = append(samples, (frame[0]+frame[1])/2)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, 0, fmt.Errorf("wav decode: %w", err)
	}
	return samples, int(format.SampleRate), nil
}

// sliceStreamer feeds a mono buffer to beep, duplicating it onto both channels.
func sliceStreamer(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copyFrames(out, samples[pos:])
		pos += n
		return n, true
	})
}

func copyFrames(out [][2]float64, samples []float64) int {
	n := min(len(out), len(samples))
	for i := 0; i < n; i++ {
		v := clamp(samples[i])
		out[i] = [2]float64{v, v}
	}
	return n
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
