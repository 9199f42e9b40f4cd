package playback

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

const resampleQuality = 4

// decodeAt opens a WAV payload as a beep stream at the given output rate.
// The returned close func releases the decoder.
func decodeAt(payload []byte, rate beep.SampleRate) (beep.Streamer, func(), error) {
	stream, format, err := wav.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("decode payload: %w", err)
	}
	closer := func() { stream.Close() }

	var src beep.Streamer = stream
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, stream)
	}
	return src, closer, nil
}

// pcmReader renders a beep stream as mono signed 16-bit little-endian PCM.
type pcmReader struct {
	src    beep.Streamer
	frames [][2]float64
	done   bool
}

func newPCMReader(src beep.Streamer) *pcmReader {
	return &pcmReader{src: src, frames: make([][2]float64, 1024)}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	want := len(p) / 2
	if want == 0 {
		return 0, nil
	}
	if want > len(r.frames) {
		want = len(r.frames)
	}

	n, ok := r.src.Stream(r.frames[:want])
	for i, f := range r.frames[:n] {
		v := (f[0] + f[1]) / 2
		v = math.Max(-1, math.Min(1, v))
		binary.LittleEndian.PutUint16(p[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	if !ok {
		r.done = true
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n * 2, nil
}
