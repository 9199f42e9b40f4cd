package playback

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// SpeakerSink plays payloads through beep's speaker, which mixes concurrent
// sessions on the device.
type SpeakerSink struct {
	rate beep.SampleRate
}

// NewSpeakerSink initializes the speaker at sampleRate with the given buffer
// latency. Only one speaker may be open per process.
func NewSpeakerSink(sampleRate int, buffer time.Duration) (*SpeakerSink, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &SpeakerSink{rate: rate}, nil
}

func (s *SpeakerSink) Play(payload []byte) error {
	src, closer, err := decodeAt(payload, s.rate)
	if err != nil {
		return err
	}
	speaker.Play(beep.Seq(src, beep.Callback(closer)))
	return nil
}

// Silence drops every session that is still sounding.
func (s *SpeakerSink) Silence() {
	speaker.Clear()
}

func (s *SpeakerSink) Close() error {
	speaker.Close()
	return nil
}
