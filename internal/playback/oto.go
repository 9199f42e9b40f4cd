package playback

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
)

const otoPollInterval = 20 * time.Millisecond

// OtoSink opens one oto player per payload and closes it once it drains.
type OtoSink struct {
	ctx  *oto.Context
	rate beep.SampleRate
	log  *slog.Logger
}

// NewOtoSink opens a mono 16-bit oto context. Only one context may exist per
// process.
func NewOtoSink(sampleRate int, buffer time.Duration, logger *slog.Logger) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   buffer,
	})
	if err != nil {
		return nil, fmt.Errorf("oto init: %w", err)
	}
	<-ready

	if logger == nil {
		logger = slog.Default()
	}
	return &OtoSink{ctx: ctx, rate: beep.SampleRate(sampleRate), log: logger}, nil
}

func (o *OtoSink) Play(payload []byte) error {
	if err := o.ctx.Err(); err != nil {
		return fmt.Errorf("oto context: %w", err)
	}
	src, closer, err := decodeAt(payload, o.rate)
	if err != nil {
		return err
	}

	player := o.ctx.NewPlayer(newPCMReader(src))
	player.Play()
	go func() {
		defer closer()
		for player.IsPlaying() {
			time.Sleep(otoPollInterval)
		}
		if err := player.Close(); err != nil {
			o.log.Warn("oto player close", "error", err)
		}
	}()
	return nil
}
