// Package piano turns key presses into played notes.
//
// A press moves its key through idle -> active -> idle. The key is reported
// active before any audio work starts and is always reported idle again,
// whether the note played or not. Played notes are then appended to the
// history.
package piano

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/SirSobhan0/pianola/internal/notes"
	"github.com/SirSobhan0/pianola/internal/playback"
	"github.com/SirSobhan0/pianola/internal/synth"
	"github.com/SirSobhan0/pianola/internal/wavenc"
)

// KeyState is the visual state of a key.
type KeyState int

const (
	Idle KeyState = iota
	Active
)

func (s KeyState) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Notifier receives visual state changes and failures for the UI.
type Notifier interface {
	KeyStateChanged(note string, state KeyState)
	PressFailed(note string, err error)
}

// History receives the name of every note that played.
type History interface {
	Append(note string)
}

// Controller owns the playback configuration and runs each press through
// synthesis, encoding and dispatch. It is driven from a single event loop
// and is not safe for concurrent use.
type Controller struct {
	cfg        PlaybackConfig
	sampleRate int

	dispatcher *playback.Dispatcher
	ui         Notifier
	history    History
	log        *slog.Logger

	encode func(samples []float64, sampleRate int) ([]byte, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for press failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithSampleRate overrides synth.DefaultSampleRate.
func WithSampleRate(rate int) Option {
	return func(c *Controller) { c.sampleRate = rate }
}

// WithConfig sets the initial playback configuration. Values are clamped.
func WithConfig(cfg PlaybackConfig) Option {
	return func(c *Controller) {
		c.SetVolume(cfg.Volume)
		c.SetDuration(cfg.Duration)
		if cfg.Instrument.Osc != nil {
			c.cfg.Instrument = cfg.Instrument
		}
	}
}

// New creates a controller. ui and history may be nil.
func New(d *playback.Dispatcher, ui Notifier, history History, opts ...Option) *Controller {
	c := &Controller{
		cfg:        DefaultConfig(),
		sampleRate: synth.DefaultSampleRate,
		dispatcher: d,
		ui:         ui,
		history:    history,
		log:        slog.Default(),
		encode:     wavenc.Encode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the current playback configuration.
func (c *Controller) Config() PlaybackConfig {
	return c.cfg
}

// SampleRate returns the rate notes are rendered at.
func (c *Controller) SampleRate() int {
	return c.sampleRate
}

// SetVolume clamps v to [MinVolume, MaxVolume] and returns the stored value.
func (c *Controller) SetVolume(v float64) float64 {
	c.cfg.Volume = clampRange(v, MinVolume, MaxVolume)
	return c.cfg.Volume
}

// SetDuration clamps d to [MinDuration, MaxDuration] seconds and returns the
// stored value.
func (c *Controller) SetDuration(d float64) float64 {
	c.cfg.Duration = clampRange(d, MinDuration, MaxDuration)
	return c.cfg.Duration
}

// Apply handles a configuration-change event from the UI. Values snap to the
// nearest 0.1 step before clamping.
func (c *Controller) Apply(ch ConfigChange) error {
	switch ch.Kind {
	case VolumeChange:
		c.SetVolume(snap(ch.Value))
	case DurationChange:
		c.SetDuration(snap(ch.Value))
	default:
		return fmt.Errorf("unknown config change %v", ch.Kind)
	}
	c.log.Debug("config changed", "kind", ch.Kind, "volume", c.cfg.Volume, "duration", c.cfg.Duration)
	return nil
}

// SetInstrument selects a preset by name.
func (c *Controller) SetInstrument(name string) error {
	inst, ok := synth.InstrumentByName(name)
	if !ok {
		return fmt.Errorf("unknown instrument %q", name)
	}
	c.cfg.Instrument = inst
	return nil
}

// NextInstrument cycles to the next preset and returns it.
func (c *Controller) NextInstrument() synth.Instrument {
	next := 0
	for i, inst := range synth.Instruments {
		if inst.Name == c.cfg.Instrument.Name {
			next = (i + 1) % len(synth.Instruments)
			break
		}
	}
	c.cfg.Instrument = synth.Instruments[next]
	return c.cfg.Instrument
}

// Press plays the named note with the configuration current at the time of
// the call. Failures are logged and reported to the Notifier; the returned
// error is informational and the controller keeps accepting presses.
func (c *Controller) Press(name string) (err error) {
	cfg := c.cfg

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("play %s: %w", name, &panicError{value: r})
		}
		c.setKeyState(name, Idle)

		if err != nil {
			c.log.Error("press failed", "note", name, "error", err)
			if c.ui != nil {
				c.ui.PressFailed(name, err)
			}
			return
		}
		if c.history != nil {
			c.history.Append(name)
		}
	}()
	c.setKeyState(name, Active)

	return c.play(name, cfg)
}

func (c *Controller) play(name string, cfg PlaybackConfig) error {
	freq, err := notes.FrequencyOf(name)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	samples, err := synth.SynthesizeWith(cfg.Instrument.Osc, freq, cfg.Duration, cfg.Volume, c.sampleRate)
	if err != nil {
		return fmt.Errorf("play %s: %w", name, err)
	}
	payload, err := c.encode(samples, c.sampleRate)
	if err != nil {
		var enc *wavenc.EncodingError
		if !errors.As(err, &enc) {
			err = &wavenc.EncodingError{Err: err}
		}
		return fmt.Errorf("play %s: %w", name, err)
	}
	if err := c.dispatcher.Dispatch(payload); err != nil {
		return fmt.Errorf("play %s: %w", name, err)
	}

	c.log.Debug("note played", "note", name, "hz", freq, "volume", cfg.Volume,
		"duration", cfg.Duration, "instrument", cfg.Instrument.Name, "bytes", len(payload))
	return nil
}

func (c *Controller) setKeyState(name string, s KeyState) {
	if c.ui != nil {
		c.ui.KeyStateChanged(name, s)
	}
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}
