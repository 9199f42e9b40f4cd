package piano

import (
	"fmt"
	"math"

	"github.com/SirSobhan0/pianola/internal/synth"
)

// Ranges of the two user controls. Both move in steps of 0.1.
const (
	MinVolume       = 0.1
	MaxVolume       = 1.0
	MinDuration     = 0.1 // seconds
	MaxDuration     = 2.0
	DefaultVolume   = 0.5
	DefaultDuration = 0.5

	stepsPerUnit = 10
)

// PlaybackConfig is read at the moment a key is pressed.
type PlaybackConfig struct {
	Volume     float64
	Duration   float64 // seconds
	Instrument synth.Instrument
}

// DefaultConfig returns volume 0.5, duration 0.5s and the first instrument.
func DefaultConfig() PlaybackConfig {
	return PlaybackConfig{
		Volume:     DefaultVolume,
		Duration:   DefaultDuration,
		Instrument: synth.Instruments[0],
	}
}

// ConfigKind names the control a ConfigChange targets.
type ConfigKind int

const (
	VolumeChange ConfigKind = iota
	DurationChange
)

func (k ConfigKind) String() string {
	switch k {
	case VolumeChange:
		return "volume"
	case DurationChange:
		return "duration"
	}
	return fmt.Sprintf("ConfigKind(%d)", int(k))
}

// ConfigChange is a configuration event delivered by the UI.
type ConfigChange struct {
	Kind  ConfigKind
	Value float64
}

func clampRange(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// snap rounds v to the nearest control step.
func snap(v float64) float64 {
	return math.Round(v*stepsPerUnit) / stepsPerUnit
}
