package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Sink names accepted by PIANOLA_SINK.
const (
	SinkSpeaker = "speaker"
	SinkOto     = "oto"
	SinkWeb     = "web"
	SinkNone    = "none"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Audio
	SampleRate    int
	Sink          string        // speaker, oto, web or none
	SpeakerBuffer time.Duration // output latency for speaker and oto sinks
	WebAddr       string        // listen address for the web sink

	// Initial playback settings
	Volume     float64 // 0.1-1.0
	Duration   float64 // seconds, 0.1-2.0
	Instrument string

	// Logging
	LogFile  string // empty discards logs; the terminal belongs to the UI
	LogLevel string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		SampleRate:    envInt("PIANOLA_SAMPLE_RATE", 44100),
		Sink:          strings.ToLower(envStr("PIANOLA_SINK", SinkSpeaker)),
		SpeakerBuffer: time.Duration(envInt("PIANOLA_SPEAKER_BUFFER", 50)) * time.Millisecond,
		WebAddr:       envStr("PIANOLA_WEB_ADDR", ":8080"),

		Volume:     envFloat("PIANOLA_VOLUME", 0.5),
		Duration:   envFloat("PIANOLA_DURATION", 0.5),
		Instrument: envStr("PIANOLA_INSTRUMENT", "Pure Sine"),

		LogFile:  envStr("PIANOLA_LOG_FILE", ""),
		LogLevel: envStr("PIANOLA_LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
