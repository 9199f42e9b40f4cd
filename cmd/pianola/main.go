package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SirSobhan0/pianola/internal/config"
	"github.com/SirSobhan0/pianola/internal/history"
	"github.com/SirSobhan0/pianola/internal/logging"
	"github.com/SirSobhan0/pianola/internal/piano"
	"github.com/SirSobhan0/pianola/internal/playback"
	"github.com/SirSobhan0/pianola/internal/synth"
	"github.com/SirSobhan0/pianola/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	sink, cleanup, err := openSink(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	initial := piano.DefaultConfig()
	initial.Volume = cfg.Volume
	initial.Duration = cfg.Duration
	if inst, ok := synth.InstrumentByName(cfg.Instrument); ok {
		initial.Instrument = inst
	} else {
		logger.Warn("unknown instrument, using default", "instrument", cfg.Instrument)
	}

	board := tui.NewBoard()
	hist := history.New()
	ctrl := piano.New(playback.NewDispatcher(sink), board, hist,
		piano.WithLogger(logger),
		piano.WithSampleRate(cfg.SampleRate),
		piano.WithConfig(initial),
	)

	silencer, _ := sink.(playback.Silencer)
	logger.Info("pianola starting", "sink", cfg.Sink, "sample_rate", cfg.SampleRate)

	p := tea.NewProgram(tui.New(ctrl, board, hist, silencer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	logger.Info("pianola stopped", "notes_played", hist.Len())
	return nil
}

func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, cfg.LogLevel), func() { f.Close() }, nil
}

// openSink builds the configured playback sink and returns a cleanup func.
func openSink(cfg config.Config, logger *slog.Logger) (playback.Sink, func(), error) {
	switch cfg.Sink {
	case config.SinkSpeaker:
		s, err := playback.NewSpeakerSink(cfg.SampleRate, cfg.SpeakerBuffer)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { closeQuietly(s, logger) }, nil

	case config.SinkOto:
		s, err := playback.NewOtoSink(cfg.SampleRate, cfg.SpeakerBuffer, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil

	case config.SinkWeb:
		s := playback.NewWebSink(logger)
		server := &http.Server{Addr: cfg.WebAddr, Handler: s.Handler()}
		go func() {
			logger.Info("web sink listening", "addr", cfg.WebAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("web sink server", "error", err)
			}
		}()
		return s, func() {
			closeQuietly(s, logger)
			server.Close()
		}, nil

	case config.SinkNone:
		return playback.Discard, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown sink %q (want speaker, oto, web or none)", cfg.Sink)
}

func closeQuietly(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("close sink", "error", err)
	}
}
