// Package tui renders the keyboard in the terminal and turns key events into
// presses and configuration changes.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SirSobhan0/pianola/internal/history"
	"github.com/SirSobhan0/pianola/internal/notes"
	"github.com/SirSobhan0/pianola/internal/piano"
	"github.com/SirSobhan0/pianola/internal/playback"
)

const historyRows = 12

type TickMsg time.Time

// Model is the bubbletea model for the piano.
type Model struct {
	ctrl     *piano.Controller
	board    *Board
	hist     *history.Log
	silencer playback.Silencer

	dark   bool
	styles styles
	width  int
	height int
}

// New wires the UI to a controller. board must be the Notifier the controller
// was built with. silencer may be nil.
func New(ctrl *piano.Controller, board *Board, hist *history.Log, silencer playback.Silencer) Model {
	return Model{
		ctrl:     ctrl,
		board:    board,
		hist:     hist,
		silencer: silencer,
		dark:     true,
		styles:   newStyles(true),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.board.tick()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.ctrl.NextInstrument()
		case "up":
			m.ctrl.Apply(piano.ConfigChange{Kind: piano.VolumeChange, Value: m.ctrl.Config().Volume + 0.1})
		case "down":
			m.ctrl.Apply(piano.ConfigChange{Kind: piano.VolumeChange, Value: m.ctrl.Config().Volume - 0.1})
		case "right":
			m.ctrl.Apply(piano.ConfigChange{Kind: piano.DurationChange, Value: m.ctrl.Config().Duration + 0.1})
		case "left":
			m.ctrl.Apply(piano.ConfigChange{Kind: piano.DurationChange, Value: m.ctrl.Config().Duration - 0.1})
		case "ctrl+t":
			m.dark = !m.dark
			m.styles = newStyles(m.dark)
		case " ":
			if m.silencer != nil {
				m.silencer.Silence()
			}
		default:
			if note, ok := keyToNote[strings.ToLower(msg.String())]; ok {
				// Failures land on the board's status line.
				m.ctrl.Press(note)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	s := m.styles
	cfg := m.ctrl.Config()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		s.title.Render("🎹 PIANOLA"),
		"   ",
		s.inst.Render("Preset: "+cfg.Instrument.Name),
	)

	keyboard := lipgloss.JoinVertical(lipgloss.Left, m.viewSharps(), m.viewNaturals())
	play := lipgloss.JoinVertical(lipgloss.Left, m.viewSpectrum(), keyboard)
	side := lipgloss.JoinVertical(lipgloss.Left, m.viewSettings(cfg), "", m.viewHistory())
	body := lipgloss.JoinHorizontal(lipgloss.Top, play, s.side.Render(side))

	footer := s.help.Render("A-J: Play  •  ↑↓: Volume  •  ←→: Duration  •  TAB: Preset  •  SPACE: Silence  •  CTRL+T: Theme  •  ESC: Quit")
	if status := m.board.Status(); status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, s.err.Render("⚠ "+status), footer)
	}

	ui := lipgloss.JoinVertical(lipgloss.Center, header, body, footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.panel.Render(ui))
}

// viewSpectrum draws the symmetrical bar visualizer.
func (m Model) viewSpectrum() string {
	var lines []string
	for r := 3; r >= -3; r-- {
		var line strings.Builder
		for _, val := range m.board.spectrum {
			h := val * 3.0
			absR := math.Abs(float64(r))

			switch {
			case r == 0 && h > 0.1:
				line.WriteString("█")
			case r == 0:
				line.WriteString("━")
			case h >= absR:
				line.WriteString("█")
			case h >= absR-0.5 && r > 0:
				line.WriteString("▄")
			case h >= absR-0.5:
				line.WriteString("▀")
			default:
				line.WriteString(" ")
			}
		}
		lines = append(lines, m.styles.wave.Render(line.String()))
	}
	return m.styles.vis.Render(strings.Join(lines, "\n"))
}

// White keys render 9 columns wide including the border; a sharp is centred
// over the boundary after the white key it follows.
const (
	whiteKeyCols = 9
	sharpOffset  = 5
)

func (m Model) viewSharps() string {
	var parts []string
	cursor, whites := 0, 0
	for _, n := range notes.All() {
		if !n.Sharp() {
			whites++
			continue
		}
		start := (whites-1)*whiteKeyCols + sharpOffset
		if gap := start - cursor; gap > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
		}
		style := m.styles.blackKey
		if m.board.Lit(n.Name) {
			style = m.styles.activeBlackKey
		}
		key := style.Render(fmt.Sprintf("%s\n%s", n.Name, strings.ToUpper(noteToKey[n.Name])))
		parts = append(parts, key)
		cursor = start + lipgloss.Width(key)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewNaturals() string {
	var parts []string
	for _, n := range notes.All() {
		if n.Sharp() {
			continue
		}
		style := m.styles.whiteKey
		if m.board.Lit(n.Name) {
			style = m.styles.activeKey
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s\n%s", n.Name, strings.ToUpper(noteToKey[n.Name]))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewSettings(cfg piano.PlaybackConfig) string {
	s := m.styles
	vol := fmt.Sprintf("Volume   %s %.1f", m.bar(cfg.Volume, piano.MinVolume, piano.MaxVolume), cfg.Volume)
	dur := fmt.Sprintf("Duration %s %.1fs", m.bar(cfg.Duration, piano.MinDuration, piano.MaxDuration), cfg.Duration)
	theme := "Theme    dark"
	if !m.dark {
		theme = "Theme    light"
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.sideTitle.Render("Settings"), vol, dur, theme)
}

func (m Model) viewHistory() string {
	s := m.styles
	lines := []string{s.sideTitle.Render("History")}
	tail := m.hist.Tail(historyRows)
	if len(tail) == 0 {
		lines = append(lines, s.history.Render("(nothing played yet)"))
	}
	for _, e := range tail {
		lines = append(lines, s.history.Render(e.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

const barWidth = 8

func (m Model) bar(v, lo, hi float64) string {
	filled := int(math.Round((v - lo) / (hi - lo) * barWidth))
	filled = max(0, min(barWidth, filled))
	return m.styles.bar.Render(strings.Repeat("█", filled)) +
		m.styles.barEmpty.Render(strings.Repeat("░", barWidth-filled))
}
