package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SirSobhan0/pianola/internal/history"
	"github.com/SirSobhan0/pianola/internal/logging"
	"github.com/SirSobhan0/pianola/internal/piano"
	"github.com/SirSobhan0/pianola/internal/playback"
)

type fakeSilencer struct{ calls int }

func (f *fakeSilencer) Silence() { f.calls++ }

type fixture struct {
	model    Model
	board    *Board
	hist     *history.Log
	plays    int
	silencer *fakeSilencer
	sinkErr  error
}

func newFixture() *fixture {
	f := &fixture{board: NewBoard(), hist: history.New(), silencer: &fakeSilencer{}}
	sink := playback.SinkFunc(func([]byte) error {
		if f.sinkErr != nil {
			return f.sinkErr
		}
		f.plays++
		return nil
	})
	ctrl := piano.New(playback.NewDispatcher(sink), f.board, f.hist,
		piano.WithLogger(logging.Discard()), piano.WithSampleRate(8000))
	f.model = New(ctrl, f.board, f.hist, f.silencer)
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNoteKeysPlay(t *testing.T) {
	f := newFixture()
	f.send(runes("a"))
	f.send(runes("h"))
	f.send(runes("j"))

	if f.plays != 3 {
		t.Errorf("plays = %d, want 3", f.plays)
	}
	var got []string
	for _, e := range f.hist.Entries() {
		got = append(got, e.Note)
	}
	if strings.Join(got, ",") != "Do,La,Si" {
		t.Errorf("history = %v, want [Do La Si]", got)
	}
	if !f.board.Lit("Do") {
		t.Error("Do should still be lit right after the press")
	}
}

func TestUppercaseNoteKey(t *testing.T) {
	f := newFixture()
	f.send(runes("W"))
	if e := f.hist.Entries(); len(e) != 1 || e[0].Note != "Do#" {
		t.Errorf("history = %+v, want [Do#]", e)
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	f := newFixture()
	f.send(runes("z"))
	if f.plays != 0 || f.hist.Len() != 0 {
		t.Error("unbound key produced a note")
	}
}

func TestConfigKeys(t *testing.T) {
	f := newFixture()
	ctrl := f.model.ctrl

	f.send(tea.KeyMsg{Type: tea.KeyUp})
	f.send(tea.KeyMsg{Type: tea.KeyUp})
	if got := ctrl.Config().Volume; got != 0.7 {
		t.Errorf("volume = %v, want 0.7", got)
	}
	f.send(tea.KeyMsg{Type: tea.KeyDown})
	if got := ctrl.Config().Volume; got != 0.6 {
		t.Errorf("volume = %v, want 0.6", got)
	}
	f.send(tea.KeyMsg{Type: tea.KeyRight})
	if got := ctrl.Config().Duration; got != 0.6 {
		t.Errorf("duration = %v, want 0.6", got)
	}
	for i := 0; i < 10; i++ {
		f.send(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if got := ctrl.Config().Duration; got != piano.MinDuration {
		t.Errorf("duration = %v, want %v", got, piano.MinDuration)
	}

	f.send(tea.KeyMsg{Type: tea.KeyTab})
	if got := ctrl.Config().Instrument.Name; got != "Electric Piano" {
		t.Errorf("instrument = %q, want Electric Piano", got)
	}
}

func TestThemeAndSilence(t *testing.T) {
	f := newFixture()
	f.send(tea.KeyMsg{Type: tea.KeyCtrlT})
	if f.model.dark {
		t.Error("ctrl+t should switch to the light theme")
	}
	f.send(tea.KeyMsg{Type: tea.KeySpace})
	if f.silencer.calls != 1 {
		t.Errorf("silence calls = %d, want 1", f.silencer.calls)
	}
}

func TestQuit(t *testing.T) {
	f := newFixture()
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEscape} {
		cmd := f.send(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("%v: no command returned", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v did not quit", k)
		}
	}
}

func TestFailureShownInView(t *testing.T) {
	f := newFixture()
	f.sinkErr = errors.New("sink gone")
	f.send(tea.WindowSizeMsg{Width: 160, Height: 50})
	f.send(runes("a"))

	if f.hist.Len() != 0 {
		t.Error("failed press should not reach history")
	}
	if !strings.Contains(f.model.View(), "sink gone") {
		t.Error("failure missing from view")
	}
}

func TestView(t *testing.T) {
	f := newFixture()
	if got := f.model.View(); got != "Initializing..." {
		t.Errorf("View before size = %q", got)
	}

	f.send(tea.WindowSizeMsg{Width: 160, Height: 50})
	f.send(runes("s"))
	out := f.model.View()
	for _, want := range []string{"PIANOLA", "Pure Sine", "Played: Re", "Volume", "Duration", "Sol#"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTickReturnsCommand(t *testing.T) {
	f := newFixture()
	if cmd := f.send(TickMsg(time.Now())); cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}
