package tui

import (
	"math"
	"time"

	"github.com/SirSobhan0/pianola/internal/notes"
	"github.com/SirSobhan0/pianola/internal/piano"
)

const (
	numBars  = 42
	holdTime = 150 * time.Millisecond
	// Failures stay on the status line this long.
	statusTime = 4 * time.Second
)

// Board is the UI side of the keyboard: it receives key states and failures
// from the controller and holds what the view renders. A key stays lit for
// holdTime after it goes idle so short presses remain visible.
type Board struct {
	active    map[string]bool
	heldUntil map[string]time.Time
	spectrum  []float64

	status      string
	statusUntil time.Time

	now func() time.Time
}

// NewBoard returns a board with every key idle.
func NewBoard() *Board {
	return &Board{
		active:    make(map[string]bool),
		heldUntil: make(map[string]time.Time),
		spectrum:  make([]float64, numBars),
		now:       time.Now,
	}
}

func (b *Board) KeyStateChanged(note string, s piano.KeyState) {
	switch s {
	case piano.Active:
		b.active[note] = true
		b.heldUntil[note] = b.now().Add(holdTime)
		b.excite(note)
	case piano.Idle:
		delete(b.active, note)
	}
}

func (b *Board) PressFailed(note string, err error) {
	b.status = err.Error()
	b.statusUntil = b.now().Add(statusTime)
}

// Lit reports whether a key should be drawn highlighted.
func (b *Board) Lit(note string) bool {
	if b.active[note] {
		return true
	}
	until, ok := b.heldUntil[note]
	return ok && b.now().Before(until)
}

// Status returns the current failure message, if any.
func (b *Board) Status() string {
	if b.status == "" || !b.now().Before(b.statusUntil) {
		return ""
	}
	return b.status
}

// tick decays the visualizer and expires holds.
func (b *Board) tick() {
	for i := range b.spectrum {
		b.spectrum[i] *= 0.82
	}
	now := b.now()
	for k, until := range b.heldUntil {
		if !now.Before(until) {
			delete(b.heldUntil, k)
		}
	}
	if b.status != "" && !now.Before(b.statusUntil) {
		b.status = ""
	}
}

// excite lights the fundamental of a note and a few harmonics.
func (b *Board) excite(note string) {
	freq, err := notes.FrequencyOf(note)
	if err != nil {
		return
	}
	b.spectrum[freqToBucket(freq)] = 1.0
	b.spectrum[freqToBucket(freq*2.0)] += 0.5
	b.spectrum[freqToBucket(freq*3.0)] += 0.25
	b.spectrum[freqToBucket(freq*4.0)] += 0.1
	for i := range b.spectrum {
		b.spectrum[i] = math.Min(b.spectrum[i], 1.0)
	}
}

// freqToBucket maps a frequency logarithmically to a visualizer bar.
func freqToBucket(freq float64) int {
	minF, maxF := 200.0, 2000.0
	if freq < minF {
		freq = minF
	}
	if freq > maxF {
		freq = maxF
	}
	ratio := math.Log(freq/minF) / math.Log(maxF/minF)
	bucket := int(ratio * float64(numBars))
	if bucket >= numBars {
		bucket = numBars - 1
	}
	return bucket
}
