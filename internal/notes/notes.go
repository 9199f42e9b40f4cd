// Package notes holds the fixed one-octave chromatic note table.
package notes

import (
	"fmt"
	"math"
	"strings"
)

// Note is a named pitch. Frequency is in Hz.
type Note struct {
	Name      string
	Frequency float64
}

// Sharp reports whether the note sits on a black key.
func (n Note) Sharp() bool {
	return strings.Contains(n.Name, "#")
}

// UnknownNoteError is returned when a name is not in the table.
type UnknownNoteError struct {
	Name string
}

func (e *UnknownNoteError) Error() string {
	return fmt.Sprintf("unknown note %q", e.Name)
}

// Scale degrees counted from Do; La (degree 9) is A4.
var names = [...]string{"Do", "Do#", "Re", "Re#", "Mi", "Fa", "Fa#", "Sol", "Sol#", "La", "La#", "Si"}

var (
	table  []Note
	byName map[string]Note
)

func init() {
	getFreq := func(n int) float64 {
		return 440.0 * math.Pow(2.0, float64(n-9)/12.0)
	}

	table = make([]Note, len(names))
	byName = make(map[string]Note, len(names))
	for i, name := range names {
		n := Note{Name: name, Frequency: getFreq(i)}
		table[i] = n
		byName[name] = n
	}
}

// All returns the table in chromatic order. The slice is a copy.
func All() []Note {
	out := make([]Note, len(table))
	copy(out, table)
	return out
}

// Lookup returns the note with the given name.
func Lookup(name string) (Note, error) {
	n, ok := byName[name]
	if !ok {
		return Note{}, &UnknownNoteError{Name: name}
	}
	return n, nil
}

// FrequencyOf returns the frequency of the named note in Hz.
func FrequencyOf(name string) (float64, error) {
	n, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return n.Frequency, nil
}
