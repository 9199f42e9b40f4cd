// Package history keeps the append-only log of played notes.
package history

import "fmt"

// Entry is one played note. Seq starts at 1 and follows press order.
type Entry struct {
	Note string
	Seq  int
}

func (e Entry) String() string {
	return fmt.Sprintf("Played: %s", e.Note)
}

// Log is an append-only note history. It is not safe for concurrent use.
type Log struct {
	entries []Entry
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append records a played note.
func (l *Log) Append(note string) {
	l.entries = append(l.entries, Entry{Note: note, Seq: len(l.entries) + 1})
}

// Len returns the number of recorded notes.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of every entry, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Tail returns up to n of the most recent entries, oldest first.
func (l *Log) Tail(n int) []Entry {
	if n <= 0 {
		return nil
	}
	start := max(len(l.entries)-n, 0)
	out := make([]Entry, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}
