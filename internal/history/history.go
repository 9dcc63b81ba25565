package history

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout used for entry timestamps (local time).
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one recorded successful analysis.
type Entry struct {
	Sentence  string
	Result    string
	Timestamp string
}

// NewEntry stamps an entry with t in local time.
func NewEntry(sentence, result string, t time.Time) Entry {
	return Entry{
		Sentence:  sentence,
		Result:    result,
		Timestamp: t.Local().Format(TimestampLayout),
	}
}

// Line renders the entry as a single history line.
func (e Entry) Line() string {
	return fmt.Sprintf("%s: %s - %s", e.Timestamp, e.Sentence, e.Result)
}

// Store is an append-only, insertion-ordered log of entries. It lives for
// one run of the program and is never persisted.
type Store struct {
	entries []Entry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Append adds an entry. Duplicates are kept.
func (s *Store) Append(e Entry) {
	s.entries = append(s.entries, e)
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the log.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Render projects the whole log into display lines, oldest first.
func (s *Store) Render() []string {
	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		lines = append(lines, e.Line())
	}
	return lines
}
