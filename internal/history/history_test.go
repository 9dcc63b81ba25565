package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendPreservesOrder(t *testing.T) {
	s := NewStore()
	s.Append(Entry{Sentence: "a", Result: "1", Timestamp: "t1"})
	s.Append(Entry{Sentence: "b", Result: "2", Timestamp: "t2"})
	s.Append(Entry{Sentence: "a", Result: "1", Timestamp: "t3"})

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []string{
		"t1: a - 1",
		"t2: b - 2",
		"t3: a - 1",
	}, s.Render())
}

func TestStore_EntriesIsACopy(t *testing.T) {
	s := NewStore()
	s.Append(Entry{Sentence: "a"})

	got := s.Entries()
	got[0].Sentence = "changed"

	assert.Equal(t, "a", s.Entries()[0].Sentence)
}

func TestStore_Empty(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Render())
	assert.Empty(t, s.Entries())
}

func TestNewEntry(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	e := NewEntry("أنا بخير", "تحليل ناجح", at)

	assert.Equal(t, "2024-03-09 14:05:07", e.Timestamp)
	assert.Equal(t, "2024-03-09 14:05:07: أنا بخير - تحليل ناجح", e.Line())
}
