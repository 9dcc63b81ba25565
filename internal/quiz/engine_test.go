package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/irab/internal/audio"
	"github.com/abhisek/irab/internal/gateway"
)

func abc() *gateway.Question {
	return &gateway.Question{
		Instruction: "اختر",
		Question:    "سؤال",
		Options:     []string{"A", "B", "C"},
		Correct:     "B",
	}
}

// openWith opens the engine and delivers q.
func openWith(t *testing.T, e *Engine, q *gateway.Question) {
	t.Helper()
	ticket, err := e.Open()
	require.NoError(t, err)
	require.True(t, e.Deliver(ticket, q))
}

func TestEngine_InitiallyClosed(t *testing.T) {
	e := NewEngine(Options{})

	assert.Equal(t, StateClosed, e.State())
	assert.Equal(t, 0, e.Progress())
	assert.Equal(t, Visibility{Start: true}, e.Visibility())
	assert.Nil(t, e.Question())
}

func TestEngine_OpenShowsControlsImmediately(t *testing.T) {
	e := NewEngine(Options{})

	_, err := e.Open()
	require.NoError(t, err)

	assert.Equal(t, StateAwaitingAnswer, e.State())
	assert.True(t, e.Loading())
	assert.NotEmpty(t, e.SessionID())
	assert.Equal(t, Visibility{Close: true, Container: true}, e.Visibility())
	assert.Equal(t, 0, e.Progress(), "progress counts delivered questions")
}

func TestEngine_OpenTwiceIsInvalid(t *testing.T) {
	e := NewEngine(Options{})
	_, err := e.Open()
	require.NoError(t, err)

	_, err = e.Open()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEngine_DeliverRendersQuestion(t *testing.T) {
	e := NewEngine(Options{})
	openWith(t, e, abc())

	assert.Equal(t, StateAwaitingAnswer, e.State())
	assert.False(t, e.Loading())
	assert.Equal(t, []string{"A", "B", "C"}, e.Question().Options)
	assert.Equal(t, 1, e.Progress())
	assert.Equal(t, "1%", e.ProgressWidth())
	assert.Empty(t, e.Feedback())
	assert.False(t, e.Visibility().Next)
}

func TestEngine_SelectCorrect(t *testing.T) {
	e := NewEngine(Options{})
	openWith(t, e, abc())

	out, err := e.Select("B")
	require.NoError(t, err)

	assert.True(t, out.Correct)
	assert.Equal(t, 1, out.Index)
	assert.Equal(t, FeedbackCorrect, out.Feedback)
	assert.Equal(t, audio.CueCorrect, out.Cue)
	assert.Equal(t, MarkCorrect, e.Mark(1))
	assert.Equal(t, StateAnswered, e.State())
	assert.Equal(t, FeedbackCorrect, e.Feedback())
	assert.True(t, e.Visibility().Next)
}

func TestEngine_SelectEveryWrongOption(t *testing.T) {
	for _, choice := range []string{"A", "C"} {
		t.Run(choice, func(t *testing.T) {
			e := NewEngine(Options{})
			openWith(t, e, abc())

			out, err := e.Select(choice)
			require.NoError(t, err)

			assert.False(t, out.Correct)
			assert.Equal(t, FeedbackWrong, out.Feedback)
			assert.Equal(t, audio.CueWrong, out.Cue)
			assert.Equal(t, MarkWrong, e.Mark(out.Index))
			assert.Equal(t, StateAnswered, e.State())
		})
	}
}

func TestEngine_ReanswerAllowedByDefault(t *testing.T) {
	e := NewEngine(Options{})
	openWith(t, e, abc())

	out, err := e.Select("C")
	require.NoError(t, err)
	assert.Equal(t, FeedbackWrong, out.Feedback)
	assert.Equal(t, MarkWrong, e.Mark(2))

	out, err = e.Select("B")
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, audio.CueCorrect, out.Cue)
	assert.Equal(t, MarkCorrect, e.Mark(1))
	assert.Equal(t, MarkWrong, e.Mark(2), "earlier marks stay")
	assert.Equal(t, FeedbackCorrect, e.Feedback())
	assert.Equal(t, StateAnswered, e.State())
}

func TestEngine_LockAfterAnswer(t *testing.T) {
	e := NewEngine(Options{LockAfterAnswer: true})
	openWith(t, e, abc())

	_, err := e.Select("C")
	require.NoError(t, err)

	_, err = e.Select("B")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.Equal(t, MarkNone, e.Mark(1))
	assert.Equal(t, FeedbackWrong, e.Feedback())
}

func TestEngine_SelectExactEquality(t *testing.T) {
	e := NewEngine(Options{})
	openWith(t, e, &gateway.Question{Options: []string{"مبتدأ", "مبتدأ "}, Correct: "مبتدأ"})

	out, err := e.Select("مبتدأ ")
	require.NoError(t, err)
	assert.False(t, out.Correct, "trailing space is a different option")
}

func TestEngine_SelectInvalid(t *testing.T) {
	e := NewEngine(Options{})

	_, err := e.Select("A")
	assert.ErrorIs(t, err, ErrInvalidTransition, "closed")

	_, err = e.Open()
	require.NoError(t, err)
	_, err = e.Select("A")
	assert.ErrorIs(t, err, ErrNoQuestion, "still loading")

	e.Close()
	openWith(t, e, abc())
	_, err = e.Select("Z")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, StateAwaitingAnswer, e.State())
}

func TestEngine_SelectIndex(t *testing.T) {
	e := NewEngine(Options{})
	openWith(t, e, abc())

	out, err := e.SelectIndex(1)
	require.NoError(t, err)
	assert.True(t, out.Correct)

	_, err = e.SelectIndex(3)
	assert.ErrorIs(t, err, ErrUnknownOption)
	_, err = e.SelectIndex(-1)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestEngine_NextOnlyAfterAnswer(t *testing.T) {
	e := NewEngine(Options{})

	_, err := e.Next()
	assert.ErrorIs(t, err, ErrInvalidTransition, "closed")

	openWith(t, e, abc())
	_, err = e.Next()
	assert.ErrorIs(t, err, ErrInvalidTransition, "awaiting answer")

	_, err = e.Select("A")
	require.NoError(t, err)

	ticket, err := e.Next()
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingAnswer, e.State())
	assert.True(t, e.Loading())

	_, err = e.Next()
	assert.ErrorIs(t, err, ErrInvalidTransition, "next already pending")

	q2 := &gateway.Question{Options: []string{"X", "Y"}, Correct: "X"}
	require.True(t, e.Deliver(ticket, q2))
	assert.Same(t, q2, e.Question())
	assert.Equal(t, 2, e.Progress())
	assert.Empty(t, e.Feedback(), "feedback cleared")
	assert.False(t, e.Visibility().Next, "next hidden")
	assert.Equal(t, MarkNone, e.Mark(0), "marks cleared")
}

func TestEngine_OldQuestionNotSelectableWhileLoading(t *testing.T) {
	e := NewEngine(Options{})
	openWith(t, e, abc())
	_, _ = e.Select("A")
	_, err := e.Next()
	require.NoError(t, err)

	_, err = e.Select("B")
	assert.ErrorIs(t, err, ErrNoQuestion)
}

func TestEngine_ProgressCountsLoads(t *testing.T) {
	e := NewEngine(Options{})
	openWith(t, e, abc())

	for i := 2; i <= 120; i++ {
		_, err := e.Select("B")
		require.NoError(t, err)
		ticket, err := e.Next()
		require.NoError(t, err)
		require.True(t, e.Deliver(ticket, abc()))
		require.Equal(t, i, e.Progress())
	}
	assert.Equal(t, "120%", e.ProgressWidth(), "width is not capped")
}

func TestEngine_CloseResets(t *testing.T) {
	for _, tc := range []struct {
		name  string
		setup func(e *Engine)
	}{
		{"loading", func(e *Engine) { _, _ = e.Open() }},
		{"awaiting", func(e *Engine) {
			tk, _ := e.Open()
			e.Deliver(tk, abc())
		}},
		{"answered", func(e *Engine) {
			tk, _ := e.Open()
			e.Deliver(tk, abc())
			_, _ = e.Select("A")
		}},
		{"already closed", func(*Engine) {}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine(Options{})
			tc.setup(e)

			e.Close()

			assert.Equal(t, StateClosed, e.State())
			assert.Equal(t, 0, e.Progress())
			assert.Equal(t, "0%", e.ProgressWidth())
			assert.Nil(t, e.Question())
			assert.Empty(t, e.Feedback())
			assert.Equal(t, Visibility{Start: true}, e.Visibility())
		})
	}
}

func TestEngine_ReopenAfterClose(t *testing.T) {
	e := NewEngine(Options{})
	openWith(t, e, abc())
	first := e.SessionID()
	e.Close()

	openWith(t, e, abc())
	assert.Equal(t, 1, e.Progress())
	assert.NotEqual(t, first, e.SessionID())
}

func TestEngine_StaleDeliveryDiscarded(t *testing.T) {
	e := NewEngine(Options{})
	first, err := e.Open()
	require.NoError(t, err)

	// Close and reopen while the first fetch is still in flight.
	e.Close()
	second, err := e.Open()
	require.NoError(t, err)

	late := &gateway.Question{Options: []string{"old"}, Correct: "old"}
	fresh := abc()

	assert.True(t, e.Deliver(second, fresh))
	assert.False(t, e.Deliver(first, late), "superseded response must not overwrite")
	assert.Same(t, fresh, e.Question())
	assert.Equal(t, 1, e.Progress())
}

func TestEngine_DeliveryAfterCloseDiscarded(t *testing.T) {
	e := NewEngine(Options{})
	ticket, err := e.Open()
	require.NoError(t, err)
	e.Close()

	assert.False(t, e.Deliver(ticket, abc()))
	assert.Equal(t, StateClosed, e.State())
	assert.Equal(t, 0, e.Progress())
}

func TestEngine_DuplicateDeliveryDiscarded(t *testing.T) {
	e := NewEngine(Options{})
	ticket, _ := e.Open()

	require.True(t, e.Deliver(ticket, abc()))
	assert.False(t, e.Deliver(ticket, abc()))
	assert.Equal(t, 1, e.Progress())
}

func TestEngine_FailSurfacesAndAllowsRetry(t *testing.T) {
	e := NewEngine(Options{})
	ticket, _ := e.Open()

	require.True(t, e.Fail(ticket))
	assert.False(t, e.Loading())
	assert.Equal(t, FeedbackLoadFailed, e.Feedback())
	assert.True(t, e.Visibility().Next)
	assert.Equal(t, 0, e.Progress())

	retry, err := e.Next()
	require.NoError(t, err)
	require.True(t, e.Deliver(retry, abc()))
	assert.Equal(t, 1, e.Progress())
	assert.Empty(t, e.Feedback())
}

func TestEngine_FailedNextDropsAnsweredQuestion(t *testing.T) {
	e := NewEngine(Options{LockAfterAnswer: true})
	openWith(t, e, abc())
	_, err := e.Select("C")
	require.NoError(t, err)

	ticket, err := e.Next()
	require.NoError(t, err)
	require.True(t, e.Fail(ticket))

	assert.Nil(t, e.Question())
	assert.Equal(t, MarkNone, e.Mark(2))

	_, err = e.Select("B")
	assert.ErrorIs(t, err, ErrNoQuestion)
	_, err = e.SelectIndex(1)
	assert.ErrorIs(t, err, ErrNoQuestion)
	assert.Equal(t, FeedbackLoadFailed, e.Feedback())
	assert.Equal(t, StateAwaitingAnswer, e.State())

	retry, err := e.Next()
	require.NoError(t, err)
	require.True(t, e.Deliver(retry, abc()))
	assert.Equal(t, 2, e.Progress())
}

func TestEngine_StaleFailIgnored(t *testing.T) {
	e := NewEngine(Options{})
	ticket, _ := e.Open()
	e.Close()

	assert.False(t, e.Fail(ticket))
	assert.Empty(t, e.Feedback())
}

func TestEngine_MarkOutOfRange(t *testing.T) {
	e := NewEngine(Options{})
	assert.Equal(t, MarkNone, e.Mark(0))
	openWith(t, e, abc())
	assert.Equal(t, MarkNone, e.Mark(7))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "awaiting-answer", StateAwaitingAnswer.String())
	assert.Equal(t, "answered", StateAnswered.String())
	assert.Equal(t, "State(9)", State(9).String())
}
