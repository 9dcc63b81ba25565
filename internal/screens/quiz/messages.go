package quiz

import (
	"github.com/abhisek/irab/internal/gateway"
	qz "github.com/abhisek/irab/internal/quiz"
)

// questionLoadedMsg carries the outcome of one question fetch.
type questionLoadedMsg struct {
	Ticket   qz.Ticket
	Question *gateway.Question
	Err      error
}
