package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/irab/internal/quiz"
	"github.com/abhisek/irab/internal/ui/components"
	"github.com/abhisek/irab/internal/ui/theme"
)

func contentWidth(width int) int {
	return max(20, min(width-4, 72))
}

func (s *QuizScreen) View(width, height int) string {
	vis := s.engine.Visibility()
	if !vis.Container {
		return ""
	}
	cw := contentWidth(width)

	var sections []string

	q := s.engine.Question()
	switch {
	case q != nil && !s.engine.Loading():
		if q.Instruction != "" {
			sections = append(sections, theme.Subtitle.Render(q.Instruction))
		}
		sections = append(sections, theme.Title.Width(cw).Render(q.Question))
		sections = append(sections, s.options.View())
	case s.engine.Loading():
		sections = append(sections, theme.Hint.Render("جارٍ تحميل السؤال..."))
	}

	if fb := s.engine.Feedback(); fb != "" {
		sections = append(sections, feedbackStyle(fb).Render(fb))
	}

	if vis.Next {
		sections = append(sections, components.Button{Label: "السؤال التالي", Key: "N", Active: true}.View())
	}

	bar := components.NewProgressBar("التقدم", float64(s.engine.Progress())/100, true, cw)
	bar.RightToLeft = true
	sections = append(sections, bar.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))
}

func feedbackStyle(fb string) lipgloss.Style {
	switch fb {
	case qz.FeedbackCorrect:
		return theme.Correct
	case qz.FeedbackWrong:
		return theme.Incorrect
	default:
		return theme.Status
	}
}
