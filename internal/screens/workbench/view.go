package workbench

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/irab/internal/analysis"
	"github.com/abhisek/irab/internal/toggle"
	"github.com/abhisek/irab/internal/ui/theme"
)

const helpText = `اكتب جملة عربية واضغط Enter لتحليلها نحويًا.
"جملة عشوائية" تعبّي الحقل بجملة جاهزة تتدرب عليها.
"إدخال صوتي" يسجل صوتك ويحوله لنص.
"ابدأ الاختبار" يفتح أسئلة اختيار من متعدد، اختر برقم الخيار وانتقل بـ N.
Tab ينقل التركيز بين الحقل والقائمة.`

func contentWidth(width int) int {
	return max(20, min(width-4, 76))
}

func (s *WorkbenchScreen) View(width, height int) string {
	cw := contentWidth(width)

	sections := []string{
		theme.Title.Render("حلّل جملتك"),
		s.input.View(cw),
	}

	if status := s.workflow.Status(); status != "" {
		sections = append(sections, theme.Status.Render(status))
	}

	if result := s.renderResult(cw); result != "" {
		sections = append(sections, result)
	}

	sections = append(sections, s.menu.View())

	if s.toggles.Visible(toggle.History) {
		sections = append(sections, s.renderHistory(cw))
	}
	if s.toggles.Visible(toggle.Help) {
		sections = append(sections, theme.Card.Width(cw).Render(
			theme.Selected.Render("المساعدة")+"\n"+theme.Body.Render(helpText)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))
}

func (s *WorkbenchScreen) renderResult(cw int) string {
	switch s.workflow.State() {
	case analysis.StateLoading:
		return theme.Hint.Render("جارٍ التحليل...")
	case analysis.StateShown:
		if s.workflow.Kind() == analysis.KindSuccess {
			return theme.ResultSuccess.Width(cw).Render(s.workflow.Message())
		}
		return theme.ResultError.Width(cw).Render(s.workflow.Message())
	default:
		return ""
	}
}

func (s *WorkbenchScreen) renderHistory(cw int) string {
	lines := s.deps.History.Render()
	body := theme.Hint.Render("لا يوجد تحليل بعد.")
	if len(lines) > 0 {
		body = theme.Body.Render(strings.Join(lines, "\n"))
	}
	return theme.Card.Width(cw).Render(theme.Selected.Render("السجل") + "\n" + body)
}
