package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/inkling-app/inkling/internal/quiz"
	"github.com/inkling-app/inkling/internal/ui/theme"
)

func (m *Model) View() tea.View {
	v := tea.NewView("")

	switch m.phase {
	case phaseSummary:
		v.SetContent(m.renderSummary())
	default:
		v.SetContent(m.renderQuestion())
	}
	return v
}

func (m *Model) renderQuestion() string {
	q := m.questions[m.index]

	var b strings.Builder
	b.WriteString(theme.Title.Render(m.topic.Name))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))))
	if q.Subtopic != "" {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  ·  %s", q.Subtopic)))
	}
	if q.Difficulty != "" {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  ·  %s", q.Difficulty)))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Card.Render(theme.Body.Render(wrap(q.QuestionText, m.contentWidth()))))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseAnswering:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("enter submit · esc quit"))
	case phaseGrading:
		b.WriteString(theme.Subtitle.Render("Grading your answer..."))
	case phaseFeedback:
		b.WriteString(m.renderFeedback())
	}

	return b.String()
}

func (m *Model) renderFeedback() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("Grading failed: " + m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("any key to continue"))
		return b.String()
	}

	a := m.feedback
	if a.IsCorrect {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Incorrect"))
	}
	if a.UnderstandingScore != nil {
		b.WriteString("  ")
		b.WriteString(theme.Score.Render(fmt.Sprintf("understanding %d/5", *a.UnderstandingScore)))
	}
	b.WriteString("\n\n")

	if a.Feedback != "" {
		b.WriteString(theme.Body.Render(wrap(a.Feedback, m.contentWidth())))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Hint.Render("any key to continue"))
	return b.String()
}

func (m *Model) renderSummary() string {
	r := engine.Aggregate(m.answers)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz complete"))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Questions   %d", r.TotalQuestions),
		fmt.Sprintf("Correct     %s", theme.Correct.Render(fmt.Sprintf("%d", r.CorrectAnswers))),
		fmt.Sprintf("Incorrect   %s", theme.Incorrect.Render(fmt.Sprintf("%d", r.IncorrectAnswers))),
		fmt.Sprintf("Score       %s", theme.Score.Render(fmt.Sprintf("%.1f%%", r.ScorePercent))),
		fmt.Sprintf("Avg understanding  %.1f/5", r.AverageUnderstanding),
	}
	b.WriteString(theme.Card.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("any key to exit"))
	return b.String()
}

func (m *Model) contentWidth() int {
	if m.width > 10 {
		return min(m.width-8, 76)
	}
	return 76
}

// wrap breaks text into lines no wider than limit.
func wrap(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		wlen := lipgloss.Width(w)
		if i > 0 {
			if lineLen+1+wlen > limit {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += wlen
	}
	return b.String()
}
